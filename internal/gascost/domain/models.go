package domain

import "time"

// GasCost is a dated market cost entry: the dollar cost per standard cubic
// foot and the dollar exchange rate in effect on that date.
type GasCost struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	DateOfEntry      time.Time `gorm:"column:date_of_entry;not null;index" json:"date_of_entry"`
	DollarCostPerSCF float64   `gorm:"column:dollar_cost_per_scf;not null" json:"dollar_cost_per_scf"`
	DollarRate       float64   `gorm:"column:dollar_rate;not null" json:"dollar_rate"`
	Status           bool      `gorm:"not null;default:false" json:"status"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

func (GasCost) TableName() string { return "gas_costs" }
