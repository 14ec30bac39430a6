package domain

import (
	"time"

	"github.com/gasplexhq/gasplex/internal/refdata"
)

// GasSituationReport is a pressure and allocation snapshot for one
// customer site. Pressures are in bar, allocation and nomination in MMscfd.
type GasSituationReport struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	CustomerID     int64     `gorm:"not null;index" json:"customer_id"`
	CustomerSiteID int64     `gorm:"not null;index" json:"customer_site_id"`
	InletPressure  float64   `gorm:"not null" json:"inlet_pressure"`
	OutletPressure float64   `gorm:"not null" json:"outlet_pressure"`
	Allocation     float64   `gorm:"not null" json:"allocation"`
	Nomination     float64   `gorm:"not null" json:"nomination"`
	CreatedAt      time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`

	Customer     *refdata.Customer     `gorm:"foreignKey:CustomerID" json:"-"`
	CustomerSite *refdata.CustomerSite `gorm:"foreignKey:CustomerSiteID" json:"-"`
}

func (GasSituationReport) TableName() string { return "gas_situation_reports" }
