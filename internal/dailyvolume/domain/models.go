package domain

import (
	"time"

	"github.com/gasplexhq/gasplex/internal/refdata"
)

// DailyVolume is one customer site's measured gas offtake for a day,
// in standard cubic feet.
type DailyVolume struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	CustomerID     int64     `gorm:"not null;index" json:"customer_id"`
	CustomerSiteID int64     `gorm:"not null;index" json:"customer_site_id"`
	Volume         float64   `gorm:"not null" json:"volume"`
	Rate           *float64  `json:"rate,omitempty"`
	Amount         *float64  `json:"amount,omitempty"`
	Remark         *string   `json:"remark,omitempty"`
	CreatedAt      time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`

	Customer     *refdata.Customer     `gorm:"foreignKey:CustomerID" json:"-"`
	CustomerSite *refdata.CustomerSite `gorm:"foreignKey:CustomerSiteID" json:"-"`
}

func (DailyVolume) TableName() string { return "daily_volumes" }
