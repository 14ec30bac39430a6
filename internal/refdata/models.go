package refdata

import "time"

// Customer and CustomerSite mirror the external customer directory. They are
// read here only through explicit eager-load directives; this service never
// writes them outside of local seeding.
type Customer struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

type CustomerSite struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	CustomerID int64     `gorm:"not null;index" json:"customer_id"`
	Name       string    `gorm:"not null" json:"name"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (CustomerSite) TableName() string { return "customer_sites" }

type CustomerView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CustomerSiteView struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Location   string `json:"location,omitempty"`
}

// NewCustomerView is nil-safe so serializers can pass through an unloaded
// relation without triggering a fetch.
func NewCustomerView(c *Customer) *CustomerView {
	if c == nil {
		return nil
	}
	return &CustomerView{ID: c.ID, Name: c.Name}
}

func NewCustomerSiteView(s *CustomerSite) *CustomerSiteView {
	if s == nil {
		return nil
	}
	return &CustomerSiteView{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Name:       s.Name,
		Location:   s.Location,
	}
}
