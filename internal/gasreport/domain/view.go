package domain

import "github.com/gasplexhq/gasplex/internal/refdata"

const dateTimeLayout = "2006-01-02 15:04:05"

// View is the serialized shape of a situation report. Relations appear
// only when they were eagerly loaded; building a view never queries.
type View struct {
	ID             int64   `json:"id"`
	CustomerID     int64   `json:"customer_id"`
	CustomerSiteID int64   `json:"customer_site_id"`
	InletPressure  float64 `json:"inlet_pressure"`
	OutletPressure float64 `json:"outlet_pressure"`
	Allocation     float64 `json:"allocation"`
	Nomination     float64 `json:"nomination"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`

	Customer     *refdata.CustomerView     `json:"customer,omitempty"`
	CustomerSite *refdata.CustomerSiteView `json:"customer_site,omitempty"`
}

func NewView(v *GasSituationReport) View {
	return View{
		ID:             v.ID,
		CustomerID:     v.CustomerID,
		CustomerSiteID: v.CustomerSiteID,
		InletPressure:  v.InletPressure,
		OutletPressure: v.OutletPressure,
		Allocation:     v.Allocation,
		Nomination:     v.Nomination,
		CreatedAt:      v.CreatedAt.Format(dateTimeLayout),
		UpdatedAt:      v.UpdatedAt.Format(dateTimeLayout),
		Customer:       refdata.NewCustomerView(v.Customer),
		CustomerSite:   refdata.NewCustomerSiteView(v.CustomerSite),
	}
}
