package domain

import "github.com/gasplexhq/gasplex/internal/refdata"

const dateTimeLayout = "2006-01-02 15:04:05"

// View is the serialized shape of a daily volume. Relations appear only
// when they were eagerly loaded; building a view never queries.
type View struct {
	ID             int64    `json:"id"`
	CustomerID     int64    `json:"customer_id"`
	CustomerSiteID int64    `json:"customer_site_id"`
	Volume         float64  `json:"volume"`
	Rate           *float64 `json:"rate,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	Remark         *string  `json:"remark,omitempty"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`

	Customer     *refdata.CustomerView     `json:"customer,omitempty"`
	CustomerSite *refdata.CustomerSiteView `json:"customer_site,omitempty"`
}

// NewView serializes a record together with its trailing-average
// classification.
func NewView(v *DailyVolume, avg *float64) View {
	return View{
		ID:             v.ID,
		CustomerID:     v.CustomerID,
		CustomerSiteID: v.CustomerSiteID,
		Volume:         v.Volume,
		Rate:           v.Rate,
		Amount:         v.Amount,
		Remark:         v.Remark,
		Status:         Classify(v.Volume, avg),
		CreatedAt:      v.CreatedAt.Format(dateTimeLayout),
		UpdatedAt:      v.UpdatedAt.Format(dateTimeLayout),
		Customer:       refdata.NewCustomerView(v.Customer),
		CustomerSite:   refdata.NewCustomerSiteView(v.CustomerSite),
	}
}
