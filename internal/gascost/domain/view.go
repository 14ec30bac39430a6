package domain

const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

type View struct {
	ID               int64   `json:"id"`
	DateOfEntry      string  `json:"date_of_entry"`
	DollarCostPerSCF float64 `json:"dollar_cost_per_scf"`
	DollarRate       float64 `json:"dollar_rate"`
	Status           bool    `json:"status"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func NewView(v *GasCost) View {
	return View{
		ID:               v.ID,
		DateOfEntry:      v.DateOfEntry.Format(dateLayout),
		DollarCostPerSCF: v.DollarCostPerSCF,
		DollarRate:       v.DollarRate,
		Status:           v.Status,
		CreatedAt:        v.CreatedAt.Format(dateTimeLayout),
		UpdatedAt:        v.UpdatedAt.Format(dateTimeLayout),
	}
}
