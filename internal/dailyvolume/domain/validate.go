package domain

import "github.com/gasplexhq/gasplex/internal/validation"

// Rules describes the daily volume field constraints. Create applies them
// strictly; update relaxes presence but keeps type and range checks.
func Rules() []validation.Rule {
	return []validation.Rule{
		{Field: "customer_id", Kind: validation.Integer, Required: true},
		{Field: "customer_site_id", Kind: validation.Integer, Required: true},
		{Field: "volume", Kind: validation.Numeric, Required: true, Min: validation.Min(0)},
		{Field: "rate", Kind: validation.Numeric, Required: true, Min: validation.Min(0)},
		{Field: "amount", Kind: validation.Numeric, Required: true, Min: validation.Min(0)},
		{Field: "remark", Kind: validation.String},
	}
}
