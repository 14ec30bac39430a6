package domain

import "github.com/gasplexhq/gasplex/internal/validation"

func Rules() []validation.Rule {
	return []validation.Rule{
		{Field: "date_of_entry", Kind: validation.Date, Required: true},
		{Field: "dollar_cost_per_scf", Kind: validation.Numeric, Required: true, Min: validation.Min(0)},
		{Field: "dollar_rate", Kind: validation.Numeric, Required: true, Min: validation.Min(0)},
		{Field: "status", Kind: validation.Boolean, Required: true},
	}
}
