package domain

import "github.com/gasplexhq/gasplex/internal/validation"

func Rules() []validation.Rule {
	return []validation.Rule{
		{Field: "customer_id", Kind: validation.Integer, Required: true},
		{Field: "customer_site_id", Kind: validation.Integer, Required: true},
		{Field: "inlet_pressure", Kind: validation.Numeric, Required: true, Min: validation.Min(0)},
		{Field: "outlet_pressure", Kind: validation.Numeric, Required: true, Min: validation.Min(0)},
		{Field: "allocation", Kind: validation.Numeric, Required: true, Min: validation.Min(0)},
		{Field: "nomination", Kind: validation.Numeric, Required: true, Min: validation.Min(0)},
	}
}
