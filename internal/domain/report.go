package domain

import "github.com/shopspring/decimal"

// Conversion shows monthly figures in a foreign currency
type Conversion struct {
	Currency        string          `json:"currency"`
	Rate            decimal.Decimal `json:"rate"` // naira per unit
	MonthlyGross    decimal.Decimal `json:"monthly_gross"`
	MonthlyTakeHome decimal.Decimal `json:"monthly_take_home"`
}

// TaxReport bundles an evaluation for the output formatters
type TaxReport struct {
	Inputs      TaxInputs    `json:"inputs"`
	Result      TaxResult    `json:"result"`
	Conversions []Conversion `json:"conversions,omitempty"`
	Assumptions []string     `json:"assumptions,omitempty"`
}
