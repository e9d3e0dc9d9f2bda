package calculation

import (
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RATE ASSUMPTIONS:
//
// 1. 2026 tax reform act bands apply to chargeable income after pension, NHF,
//    life assurance and rent relief. Gross of ₦800,000 or less is tax free.
//
// 2. 2021 bands apply to gross less pension, NHF and the consolidated relief
//    allowance, with a 1% of gross minimum tax when there is a chargeable base.
//
// 3. Rent relief is a 2026-only benefit: 20% of annual rent, capped at ₦500,000.

// DefaultRules returns the statutory constants of both laws
func DefaultRules() domain.TaxRules {
	return domain.TaxRules{
		Bands2026: []domain.BandSpec{
			{Width: decimal.NewFromInt(800000), Rate: decimal.Zero, Label: "First ₦800k"},
			{Width: decimal.NewFromInt(2200000), Rate: decimal.NewFromFloat(0.15), Label: "Next ₦2.2m"},
			{Width: decimal.NewFromInt(9000000), Rate: decimal.NewFromFloat(0.18), Label: "Next ₦9m"},
			{Width: decimal.NewFromInt(13000000), Rate: decimal.NewFromFloat(0.21), Label: "Next ₦13m"},
			{Width: decimal.NewFromInt(25000000), Rate: decimal.NewFromFloat(0.23), Label: "Next ₦25m"},
			{Rate: decimal.NewFromFloat(0.25), Label: "Above ₦50m"},
		},
		Bands2021: []domain.BandSpec{
			{Width: decimal.NewFromInt(300000), Rate: decimal.NewFromFloat(0.07), Label: "First ₦300k"},
			{Width: decimal.NewFromInt(300000), Rate: decimal.NewFromFloat(0.11), Label: "Next ₦300k"},
			{Width: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.15), Label: "Next ₦500k"},
			{Width: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.19), Label: "Next ₦500k"},
			{Width: decimal.NewFromInt(1600000), Rate: decimal.NewFromFloat(0.21), Label: "Next ₦1.6m"},
			{Rate: decimal.NewFromFloat(0.24), Label: "Above ₦3.2m"},
		},
		TaxFreeThreshold:  decimal.NewFromInt(800000),
		PensionRate:       decimal.NewFromFloat(0.08),
		NHFRate:           decimal.NewFromFloat(0.025),
		LifeAssuranceRate: decimal.NewFromFloat(0.02),
		RentReliefRate:    decimal.NewFromFloat(0.20),
		RentReliefCap:     decimal.NewFromInt(500000),
		CRAFixed:          decimal.NewFromInt(200000),
		CRAGrossRate:      decimal.NewFromFloat(0.01),
		CRAAdditionalRate: decimal.NewFromFloat(0.20),
		MinimumTaxRate:    decimal.NewFromFloat(0.01),
	}
}
