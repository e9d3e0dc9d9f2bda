package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBands2026(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name        string
		chargeable  decimal.Decimal
		expectedTax decimal.Decimal
		bandCount   int
		description string
	}{
		{
			name:        "Zero income",
			chargeable:  decimal.Zero,
			expectedTax: decimal.Zero,
			bandCount:   0,
			description: "No income produces no bands",
		},
		{
			name:        "Negative income treated as zero",
			chargeable:  dec(-5000),
			expectedTax: decimal.Zero,
			bandCount:   0,
			description: "Callers clamp, but a negative slips through safely",
		},
		{
			name:        "Exactly the free band",
			chargeable:  dec(800000),
			expectedTax: decimal.Zero,
			bandCount:   1,
			description: "First ₦800k is taxed at 0%",
		},
		{
			name:        "End of second band",
			chargeable:  dec(3000000),
			expectedTax: dec(330000),
			bandCount:   2,
			description: "2,200,000 × 15%",
		},
		{
			name:        "Into the 18% band",
			chargeable:  dec(5520000),
			expectedTax: dec(783600),
			bandCount:   3,
			description: "330,000 + 18% × 2,520,000",
		},
		{
			name:        "Top band",
			chargeable:  dec(60000000),
			expectedTax: dec(12930000),
			bandCount:   6,
			description: "330,000 + 1,620,000 + 2,730,000 + 5,750,000 + 25% × 10,000,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, bands := EvaluateBands(tt.chargeable, rules.Bands2026)
			assertDecimal(t, tt.expectedTax, tax, tt.description)
			assert.Len(t, bands, tt.bandCount, tt.description)
		})
	}
}

func TestEvaluateBandsBoundaryDetail(t *testing.T) {
	_, bands := EvaluateBands(dec(3000000), DefaultRules().Bands2026)
	require.Len(t, bands, 2)

	assertDecimal(t, dec(800000), bands[0].TaxableAmount)
	assertDecimal(t, decimal.Zero, bands[0].TaxAmount)
	assert.Equal(t, "First ₦800k", bands[0].Label)

	assertDecimal(t, dec(2200000), bands[1].TaxableAmount)
	assertDecimal(t, dec(330000), bands[1].TaxAmount)
	assertDecimal(t, dec(0.15), bands[1].Rate)
	assert.False(t, bands[1].Unbounded)
}

func TestEvaluateBandsTopBandUnbounded(t *testing.T) {
	_, bands := EvaluateBands(dec(60000000), DefaultRules().Bands2026)
	require.Len(t, bands, 6)

	top := bands[5]
	assert.True(t, top.Unbounded)
	assert.True(t, top.Threshold.IsZero())
	assertDecimal(t, dec(10000000), top.TaxableAmount)
	assertDecimal(t, dec(2500000), top.TaxAmount)
}

func TestEvaluateBandsSumsMatchIncome(t *testing.T) {
	table := DefaultRules().Bands2026
	for _, income := range []float64{1, 799999.99, 800000.01, 2999999, 12000000, 24999999.5, 50000000, 50000001, 987654321.12} {
		chargeable := dec(income)
		total, bands := EvaluateBands(chargeable, table)

		sumTaxable := decimal.Zero
		sumTax := decimal.Zero
		for _, b := range bands {
			assert.False(t, b.TaxableAmount.IsNegative())
			sumTaxable = sumTaxable.Add(b.TaxableAmount)
			sumTax = sumTax.Add(b.TaxAmount)
		}
		assertDecimal(t, chargeable, sumTaxable, "taxable sum for %v", income)
		assertDecimal(t, total, sumTax, "tax sum for %v", income)
	}
}

func TestEvaluateBands2021(t *testing.T) {
	table := DefaultRules().Bands2021

	tests := []struct {
		name        string
		chargeable  decimal.Decimal
		expectedTax decimal.Decimal
	}{
		{"First band only", dec(200000), dec(14000)},
		{"Two bands", dec(600000), dec(54000)},
		{"All bounded bands", dec(3200000), dec(560000)},
		{"Into 24% band", dec(4120000), dec(780800)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expectedTax, BandTaxTotal(tt.chargeable, table))
		})
	}
}

func TestEvaluateBandsEmptyTable(t *testing.T) {
	tax, bands := EvaluateBands(dec(1000000), nil)
	assert.True(t, tax.IsZero())
	assert.Empty(t, bands)
}
