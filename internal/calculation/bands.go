package calculation

import (
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// EvaluateBands walks a progressive band table in order. Each band consumes
// min(remaining, width) of the chargeable income; the final band has no ceiling.
// Bands after the one that exhausts the income are omitted from the result.
// A non-positive chargeable income yields zero tax and no bands.
func EvaluateBands(chargeableIncome decimal.Decimal, table []domain.BandSpec) (decimal.Decimal, []domain.TaxBand) {
	totalTax := decimal.Zero
	if !chargeableIncome.IsPositive() {
		return totalTax, []domain.TaxBand{}
	}

	bands := make([]domain.TaxBand, 0, len(table))
	remaining := chargeableIncome
	for i, row := range table {
		last := i == len(table)-1

		inBand := remaining
		threshold := decimal.Zero
		if !last {
			threshold = row.Width
			inBand = decimal.Min(remaining, row.Width)
		}
		if inBand.IsNegative() {
			inBand = decimal.Zero
		}
		taxInBand := inBand.Mul(row.Rate)

		bands = append(bands, domain.TaxBand{
			Threshold:     threshold,
			Unbounded:     last,
			Rate:          row.Rate,
			Label:         row.Label,
			TaxableAmount: inBand,
			TaxAmount:     taxInBand,
		})

		totalTax = totalTax.Add(taxInBand)
		remaining = remaining.Sub(inBand)
		if !remaining.IsPositive() {
			break
		}
	}

	return totalTax, bands
}

// BandTaxTotal is EvaluateBands without the per-band capture
func BandTaxTotal(chargeableIncome decimal.Decimal, table []domain.BandSpec) decimal.Decimal {
	total, _ := EvaluateBands(chargeableIncome, table)
	return total
}
