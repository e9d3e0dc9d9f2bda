package output

import (
	"fmt"

	"github.com/naijatax/paye-calculator/internal/calculation"
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the statutory rules rendered in detailed outputs.
var DefaultAssumptions = GenerateAssumptions(calculation.DefaultRules())

// GenerateAssumptions creates the assumptions list from the rules actually applied
func GenerateAssumptions(rules domain.TaxRules) []string {
	return []string{
		fmt.Sprintf("2026 act: annual gross of %s or less is tax free", FormatCurrency(rules.TaxFreeThreshold)),
		fmt.Sprintf("Pension %s and NHF %s of gross when enabled", FormatRate(rules.PensionRate), FormatRate(rules.NHFRate)),
		fmt.Sprintf("Life assurance %s of gross when enabled, or the premium actually paid", FormatRate(rules.LifeAssuranceRate)),
		fmt.Sprintf("Rent relief (2026 only): %s of annual rent, capped at %s", FormatRate(rules.RentReliefRate), FormatCurrency(rules.RentReliefCap)),
		fmt.Sprintf("2021 law CRA: greater of %s or %s of gross, plus %s of gross",
			FormatCurrency(rules.CRAFixed), FormatRate(rules.CRAGrossRate), FormatRate(rules.CRAAdditionalRate)),
		fmt.Sprintf("2021 law minimum tax: %s of gross when there is a chargeable base", FormatRate(rules.MinimumTaxRate)),
	}
}

var decimalHundred = decimal.NewFromInt(100)
