package output

import (
	"fmt"

	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// LawComparison summarizes which law costs the taxpayer less.
type LawComparison struct {
	Winner           string // "2026", "2021" or "" when equal
	AnnualSavings    decimal.Decimal
	MonthlySavings   decimal.Decimal
	PercentageChange decimal.Decimal
	TaxFree          bool
}

// CompareLaws derives the comparison verdict from a result.
func CompareLaws(r domain.TaxResult) LawComparison {
	c := LawComparison{
		AnnualSavings:    r.TaxSavings,
		MonthlySavings:   r.MonthlySavings,
		PercentageChange: r.SavingsPercentage,
		TaxFree:          r.IsTaxFree,
	}
	switch {
	case r.TaxSavings.IsPositive():
		c.Winner = "2026"
	case r.TaxSavings.IsNegative():
		c.Winner = "2021"
	}
	return c
}

// Verdict renders the comparison as one sentence.
func (c LawComparison) Verdict() string {
	switch {
	case c.TaxFree && c.AnnualSavings.IsZero():
		return "Tax free under both laws"
	case c.TaxFree:
		return fmt.Sprintf("Tax free under the 2026 act, saving %s per year", FormatCurrency(c.AnnualSavings))
	case c.Winner == "2026":
		return fmt.Sprintf("2026 act saves %s per year (%s)", FormatCurrency(c.AnnualSavings), FormatPercentage(c.PercentageChange))
	case c.Winner == "2021":
		return fmt.Sprintf("2021 law was cheaper by %s per year", FormatCurrency(c.AnnualSavings.Neg()))
	default:
		return "No change between the 2021 law and the 2026 act"
	}
}
