package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/naijatax/paye-calculator/internal/currency"
	"github.com/naijatax/paye-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	r := report.Result
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, "NIGERIAN PAYE TAX ANALYSIS (2026 ACT vs 2021 LAW)")
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Annual Gross:          %s\n", FormatCurrency(r.AnnualGross))
	fmt.Fprintf(&buf, "  Monthly Gross:         %s\n", FormatCurrency(r.MonthlyGross))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "DEDUCTIONS & RELIEFS (annual)")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Pension:               %s\n", FormatCurrency(r.PensionDeduction))
	fmt.Fprintf(&buf, "  NHF:                   %s\n", FormatCurrency(r.NHFDeduction))
	fmt.Fprintf(&buf, "  Life Assurance:        %s\n", FormatCurrency(r.LifeAssuranceDeduction))
	fmt.Fprintf(&buf, "  Rent Relief:           %s\n", FormatCurrency(r.RentRelief))
	fmt.Fprintf(&buf, "  Total:                 %s\n", FormatCurrency(r.TotalDeductions))
	fmt.Fprintln(&buf)

	if r.IsTaxFree {
		fmt.Fprintln(&buf, "2026 ACT: TAX FREE (gross at or below the exemption threshold)")
	} else {
		fmt.Fprintln(&buf, "2026 ACT TAX BANDS")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		fmt.Fprintf(&buf, "  Chargeable Income:     %s\n", FormatCurrency(r.ChargeableIncome))
		writeBands(&buf, r.TaxBands)
	}
	fmt.Fprintf(&buf, "  Annual PAYE:           %s\n", FormatCurrency(r.AnnualTax))
	fmt.Fprintf(&buf, "  Monthly PAYE:          %s\n", FormatCurrency(r.MonthlyTax))
	fmt.Fprintf(&buf, "  Effective Rate:        %s\n", FormatPercentage(r.EffectiveRate))
	fmt.Fprintln(&buf)

	writeOldLaw(&buf, r)

	fmt.Fprintln(&buf, "TAKE-HOME PAY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Annual:                %s\n", FormatCurrency(r.AnnualTakeHome))
	fmt.Fprintf(&buf, "  Monthly:               %s\n", FormatCurrency(r.MonthlyTakeHome))
	fmt.Fprintln(&buf)

	if len(report.Conversions) > 0 {
		fmt.Fprintln(&buf, "GLOBAL VIEW (monthly)")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		for _, cv := range report.Conversions {
			gross, err := currency.FormatForeign(cv.MonthlyGross, cv.Currency)
			if err != nil {
				return nil, err
			}
			net, err := currency.FormatForeign(cv.MonthlyTakeHome, cv.Currency)
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(&buf, "  %s @ %s: gross %s, take-home %s\n", cv.Currency, FormatCurrency(cv.Rate), gross, net)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "VERDICT: %s\n", CompareLaws(r).Verdict())
	return buf.Bytes(), nil
}

func writeBands(w io.Writer, bands []domain.TaxBand) {
	fmt.Fprintf(w, "  %-14s %6s %16s %14s\n", "Band", "Rate", "Taxable", "Tax")
	for _, b := range bands {
		fmt.Fprintf(w, "  %-14s %6s %16s %14s\n", b.Label, FormatRate(b.Rate), FormatCurrency(b.TaxableAmount), FormatCurrency(b.TaxAmount))
	}
}

func writeOldLaw(w io.Writer, r domain.TaxResult) {
	old := r.OldTaxBreakdown
	fmt.Fprintln(w, "2021 LAW COMPARISON")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  Adjusted Gross:        %s\n", FormatCurrency(old.AdjustedGross))
	fmt.Fprintf(w, "  CRA:                   %s\n", FormatCurrency(old.CRA))
	fmt.Fprintf(w, "  Chargeable Income:     %s\n", FormatCurrency(old.ChargeableIncome))
	fmt.Fprintf(w, "  Calculated Tax:        %s\n", FormatCurrency(old.CalculatedTax))
	fmt.Fprintf(w, "  Minimum Tax:           %s\n", FormatCurrency(old.MinimumTax))
	fmt.Fprintf(w, "  Final Tax:             %s", FormatCurrency(old.FinalTax))
	if old.UsedMinimumTax {
		fmt.Fprint(w, " (minimum tax applied)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Effective Rate:        %s\n", FormatPercentage(r.OldEffectiveRate))
	fmt.Fprintln(w)
}
