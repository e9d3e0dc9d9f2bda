package output

import (
	"bytes"
	"fmt"

	"github.com/naijatax/paye-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	r := report.Result
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PAYE SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Monthly Gross:     %s\n", FormatCurrency(r.MonthlyGross))
	fmt.Fprintf(&buf, "Monthly PAYE:      %s\n", FormatCurrency(r.MonthlyTax))
	fmt.Fprintf(&buf, "Monthly Take-Home: %s\n", FormatCurrency(r.MonthlyTakeHome))
	fmt.Fprintf(&buf, "Effective Rate:    %s\n", FormatPercentage(r.EffectiveRate))
	fmt.Fprintf(&buf, "2021 Law PAYE:     %s / month\n", FormatCurrency(r.OldLawMonthlyTax))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Verdict: %s\n", CompareLaws(r).Verdict())
	return buf.Bytes(), nil
}
