package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/naijatax/paye-calculator/internal/domain"
	money "github.com/naijatax/paye-calculator/pkg/decimal"
	"github.com/naijatax/paye-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Payslip is one employee's monthly statement.
type Payslip struct {
	EmployeeName string
	Period       dateutil.PayPeriod
	Result       domain.TaxResult
}

type payslipLine struct {
	label  string
	amount decimal.Decimal
}

func monthlyOf(annual decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(annual).Monthly().Decimal
}

// preReformNote flags periods that start before the 2026 act took effect.
func (p Payslip) preReformNote() string {
	if p.Period.UnderReform() {
		return ""
	}
	return fmt.Sprintf("Note: %s predates the 2026 act; 2026 figures shown for comparison", p.Period.Label())
}

// deductionLines lists the monthly amounts withheld from pay; zero amounts are omitted.
func (p Payslip) deductionLines() []payslipLine {
	r := p.Result
	all := []payslipLine{
		{"PAYE", r.MonthlyTax},
		{"Pension", monthlyOf(r.PensionDeduction)},
		{"NHF", monthlyOf(r.NHFDeduction)},
		{"Life Assurance", monthlyOf(r.LifeAssuranceDeduction)},
	}
	out := make([]payslipLine, 0, len(all))
	for _, l := range all {
		if !l.amount.IsZero() {
			out = append(out, l)
		}
	}
	return out
}

// TotalDeductions is the monthly cash withheld: gross less net pay.
func (p Payslip) TotalDeductions() decimal.Decimal {
	return p.Result.MonthlyGross.Sub(p.Result.MonthlyTakeHome)
}

func (p Payslip) name() string {
	if strings.TrimSpace(p.EmployeeName) == "" {
		return "Unnamed"
	}
	return p.EmployeeName
}

// FormatPayslip renders a plain-text payslip.
func FormatPayslip(p Payslip) []byte {
	r := p.Result
	var buf bytes.Buffer
	rule := strings.Repeat("-", 44)

	fmt.Fprintf(&buf, "PAYSLIP: %s\n", p.Period.Label())
	fmt.Fprintf(&buf, "Employee: %s\n", p.name())
	if note := p.preReformNote(); note != "" {
		fmt.Fprintln(&buf, note)
	}
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "EARNINGS")
	fmt.Fprintf(&buf, "  %-22s %18s\n", "Gross Pay", FormatCurrency(r.MonthlyGross))
	fmt.Fprintln(&buf, "DEDUCTIONS")
	for _, l := range p.deductionLines() {
		fmt.Fprintf(&buf, "  %-22s %18s\n", l.label, FormatCurrency(l.amount))
	}
	fmt.Fprintf(&buf, "  %-22s %18s\n", "Total Deductions", FormatCurrency(p.TotalDeductions()))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "  %-22s %18s\n", "NET PAY", FormatCurrency(r.MonthlyTakeHome))
	fmt.Fprintln(&buf, rule)
	if r.RentRelief.IsPositive() {
		fmt.Fprintf(&buf, "Rent relief applied: %s / month\n", FormatCurrency(monthlyOf(r.RentRelief)))
	}
	fmt.Fprintf(&buf, "Effective rate: %s\n", FormatPercentage(r.EffectiveRate))
	fmt.Fprintf(&buf, "2021 law PAYE would be: %s / month\n", FormatCurrency(r.OldLawMonthlyTax))
	fmt.Fprintf(&buf, "%s\n", CompareLaws(r).Verdict())
	return buf.Bytes()
}

// pdfAmount avoids the naira sign, which the core PDF fonts cannot encode.
func pdfAmount(amount decimal.Decimal) string {
	return "NGN " + money.NewMoneyFromDecimal(amount).Grouped()
}

// WritePayslipPDF renders the payslip as an A4 PDF. PDF export is a Pro feature.
func WritePayslipPDF(w io.Writer, p Payslip, isPro bool) error {
	if !isPro {
		return fmt.Errorf("pdf payslip: %w", domain.ErrProRequired)
	}
	r := p.Result

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Payslip "+p.Period.Label(), true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Employee: %s", p.name())))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", p.Period.Start.Format("2006-01-02"), p.Period.End.Format("2006-01-02")))
	pdf.Ln(10)

	row := func(label string, amount decimal.Decimal) {
		pdf.CellFormat(90, 8, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, pdfAmount(amount), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	row("Gross Pay", r.MonthlyGross)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, l := range p.deductionLines() {
		row(l.label, l.amount)
	}
	row("Total Deductions", p.TotalDeductions())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 13)
	row("Net Pay", r.MonthlyTakeHome)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Effective rate: %s", FormatPercentage(r.EffectiveRate)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("2021 law PAYE would be %s per month", pdfAmount(r.OldLawMonthlyTax)))
	if note := p.preReformNote(); note != "" {
		pdf.Ln(5)
		pdf.Cell(0, 6, note)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf payslip: %w", err)
	}
	return nil
}
