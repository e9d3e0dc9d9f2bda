package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/naijatax/paye-calculator/internal/calculation"
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/naijatax/paye-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayslip() Payslip {
	return Payslip{
		EmployeeName: "Adaeze Okafor",
		Period:       dateutil.MonthPeriod(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)),
		Result:       calculation.CalculateTax(monthlyInputs()),
	}
}

func TestFormatPayslip(t *testing.T) {
	content := string(FormatPayslip(samplePayslip()))

	assert.True(t, strings.HasPrefix(content, "PAYSLIP: March 2026\n"), content)
	assert.Contains(t, content, "Employee: Adaeze Okafor")
	assert.Contains(t, content, "₦500,000")
	assert.Contains(t, content, "₦65,300")
	assert.Contains(t, content, "₦40,000")
	assert.Contains(t, content, "₦105,300")
	assert.Contains(t, content, "₦394,700")
	assert.NotContains(t, content, "NHF", "zero deductions are omitted")
	assert.NotContains(t, content, "Rent relief applied")
	assert.Contains(t, content, "Effective rate: 13.06%")
}

func TestFormatPayslipRentReliefAndUnnamed(t *testing.T) {
	p := samplePayslip()
	p.EmployeeName = "  "
	p.Result = calculation.CalculateTax(domain.TaxInputs{
		GrossSalary: decimal.NewFromInt(500000), AnnualRent: decimal.NewFromInt(1200000), PensionEnabled: true, NHFEnabled: true,
	})
	content := string(FormatPayslip(p))
	assert.Contains(t, content, "Employee: Unnamed")
	assert.Contains(t, content, "NHF")
	assert.Contains(t, content, "Rent relief applied: ₦20,000 / month")
}

func TestFormatPayslipPreReformPeriod(t *testing.T) {
	tests := []struct {
		name     string
		period   time.Time
		wantNote bool
	}{
		{"December 2025", time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC), true},
		{"January 2026", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := samplePayslip()
			p.Period = dateutil.MonthPeriod(tt.period)
			content := string(FormatPayslip(p))
			note := "Note: " + p.Period.Label() + " predates the 2026 act"
			if tt.wantNote {
				lines := strings.Split(content, "\n")
				require.GreaterOrEqual(t, len(lines), 3)
				assert.True(t, strings.HasPrefix(lines[2], note), content)
			} else {
				assert.NotContains(t, content, "predates the 2026 act")
			}
		})
	}
}

func TestWritePayslipPDFPreReformPeriod(t *testing.T) {
	p := samplePayslip()
	p.Period = dateutil.MonthPeriod(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	var buf bytes.Buffer
	require.NoError(t, WritePayslipPDF(&buf, p, true))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPayslipTotalDeductions(t *testing.T) {
	p := samplePayslip()
	assert.True(t, p.TotalDeductions().Equal(decimal.NewFromInt(105300)), p.TotalDeductions().String())
}

func TestWritePayslipPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePayslipPDF(&buf, samplePayslip(), true))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePayslipPDFRequiresPro(t *testing.T) {
	var buf bytes.Buffer
	err := WritePayslipPDF(&buf, samplePayslip(), false)
	assert.ErrorIs(t, err, domain.ErrProRequired)
	assert.Zero(t, buf.Len())
}

func TestPDFAmount(t *testing.T) {
	assert.Equal(t, "NGN 394,700", pdfAmount(decimal.NewFromInt(394700)))
}

func TestPayrollCSV(t *testing.T) {
	run := calculation.NewTaxEngine().RunPayroll("owner", []domain.Employee{
		{ID: "a", Name: "Adaeze Okafor", MonthlyGross: decimal.NewFromInt(500000)},
		{ID: "c", Name: "Tunde Bakare", MonthlyGross: decimal.NewFromInt(100000), AnnualRent: decimal.NewFromInt(1000000), LifeInsurance: decimal.NewFromInt(60000)},
	})

	out, err := PayrollCSV(run)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "EmployeeID,Name,Gross,PAYE,Pension,NHF,RentRelief,NetPay", lines[0])
	assert.Equal(t, "a,Adaeze Okafor,500000,63050,40000,12500,0,384450", lines[1])
	assert.Equal(t, "c,Tunde Bakare,100000,175,8000,2500,16667,84325", lines[2])
	assert.Equal(t, ",TOTALS,600000,63225,48000,15000,,468775", lines[3])
}

func TestPayrollCSVEmptyRun(t *testing.T) {
	out, err := PayrollCSV(domain.PayrollRun{})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ",TOTALS,0,0,0,0,,0", lines[1])
}

func TestWholeNaira(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"16666.666666", "16667"},
		{"0.5", "1"},
		{"1234.49", "1234"},
		{"0", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wholeNaira(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "42", intToString(42))
	assert.Equal(t, "true", boolToString(true))
	assert.Equal(t, "false", boolToString(false))
}
