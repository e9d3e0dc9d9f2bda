package output

import (
	"bytes"
	"encoding/csv"

	"github.com/naijatax/paye-calculator/internal/domain"
	money "github.com/naijatax/paye-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

func wholeNaira(d decimal.Decimal) string {
	return money.NewMoneyFromDecimal(d).RoundNaira().StringFixed(0)
}

// PayrollCSV exports a payroll run with one row per employee and a closing TOTALS row.
// Amounts are monthly and rounded to whole naira.
func PayrollCSV(run domain.PayrollRun) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"EmployeeID", "Name", "Gross", "PAYE", "Pension", "NHF", "RentRelief", "NetPay"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, l := range run.Lines {
		row := []string{
			l.Employee.ID,
			l.Employee.DisplayName(),
			wholeNaira(l.Employee.MonthlyGross),
			wholeNaira(l.PAYETax),
			wholeNaira(l.Pension),
			wholeNaira(l.NHF),
			wholeNaira(l.RentRelief),
			wholeNaira(l.NetPay),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	t := run.Totals
	totals := []string{"", "TOTALS", wholeNaira(t.Gross), wholeNaira(t.Tax), wholeNaira(t.Pension), wholeNaira(t.NHF), "", wholeNaira(t.Net)}
	if err := w.Write(totals); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
