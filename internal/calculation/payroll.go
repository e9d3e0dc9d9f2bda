package calculation

import (
	"github.com/naijatax/paye-calculator/internal/domain"
	money "github.com/naijatax/paye-calculator/pkg/decimal"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PayrollInputs maps a roster entry to engine inputs: monthly salary, pension
// and NHF on, life assurance taken from the premium actually paid.
func PayrollInputs(e domain.Employee) domain.TaxInputs {
	return domain.TaxInputs{
		GrossSalary:       e.MonthlyGross,
		IsAnnual:          false,
		AnnualRent:        e.AnnualRent,
		PensionEnabled:    true,
		NHFEnabled:        true,
		LifeInsurancePaid: e.LifeInsurance,
	}
}

// PayrollLineFor evaluates one employee. A non-positive salary yields an all-zero line.
func (te *TaxEngine) PayrollLineFor(e domain.Employee) domain.PayrollLine {
	if !e.MonthlyGross.IsPositive() {
		return domain.PayrollLine{
			Employee:   e,
			PAYETax:    decimal.Zero,
			Pension:    decimal.Zero,
			NHF:        decimal.Zero,
			RentRelief: decimal.Zero,
			NetPay:     decimal.Zero,
		}
	}

	r := te.CalculateTax(PayrollInputs(e))
	return domain.PayrollLine{
		Employee:   e,
		PAYETax:    r.MonthlyTax,
		Pension:    monthly(r.PensionDeduction),
		NHF:        monthly(r.NHFDeduction),
		RentRelief: monthly(r.RentRelief),
		NetPay:     r.MonthlyTakeHome,
	}
}

func monthly(annual decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(annual).Monthly().Decimal
}

// RunPayroll evaluates every employee independently and totals the monthly figures
func (te *TaxEngine) RunPayroll(ownerID string, employees []domain.Employee) domain.PayrollRun {
	lines := lo.Map(employees, func(e domain.Employee, _ int) domain.PayrollLine {
		return te.PayrollLineFor(e)
	})

	totals := lo.Reduce(lines, func(acc domain.PayrollTotals, l domain.PayrollLine, _ int) domain.PayrollTotals {
		return domain.PayrollTotals{
			Gross:   acc.Gross.Add(l.Employee.MonthlyGross),
			Tax:     acc.Tax.Add(l.PAYETax),
			Pension: acc.Pension.Add(l.Pension),
			NHF:     acc.NHF.Add(l.NHF),
			Net:     acc.Net.Add(l.NetPay),
		}
	}, domain.PayrollTotals{
		Gross:   decimal.Zero,
		Tax:     decimal.Zero,
		Pension: decimal.Zero,
		NHF:     decimal.Zero,
		Net:     decimal.Zero,
	})

	te.Logger.Infof("payroll: owner=%s employees=%d total_tax=%s", ownerID, len(lines), totals.Tax.StringFixed(2))
	return domain.PayrollRun{OwnerID: ownerID, Lines: lines, Totals: totals}
}
