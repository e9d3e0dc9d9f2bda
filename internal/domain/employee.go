package domain

import (
	"github.com/shopspring/decimal"
)

// Employee is one roster entry in a payroll
type Employee struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	MonthlyGross  decimal.Decimal `yaml:"monthly_gross" json:"monthly_gross"`
	AnnualRent    decimal.Decimal `yaml:"annual_rent,omitempty" json:"annual_rent,omitempty"`
	LifeInsurance decimal.Decimal `yaml:"life_insurance,omitempty" json:"life_insurance,omitempty"` // annual premium
}

// DisplayName falls back to a placeholder for unnamed employees
func (e Employee) DisplayName() string {
	if e.Name == "" {
		return "Unnamed"
	}
	return e.Name
}

// Roster is the on-disk shape of an employee list
type Roster struct {
	Employees []Employee `yaml:"employees" json:"employees"`
}

// PayrollLine is one employee's monthly payroll figures
type PayrollLine struct {
	Employee   Employee        `json:"employee"`
	PAYETax    decimal.Decimal `json:"paye_tax"`
	Pension    decimal.Decimal `json:"pension"`
	NHF        decimal.Decimal `json:"nhf"`
	RentRelief decimal.Decimal `json:"rent_relief"`
	NetPay     decimal.Decimal `json:"net_pay"`
}

// PayrollTotals sums monthly figures across a payroll run
type PayrollTotals struct {
	Gross   decimal.Decimal `json:"gross"`
	Tax     decimal.Decimal `json:"tax"`
	Pension decimal.Decimal `json:"pension"`
	NHF     decimal.Decimal `json:"nhf"`
	Net     decimal.Decimal `json:"net"`
}

// PayrollRun is the result of evaluating a full roster
type PayrollRun struct {
	OwnerID string        `json:"owner_id"`
	Lines   []PayrollLine `json:"lines"`
	Totals  PayrollTotals `json:"totals"`
}
