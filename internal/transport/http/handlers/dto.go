package handlers

import (
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

type taxRequest struct {
	GrossSalary          float64  `json:"gross_salary" validate:"gte=0"`
	IsAnnual             bool     `json:"is_annual"`
	AnnualRent           float64  `json:"annual_rent" validate:"gte=0"`
	PensionEnabled       bool     `json:"pension_enabled"`
	NHFEnabled           bool     `json:"nhf_enabled"`
	LifeAssuranceEnabled bool     `json:"life_assurance_enabled"`
	LifeInsurancePaid    float64  `json:"life_insurance_paid" validate:"gte=0"`
	Currencies           []string `json:"currencies" validate:"max=10"`
}

func (r taxRequest) inputs() domain.TaxInputs {
	return domain.TaxInputs{
		GrossSalary:          decimal.NewFromFloat(r.GrossSalary),
		IsAnnual:             r.IsAnnual,
		AnnualRent:           decimal.NewFromFloat(r.AnnualRent),
		PensionEnabled:       r.PensionEnabled,
		NHFEnabled:           r.NHFEnabled,
		LifeAssuranceEnabled: r.LifeAssuranceEnabled,
		LifeInsurancePaid:    decimal.NewFromFloat(r.LifeInsurancePaid),
	}
}

type grossFromNetRequest struct {
	TargetMonthlyNet float64 `json:"target_monthly_net" validate:"gte=0"`
	PensionEnabled   bool    `json:"pension_enabled"`
	NHFEnabled       bool    `json:"nhf_enabled"`
}

type employeeRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" validate:"max=200"`
	MonthlyGross  float64 `json:"monthly_gross" validate:"gte=0"`
	AnnualRent    float64 `json:"annual_rent" validate:"gte=0"`
	LifeInsurance float64 `json:"life_insurance" validate:"gte=0"`
}

func (r employeeRequest) employee() domain.Employee {
	return domain.Employee{
		ID:            r.ID,
		Name:          r.Name,
		MonthlyGross:  decimal.NewFromFloat(r.MonthlyGross),
		AnnualRent:    decimal.NewFromFloat(r.AnnualRent),
		LifeInsurance: decimal.NewFromFloat(r.LifeInsurance),
	}
}

type payrollRequest struct {
	Employees []employeeRequest `json:"employees" validate:"required,max=1000,dive"`
}

func (r payrollRequest) employees() []domain.Employee {
	out := make([]domain.Employee, len(r.Employees))
	for i, e := range r.Employees {
		out[i] = e.employee()
	}
	return out
}

type payslipRequest struct {
	taxRequest
	EmployeeName string `json:"employee_name" validate:"max=200"`
	Period       string `json:"period"` // YYYY-MM; defaults to the current month
}
