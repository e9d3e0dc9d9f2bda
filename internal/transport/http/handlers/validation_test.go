package handlers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFieldName(t *testing.T) {
	assert.Equal(t, "Monthly Gross", formatFieldName("monthly_gross"))
	assert.Equal(t, "Employees", formatFieldName("employees"))
}

func TestValidationMessage(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Negative target", &grossFromNetRequest{TargetMonthlyNet: -1}, "Target Monthly Net must be at least 0"},
		{"Missing employees", &payrollRequest{}, "Employees is required"},
		{"Nested employee", &payrollRequest{Employees: []employeeRequest{{LifeInsurance: -3}}}, "Life Insurance must be at least 0"},
		{"Too many currencies", &taxRequest{Currencies: make([]string, 11)}, "Currencies allows at most 10 entries"},
		{"Long employee name", &payrollRequest{Employees: []employeeRequest{{Name: strings.Repeat("a", 201)}}}, "Name must be at most 200 characters"},
		{"Long payslip name", &payslipRequest{EmployeeName: strings.Repeat("b", 201)}, "Employee Name must be at most 200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			assert.Error(t, err)
			assert.Equal(t, tt.want, validationMessage(err))
		})
	}

	assert.Equal(t, "invalid input", validationMessage(errors.New("boom")))
}

func TestRequestMapping(t *testing.T) {
	in := taxRequest{GrossSalary: 250000, AnnualRent: 1200000, NHFEnabled: true, LifeInsurancePaid: 40000}.inputs()
	assert.Equal(t, "250000", in.GrossSalary.String())
	assert.Equal(t, "1200000", in.AnnualRent.String())
	assert.True(t, in.NHFEnabled)
	assert.False(t, in.IsAnnual)
	assert.Equal(t, "40000", in.LifeInsurancePaid.String())

	employees := payrollRequest{Employees: []employeeRequest{{ID: "x", Name: "Y", MonthlyGross: 10}}}.employees()
	assert.Len(t, employees, 1)
	assert.Equal(t, "x", employees[0].ID)
	assert.Equal(t, "10", employees[0].MonthlyGross.String())
}
