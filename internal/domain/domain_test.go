package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestDeductionsTotal(t *testing.T) {
	d := Deductions{
		Pension:       decimal.NewFromInt(480000),
		NHF:           decimal.NewFromInt(150000),
		LifeAssurance: decimal.NewFromInt(60000),
		RentRelief:    decimal.NewFromInt(500000),
	}
	assert.True(t, d.Total().Equal(decimal.NewFromInt(1190000)))
	assert.True(t, Deductions{}.Total().IsZero())
}

func TestEmployeeDisplayName(t *testing.T) {
	assert.Equal(t, "Unnamed", Employee{}.DisplayName())
	assert.Equal(t, "Ngozi Obi", Employee{Name: "Ngozi Obi"}.DisplayName())
}

func TestRosterYAML(t *testing.T) {
	src := `employees:
  - id: e1
    name: Ngozi Obi
    monthly_gross: 350000.50
    annual_rent: 1200000
`
	var r Roster
	assert.NoError(t, yaml.Unmarshal([]byte(src), &r))
	if assert.Len(t, r.Employees, 1) {
		e := r.Employees[0]
		assert.True(t, e.MonthlyGross.Equal(decimal.RequireFromString("350000.5")))
		assert.True(t, e.AnnualRent.Equal(decimal.NewFromInt(1200000)))
		assert.True(t, e.LifeInsurance.IsZero())
	}
}

func TestErrProRequiredWraps(t *testing.T) {
	err := fmt.Errorf("bulk import: %w", ErrProRequired)
	assert.True(t, errors.Is(err, ErrProRequired))
}
