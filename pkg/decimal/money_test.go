package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) Money {
	t.Helper()
	d, err := stddec.NewFromString(s)
	require.NoError(t, err)
	return NewMoneyFromDecimal(d)
}

func TestPeriodConversions(t *testing.T) {
	m := money(t, "500000")
	assert.Equal(t, "6000000", m.Annual().Decimal.String())
	assert.Equal(t, "500000", m.Annual().Monthly().Decimal.String())
	assert.Equal(t, "40000", money(t, "480000").Monthly().Decimal.String())
}

func TestRoundNaira(t *testing.T) {
	cases := map[string]string{
		"16666.6667": "16667",
		"0.5":        "1",
		"-0.5":       "-1",
		"1234.49":    "1234",
		"600000":     "600000",
	}
	for in, want := range cases {
		assert.Equal(t, want, money(t, in).RoundNaira().Decimal.String(), "RoundNaira(%s)", in)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₦0"},
		{"999", "₦999"},
		{"1000", "₦1,000"},
		{"783600", "₦783,600"},
		{"65300", "₦65,300"},
		{"1234567.5", "₦1,234,568"},
		{"50000000", "₦50,000,000"},
		{"-12500", "-₦12,500"},
		{"-0.4", "₦0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, money(t, c.in).Format(), "Format(%s)", c.in)
	}
}

func TestGroupedFixed(t *testing.T) {
	assert.Equal(t, "1,234.57", money(t, "1234.567").GroupedFixed())
	assert.Equal(t, "-42.10", money(t, "-42.1").GroupedFixed())
	assert.Equal(t, "322.58", NewMoneyFromDecimal(money(t, "500000").Decimal.Div(stddec.NewFromInt(1550))).GroupedFixed())
}
