package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NairaSymbol is the display symbol for the Nigerian naira.
const NairaSymbol = "₦"

// en-NG groups digits in threes with a comma, same as en.
var printer = message.NewPrinter(language.English)

var monthsPerYear = decimal.NewFromInt(12)

// Money represents a naira amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// RoundNaira rounds to a whole naira, half away from zero
func (m Money) RoundNaira() Money {
	return Money{m.Decimal.Round(0)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(monthsPerYear)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(monthsPerYear)}
}

// Grouped renders the amount rounded to whole naira with thousands separators,
// without a currency symbol. Negative amounts carry a leading minus.
func (m Money) Grouped() string {
	whole := m.Decimal.Round(0)
	if whole.IsNegative() {
		return "-" + printer.Sprintf("%d", whole.Neg().IntPart())
	}
	return printer.Sprintf("%d", whole.IntPart())
}

// GroupedFixed renders the amount with thousands separators and two decimals.
func (m Money) GroupedFixed() string {
	f, _ := m.Decimal.Round(2).Float64()
	if f < 0 {
		return "-" + printer.Sprintf("%.2f", -f)
	}
	return printer.Sprintf("%.2f", f)
}

// Format renders the amount as naira, e.g. ₦1,250,000.
func (m Money) Format() string {
	if m.Decimal.Round(0).IsNegative() {
		return "-" + NairaSymbol + Money{m.Decimal.Neg()}.Grouped()
	}
	return NairaSymbol + m.Grouped()
}
