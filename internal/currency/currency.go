// Package currency converts naira amounts for display against static rates.
// Rates are approximate and carry no tax meaning.
package currency

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/naijatax/paye-calculator/internal/domain"
	money "github.com/naijatax/paye-calculator/pkg/decimal"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ErrUnknownCurrency is returned for a code without a configured rate
var ErrUnknownCurrency = errors.New("unknown currency")

// Currency describes one foreign currency shown alongside naira
type Currency struct {
	Code   string          `json:"code"`
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"` // naira per unit
}

var currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar", Rate: decimal.NewFromInt(1550)},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound", Rate: decimal.NewFromInt(1950)},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro", Rate: decimal.NewFromInt(1680)},
}

// Lookup finds a currency by code, case-insensitively
func Lookup(code string) (Currency, error) {
	c, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// Codes returns the supported currency codes in sorted order
func Codes() []string {
	codes := lo.Keys(currencies)
	sort.Strings(codes)
	return codes
}

// All returns every supported currency ordered by code
func All() []Currency {
	return lo.Map(Codes(), func(code string, _ int) Currency { return currencies[code] })
}

// ConvertToNGN turns a foreign amount into naira
func ConvertToNGN(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	c, err := Lookup(code)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(c.Rate), nil
}

// ConvertFromNGN turns a naira amount into the foreign currency
func ConvertFromNGN(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	c, err := Lookup(code)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Div(c.Rate), nil
}

// FormatCurrency renders a naira amount as ₦1,234,567
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatNumber renders a naira amount with grouping and no symbol
func FormatNumber(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Grouped()
}

// FormatForeign renders an amount already in the foreign currency, e.g. $322.58
func FormatForeign(amount decimal.Decimal, code string) (string, error) {
	c, err := Lookup(code)
	if err != nil {
		return "", err
	}
	m := money.NewMoneyFromDecimal(amount)
	if m.Decimal.Round(2).IsNegative() {
		return "-" + c.Symbol + money.NewMoneyFromDecimal(amount.Neg()).GroupedFixed(), nil
	}
	return c.Symbol + m.GroupedFixed(), nil
}

// Convert expresses a result's monthly gross and take-home in each requested
// currency. No codes means every supported currency.
func Convert(result domain.TaxResult, codes ...string) ([]domain.Conversion, error) {
	if len(codes) == 0 {
		codes = Codes()
	}
	out := make([]domain.Conversion, 0, len(codes))
	for _, code := range codes {
		c, err := Lookup(code)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Conversion{
			Currency:        c.Code,
			Rate:            c.Rate,
			MonthlyGross:    result.MonthlyGross.Div(c.Rate),
			MonthlyTakeHome: result.MonthlyTakeHome.Div(c.Rate),
		})
	}
	return out, nil
}
