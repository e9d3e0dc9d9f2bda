package output

import (
	"strconv"

	"github.com/naijatax/paye-calculator/internal/currency"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole naira, e.g. ₦1,234,567.
func FormatCurrency(amount decimal.Decimal) string { return currency.FormatCurrency(amount) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate such as 0.15 as 15%.
func FormatRate(rate decimal.Decimal) string { return rate.Mul(decimalHundred).String() + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
