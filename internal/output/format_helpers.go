package output

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// WithMonthlyLabel appends the rounded monthly cost to an option or expense
// label, e.g. "Rent an Apartment ($1000/mo)".
func WithMonthlyLabel(name string, annual decimal.Decimal) string {
	monthly := annual.Div(decimal.NewFromInt(12)).Round(0)
	return fmt.Sprintf("%s ($%s/mo)", name, monthly.String())
}
