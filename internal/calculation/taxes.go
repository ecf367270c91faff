package calculation

import (
	"github.com/budgetflow/budgetflow/internal/domain"
	"github.com/shopspring/decimal"
)

// ProgressiveTaxCalculator applies marginal bracket rates to annual income.
// Each bracket's rate touches only the slice of income inside that bracket;
// income below a bracket's floor is never taxed at its rate.
type ProgressiveTaxCalculator struct {
	Brackets []domain.TaxBracket
}

// DefaultTaxBrackets returns the built-in marginal brackets: 10% to 20k,
// 15% to 60k, 20% to 120k, 25% on the remainder.
func DefaultTaxBrackets() []domain.TaxBracket {
	return []domain.TaxBracket{
		{Min: decimal.Zero, Max: decimal.NewFromInt(20000), Rate: decimal.NewFromFloat(0.10)},
		{Min: decimal.NewFromInt(20000), Max: decimal.NewFromInt(60000), Rate: decimal.NewFromFloat(0.15)},
		{Min: decimal.NewFromInt(60000), Max: decimal.NewFromInt(120000), Rate: decimal.NewFromFloat(0.20)},
		{Min: decimal.NewFromInt(120000), Rate: decimal.NewFromFloat(0.25)},
	}
}

// NewProgressiveTaxCalculator creates a tax calculator with the default
// brackets.
func NewProgressiveTaxCalculator() *ProgressiveTaxCalculator {
	return &ProgressiveTaxCalculator{Brackets: DefaultTaxBrackets()}
}

// NewProgressiveTaxCalculatorWithBrackets creates a tax calculator with
// configurable brackets, falling back to the defaults when none are given.
func NewProgressiveTaxCalculatorWithBrackets(brackets []domain.TaxBracket) *ProgressiveTaxCalculator {
	if len(brackets) == 0 {
		brackets = DefaultTaxBrackets()
	}
	return &ProgressiveTaxCalculator{Brackets: brackets}
}

// ComputeTax calculates the tax owed on an annual income. Income at or below
// zero owes nothing. The function is pure and total over all inputs.
func (tc *ProgressiveTaxCalculator) ComputeTax(income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var tax decimal.Decimal
	for _, bracket := range tc.Brackets {
		if income.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := income
		if !bracket.Max.IsZero() && bracket.Max.LessThan(income) {
			upper = bracket.Max
		}
		tax = tax.Add(upper.Sub(bracket.Min).Mul(bracket.Rate))
	}

	return tax
}
