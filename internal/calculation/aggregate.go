package calculation

import (
	"github.com/budgetflow/budgetflow/internal/domain"
	"github.com/shopspring/decimal"
)

// ExpenseAggregator sums resolved expense lines into a total and an ordered
// breakdown. Line amounts are a catalog invariant (non-negative) checked at
// configuration time, not here.
type ExpenseAggregator struct{}

// Aggregate returns the sum of all line amounts and the input sequence
// unchanged for downstream display. Empty input yields a zero total and an
// empty breakdown.
func (ExpenseAggregator) Aggregate(lines []domain.ExpenseLine) (decimal.Decimal, []domain.ExpenseLine) {
	var total decimal.Decimal
	for _, line := range lines {
		total = total.Add(line.Amount)
	}
	return total, lines
}

// DiscretionaryIncome is salary minus tax minus total expenses. A negative
// result is a valid, expected outcome and is never clamped.
func DiscretionaryIncome(salary, tax, totalExpenses decimal.Decimal) decimal.Decimal {
	return salary.Sub(tax).Sub(totalExpenses)
}
