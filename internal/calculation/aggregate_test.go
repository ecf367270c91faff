package calculation

import (
	"testing"

	"github.com/budgetflow/budgetflow/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_Empty(t *testing.T) {
	var aggregator ExpenseAggregator

	total, breakdown := aggregator.Aggregate(nil)

	assert.True(t, total.IsZero(), "Empty input should total zero")
	assert.Empty(t, breakdown, "Empty input should yield an empty breakdown")
}

func TestAggregate_SumAndOrder(t *testing.T) {
	var aggregator ExpenseAggregator

	lines := []domain.ExpenseLine{
		{Category: "Housing", Amount: decimal.NewFromInt(12000)},
		{Category: "Vehicle", Amount: decimal.NewFromInt(4000)},
		{Category: "Groceries", Amount: decimal.NewFromInt(3600)},
	}

	total, breakdown := aggregator.Aggregate(lines)

	assert.True(t, total.Equal(decimal.NewFromInt(19600)), "Total should be 19600, got %s", total)
	assert.Equal(t, lines, breakdown, "Breakdown should be the input sequence unchanged")
}

func TestAggregate_ReorderInvariant(t *testing.T) {
	var aggregator ExpenseAggregator

	lines := []domain.ExpenseLine{
		{Category: "A", Amount: decimal.NewFromFloat(0.1)},
		{Category: "B", Amount: decimal.NewFromFloat(0.2)},
		{Category: "C", Amount: decimal.NewFromInt(100000)},
	}
	reversed := []domain.ExpenseLine{lines[2], lines[1], lines[0]}

	forward, _ := aggregator.Aggregate(lines)
	backward, _ := aggregator.Aggregate(reversed)

	assert.True(t, forward.Equal(backward), "Sum should not depend on line order")
}

func TestDiscretionaryIncome(t *testing.T) {
	got := DiscretionaryIncome(decimal.NewFromInt(90000), decimal.NewFromInt(17500), decimal.NewFromInt(40000))
	assert.True(t, got.Equal(decimal.NewFromInt(32500)), "90000 - 17500 - 40000 should be 32500, got %s", got)
}

func TestDiscretionaryIncome_NegativeIsValid(t *testing.T) {
	got := DiscretionaryIncome(decimal.NewFromInt(45000), decimal.NewFromInt(5750), decimal.NewFromInt(50000))
	assert.True(t, got.Equal(decimal.NewFromInt(-10750)), "Negative results must not be clamped, got %s", got)
}
