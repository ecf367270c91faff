package calculation

import (
	"github.com/budgetflow/budgetflow/internal/domain"
	"github.com/shopspring/decimal"
)

// WaterfallDelta is one named signed step supplied to the series builder.
// Well-formed input starts with the positive salary, continues with
// non-positive expense and tax deltas, and ends with the terminal
// placeholder.
type WaterfallDelta struct {
	Category string
	Delta    decimal.Decimal
}

// WaterfallSeriesBuilder converts an ordered list of signed deltas into
// cumulative bar positions.
type WaterfallSeriesBuilder struct{}

// Build walks the deltas keeping a running cumulative balance: each step's
// bar spans the balance before and after its delta. The terminal step's
// delta is forced to exactly zero so the leftover, already implicit in the
// prior deltas, is never added to the running total a second time. Its
// display label carries terminalLabel, the true discretionary income
// computed by the caller, in place of the (unchanged) cumulative balance.
func (WaterfallSeriesBuilder) Build(deltas []WaterfallDelta, terminalLabel decimal.Decimal) []domain.WaterfallStep {
	steps := make([]domain.WaterfallStep, 0, len(deltas))

	var cumulative decimal.Decimal
	for i, d := range deltas {
		terminal := i == len(deltas)-1
		delta := d.Delta
		if terminal {
			delta = decimal.Zero
		}

		start := cumulative
		cumulative = cumulative.Add(delta)

		step := domain.WaterfallStep{
			Category: d.Category,
			Delta:    delta,
			Start:    start,
			End:      cumulative,
			Label:    cumulative,
			Class:    domain.StepExpense,
		}
		switch {
		case i == 0:
			step.Class = domain.StepStarting
		case terminal:
			step.Label = terminalLabel
			if terminalLabel.IsNegative() {
				step.Class = domain.StepTerminalNegative
			} else {
				step.Class = domain.StepTerminalPositive
			}
		}
		steps = append(steps, step)
	}

	return steps
}
