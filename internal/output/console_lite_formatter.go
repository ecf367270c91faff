package output

import (
	"bytes"
	"fmt"

	"github.com/budgetflow/budgetflow/internal/domain"
)

// ConsoleLiteFormatter renders a compact, unstyled summary suitable for
// piping and scripting.
type ConsoleLiteFormatter struct{}

func (ConsoleLiteFormatter) Name() string { return "console-lite" }

func (ConsoleLiteFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "salary=%s tax=%s expenses=%s discretionary=%s\n",
		result.AnnualSalary.StringFixed(2),
		result.TaxAmount.StringFixed(2),
		result.TotalExpenses.StringFixed(2),
		result.DiscretionaryIncome.StringFixed(2))

	for _, step := range result.Waterfall {
		fmt.Fprintf(&buf, "%s\t%s\t%s\t%s\t%s\t%s\n",
			step.Category,
			step.Delta.StringFixed(2),
			step.Start.StringFixed(2),
			step.End.StringFixed(2),
			step.Label.StringFixed(2),
			step.Class)
	}

	return buf.Bytes(), nil
}
