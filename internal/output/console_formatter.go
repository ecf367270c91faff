package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/budgetflow/budgetflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	startingStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	expenseStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	terminalPositiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	terminalNegativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func styleFor(class domain.StepClass) lipgloss.Style {
	switch class {
	case domain.StepStarting:
		return startingStyle
	case domain.StepTerminalPositive:
		return terminalPositiveStyle
	case domain.StepTerminalNegative:
		return terminalNegativeStyle
	default:
		return expenseStyle
	}
}

// ConsoleFormatter renders a styled report: run summary, expense breakdown
// with monthly labels and share of total, and the waterfall series colored
// by step class.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render("ANNUAL BUDGET WATERFALL"))
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "Household:            %s\n", result.Household)
	fmt.Fprintf(&buf, "Annual Salary:        %s\n", FormatCurrency(result.AnnualSalary))
	fmt.Fprintf(&buf, "Taxes:                %s\n", FormatCurrency(result.TaxAmount))
	fmt.Fprintf(&buf, "Total Expenses:       %s\n", FormatCurrency(result.TotalExpenses))

	discStyle := terminalPositiveStyle
	if result.DiscretionaryIncome.IsNegative() {
		discStyle = terminalNegativeStyle
	}
	fmt.Fprintf(&buf, "Discretionary Income: %s\n", discStyle.Render(FormatCurrency(result.DiscretionaryIncome)))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, titleStyle.Render("EXPENSE BREAKDOWN"))
	fmt.Fprintln(&buf, strings.Repeat("-", 60))
	for _, line := range result.Breakdown {
		share := decimal.Zero
		if result.TotalExpenses.GreaterThan(decimal.Zero) {
			share = line.Amount.Div(result.TotalExpenses).Mul(decimal.NewFromInt(100))
		}
		fmt.Fprintf(&buf, "  %-40s %12s  %7s\n",
			WithMonthlyLabel(line.Category, line.Amount),
			FormatCurrency(line.Amount),
			FormatPercentage(share))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, titleStyle.Render("WATERFALL"))
	fmt.Fprintf(&buf, "  %-22s %14s %14s %14s %14s\n", "Category", "Delta", "Start", "End", "Label")
	fmt.Fprintln(&buf, strings.Repeat("-", 84))
	for _, step := range result.Waterfall {
		row := fmt.Sprintf("  %-22s %14s %14s %14s %14s",
			step.Category,
			step.Delta.StringFixed(2),
			step.Start.StringFixed(2),
			step.End.StringFixed(2),
			step.Label.StringFixed(2))
		fmt.Fprintln(&buf, styleFor(step.Class).Render(row))
	}

	return buf.Bytes(), nil
}
