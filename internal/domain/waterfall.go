package domain

import (
	"github.com/shopspring/decimal"
)

// StepClass is the semantic rendering class of a waterfall step. It is a
// tagged variant assigned positionally by the series builder, never derived
// from category name matching.
type StepClass string

const (
	StepStarting         StepClass = "starting"
	StepExpense          StepClass = "expense"
	StepTerminalPositive StepClass = "terminal-positive"
	StepTerminalNegative StepClass = "terminal-negative"
)

// ExpenseLine is one resolved annual expense. Slice order is significant:
// it matches presentation order and feeds the waterfall.
type ExpenseLine struct {
	Category string          `yaml:"category" json:"category"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
}

// WaterfallStep is one bar of the waterfall diagram. Start and End are the
// cumulative balance around the step; Label is the displayed figure, which
// differs from End only for the terminal step.
type WaterfallStep struct {
	Category string          `yaml:"category" json:"category"`
	Delta    decimal.Decimal `yaml:"delta" json:"delta"`
	Start    decimal.Decimal `yaml:"start" json:"start"`
	End      decimal.Decimal `yaml:"end" json:"end"`
	Label    decimal.Decimal `yaml:"label" json:"label"`
	Class    StepClass       `yaml:"class" json:"class"`
}

// SimulationResult is the complete output of one simulation run, ready for
// direct rendering by the presentation layer.
type SimulationResult struct {
	Household           HouseholdType   `yaml:"household" json:"household"`
	AnnualSalary        decimal.Decimal `yaml:"annual_salary" json:"annual_salary"`
	TaxAmount           decimal.Decimal `yaml:"tax_amount" json:"tax_amount"`
	TotalExpenses       decimal.Decimal `yaml:"total_expenses" json:"total_expenses"`
	DiscretionaryIncome decimal.Decimal `yaml:"discretionary_income" json:"discretionary_income"`
	Breakdown           []ExpenseLine   `yaml:"breakdown" json:"breakdown"`
	Waterfall           []WaterfallStep `yaml:"waterfall" json:"waterfall"`
}
