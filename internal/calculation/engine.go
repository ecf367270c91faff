package calculation

import (
	"github.com/budgetflow/budgetflow/internal/domain"
	"github.com/shopspring/decimal"
)

// Display labels for breakdown and waterfall rows.
const (
	LabelSalary        = "Starting Salary"
	LabelTaxes         = "Taxes"
	LabelHousing       = "Housing"
	LabelHomeInsurance = "Home Insurance"
	LabelVehicle       = "Vehicle"
	LabelFuel          = "Fuel"
	LabelGroceries     = "Groceries"
	LabelMedical       = "Medical"
	LabelChildcare     = "Childcare"
	LabelPhone         = "Phone"
	LabelUtilities     = "Utilities"
	LabelLoan          = "Loan Payments"
	LabelEntertainment = "Entertainment"
	LabelRetirement    = "Retirement Savings"
	LabelDiscretionary = "Discretionary Income"
)

// SimulationEngine runs one full decision-to-waterfall pass. All components
// are stateless between runs; concurrent runs over the same engine are safe.
type SimulationEngine struct {
	TaxCalc    *ProgressiveTaxCalculator
	Resolver   *CostResolver
	Aggregator ExpenseAggregator
	Builder    WaterfallSeriesBuilder
	Logger     Logger
}

// NewSimulationEngine creates an engine over the given catalogs with the
// default tax brackets.
func NewSimulationEngine(catalogs domain.Catalogs) *SimulationEngine {
	return NewSimulationEngineWithBrackets(catalogs, nil)
}

// NewSimulationEngineWithBrackets creates an engine with configurable tax
// brackets.
func NewSimulationEngineWithBrackets(catalogs domain.Catalogs, brackets []domain.TaxBracket) *SimulationEngine {
	return &SimulationEngine{
		TaxCalc:  NewProgressiveTaxCalculatorWithBrackets(brackets),
		Resolver: NewCostResolver(catalogs),
		Logger:   NopLogger{},
	}
}

// SetLogger replaces the engine logger. A nil logger installs the no-op
// logger.
func (e *SimulationEngine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
}

// Run resolves the selection against the catalogs, computes tax and total
// expenses, and builds the waterfall series. It either produces a complete
// result in a single deterministic pass or aborts with an
// UnknownOptionError.
func (e *SimulationEngine) Run(sel domain.Selection, fuel domain.FuelParameters, household domain.HouseholdType) (*domain.SimulationResult, error) {
	career, err := e.Resolver.Lookup(domain.CategoryCareer, sel.Career)
	if err != nil {
		return nil, err
	}
	salary := career.Annual

	// Housing bundles an insurance add-on; vehicles carry a payment plus a
	// fuel efficiency figure. Both are surfaced as separate lines so the
	// waterfall shows them as their own bars.
	housing, err := e.Resolver.Lookup(domain.CategoryHousing, sel.Housing)
	if err != nil {
		return nil, err
	}
	vehicle, err := e.Resolver.Lookup(domain.CategoryVehicle, sel.Vehicle)
	if err != nil {
		return nil, err
	}

	lines := []domain.ExpenseLine{
		{Category: LabelHousing, Amount: housing.AnnualFor(household)},
		{Category: LabelHomeInsurance, Amount: housing.Insurance},
		{Category: LabelVehicle, Amount: vehicle.AnnualFor(household)},
		{Category: LabelFuel, Amount: FuelCost(vehicle.FuelEfficiency, fuel)},
	}

	simple := []struct {
		label    string
		category domain.Category
		key      string
	}{
		{LabelGroceries, domain.CategoryGroceries, sel.Groceries},
		{LabelMedical, domain.CategoryMedical, sel.Medical},
		{LabelChildcare, domain.CategoryChildcare, sel.Childcare},
		{LabelPhone, domain.CategoryPhone, sel.Phone},
		{LabelUtilities, domain.CategoryUtilities, sel.Utilities},
		{LabelLoan, domain.CategoryLoan, sel.Loan},
		{LabelEntertainment, domain.CategoryEntertainment, sel.Entertainment},
	}
	for _, s := range simple {
		amount, err := e.Resolver.ResolveAmount(s.category, s.key, household)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.ExpenseLine{Category: s.label, Amount: amount})
	}

	lines = append(lines, domain.ExpenseLine{
		Category: LabelRetirement,
		Amount:   RetirementContribution(salary, sel.RetirementRate),
	})

	total, breakdown := e.Aggregator.Aggregate(lines)
	tax := e.TaxCalc.ComputeTax(salary)
	discretionary := DiscretionaryIncome(salary, tax, total)

	e.Logger.Debugf("run: salary=%s tax=%s expenses=%s discretionary=%s",
		salary.StringFixed(2), tax.StringFixed(2), total.StringFixed(2), discretionary.StringFixed(2))

	deltas := make([]WaterfallDelta, 0, len(breakdown)+3)
	deltas = append(deltas, WaterfallDelta{Category: LabelSalary, Delta: salary})
	deltas = append(deltas, WaterfallDelta{Category: LabelTaxes, Delta: tax.Neg()})
	for _, line := range breakdown {
		deltas = append(deltas, WaterfallDelta{Category: line.Category, Delta: line.Amount.Neg()})
	}
	// Terminal placeholder: the builder forces its delta to zero.
	deltas = append(deltas, WaterfallDelta{Category: LabelDiscretionary, Delta: decimal.Zero})

	return &domain.SimulationResult{
		Household:           household,
		AnnualSalary:        salary,
		TaxAmount:           tax,
		TotalExpenses:       total,
		DiscretionaryIncome: discretionary,
		Breakdown:           breakdown,
		Waterfall:           e.Builder.Build(deltas, discretionary),
	}, nil
}
