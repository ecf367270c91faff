package calculation

import (
	"fmt"

	"github.com/budgetflow/budgetflow/internal/domain"
	"github.com/shopspring/decimal"
)

// UnknownOptionError reports a selection key missing from its category's
// catalog. There is no default-option fallback; the run aborts and the
// caller decides what to do.
type UnknownOptionError struct {
	Category domain.Category
	Key      string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("category %s has no option %q", e.Category, e.Key)
}

// CostResolver resolves catalog selections into annual dollar amounts.
// It is a pure lookup layer: the household flag is threaded in explicitly
// per call, never held as state.
type CostResolver struct {
	Catalogs domain.Catalogs
}

// NewCostResolver creates a resolver over the given catalogs.
func NewCostResolver(catalogs domain.Catalogs) *CostResolver {
	return &CostResolver{Catalogs: catalogs}
}

// Lookup returns the catalog entry for a selection. Multi-attribute
// categories (housing, vehicle) are destructured by the caller from the
// returned option.
func (cr *CostResolver) Lookup(category domain.Category, key string) (domain.CostOption, error) {
	catalog, ok := cr.Catalogs.ForCategory(category)
	if !ok {
		return domain.CostOption{}, &UnknownOptionError{Category: category, Key: key}
	}
	option, ok := catalog[key]
	if !ok {
		return domain.CostOption{}, &UnknownOptionError{Category: category, Key: key}
	}
	return option, nil
}

// ResolveAmount resolves a single-amount category for the given household.
// Childcare resolves to zero for households without dependents, regardless
// of the selected key.
func (cr *CostResolver) ResolveAmount(category domain.Category, key string, household domain.HouseholdType) (decimal.Decimal, error) {
	if category == domain.CategoryChildcare && !household.HasDependents() {
		return decimal.Zero, nil
	}
	option, err := cr.Lookup(category, key)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return option.AnnualFor(household), nil
}

// FuelCost derives the annual fuel spend from a vehicle's fuel efficiency.
// Efficiency at or below zero (no-car options) always yields zero, which
// also guards the division.
func FuelCost(efficiency decimal.Decimal, fuel domain.FuelParameters) decimal.Decimal {
	if efficiency.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return fuel.AnnualMiles.Div(efficiency).Mul(fuel.PricePerGallon)
}

// RetirementContribution derives the annual contribution from salary and
// the selected rate.
func RetirementContribution(salary, rate decimal.Decimal) decimal.Decimal {
	return salary.Mul(rate)
}
