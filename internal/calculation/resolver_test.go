package calculation

import (
	"testing"

	"github.com/budgetflow/budgetflow/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func testCatalogs() domain.Catalogs {
	return domain.Catalogs{
		Career: domain.Catalog{
			"engineer": {Name: "Software Engineer", Annual: decimal.NewFromInt(90000)},
		},
		Housing: domain.Catalog{
			"apartment": {Name: "Rent an Apartment", Annual: decimal.NewFromInt(12000), Insurance: decimal.NewFromInt(1200)},
		},
		Vehicle: domain.Catalog{
			"no_car":  {Name: "No Car (Public Transport)", Annual: decimal.NewFromInt(2000)},
			"economy": {Name: "Economy Car", Annual: decimal.NewFromInt(4000), FuelEfficiency: decimal.NewFromInt(25)},
		},
		Groceries: domain.Catalog{
			"basic": {Name: "Basic Groceries", Annual: decimal.NewFromInt(3600), FamilyAnnual: decPtr(7200)},
		},
		Medical: domain.Catalog{
			"standard": {Name: "Standard Plan", Annual: decimal.NewFromInt(2400)},
		},
		Childcare: domain.Catalog{
			"daycare": {Name: "Daycare", Annual: decimal.NewFromInt(9600)},
		},
		Phone: domain.Catalog{
			"midrange": {Name: "Midrange Plan", Annual: decimal.NewFromInt(960)},
		},
		Utilities: domain.Catalog{
			"medium": {Name: "Medium Utilities", Annual: decimal.NewFromInt(3000)},
		},
		Loan: domain.Catalog{
			"none": {Name: "No Loans", Annual: decimal.Zero},
		},
		Entertainment: domain.Catalog{
			"moderate": {Name: "Moderate Entertainment", Annual: decimal.NewFromInt(2400)},
		},
	}
}

func TestCostResolver_Lookup(t *testing.T) {
	resolver := NewCostResolver(testCatalogs())

	option, err := resolver.Lookup(domain.CategoryHousing, "apartment")
	require.NoError(t, err, "Known key should resolve")
	assert.True(t, option.Annual.Equal(decimal.NewFromInt(12000)), "Should return base cost")
	assert.True(t, option.Insurance.Equal(decimal.NewFromInt(1200)), "Should carry the insurance add-on")
}

func TestCostResolver_Lookup_UnknownKey(t *testing.T) {
	resolver := NewCostResolver(testCatalogs())

	_, err := resolver.Lookup(domain.CategoryHousing, "castle")
	require.Error(t, err, "Unknown key should fail")

	var unknownErr *UnknownOptionError
	require.ErrorAs(t, err, &unknownErr, "Should be an UnknownOptionError")
	assert.Equal(t, domain.CategoryHousing, unknownErr.Category, "Error should carry the category")
	assert.Equal(t, "castle", unknownErr.Key, "Error should carry the key")
}

func TestCostResolver_ResolveAmount_FamilyOverride(t *testing.T) {
	resolver := NewCostResolver(testCatalogs())

	single, err := resolver.ResolveAmount(domain.CategoryGroceries, "basic", domain.HouseholdSingle)
	require.NoError(t, err)
	assert.True(t, single.Equal(decimal.NewFromInt(3600)), "Single household gets the base amount")

	family, err := resolver.ResolveAmount(domain.CategoryGroceries, "basic", domain.HouseholdFamily)
	require.NoError(t, err)
	assert.True(t, family.Equal(decimal.NewFromInt(7200)), "Family household gets the override")
}

func TestCostResolver_ResolveAmount_ChildcareWithoutDependents(t *testing.T) {
	resolver := NewCostResolver(testCatalogs())

	amount, err := resolver.ResolveAmount(domain.CategoryChildcare, "daycare", domain.HouseholdSingle)
	require.NoError(t, err)
	assert.True(t, amount.IsZero(), "Childcare should resolve to zero without dependents")

	// The gate applies before the lookup, so even a bogus key resolves.
	amount, err = resolver.ResolveAmount(domain.CategoryChildcare, "not-a-key", domain.HouseholdSingle)
	require.NoError(t, err, "Key should not matter without dependents")
	assert.True(t, amount.IsZero(), "Childcare should still be zero")

	family, err := resolver.ResolveAmount(domain.CategoryChildcare, "daycare", domain.HouseholdFamily)
	require.NoError(t, err)
	assert.True(t, family.Equal(decimal.NewFromInt(9600)), "Family household pays childcare")
}

func TestFuelCost_ZeroEfficiency(t *testing.T) {
	fuel := domain.FuelParameters{
		AnnualMiles:    decimal.NewFromInt(50000),
		PricePerGallon: decimal.NewFromInt(10),
	}

	got := FuelCost(decimal.Zero, fuel)
	assert.True(t, got.IsZero(), "Zero efficiency should always yield zero fuel cost")
}

func TestFuelCost_DerivedAmount(t *testing.T) {
	fuel := domain.FuelParameters{
		AnnualMiles:    decimal.NewFromInt(10000),
		PricePerGallon: decimal.NewFromFloat(4.00),
	}

	got := FuelCost(decimal.NewFromInt(25), fuel)
	assert.True(t, got.Equal(decimal.NewFromInt(1600)), "10000 miles at 25 mpg and $4.00 should cost 1600, got %s", got)
}

func TestRetirementContribution(t *testing.T) {
	salary := decimal.NewFromInt(90000)

	got := RetirementContribution(salary, decimal.NewFromFloat(0.10))
	assert.True(t, got.Equal(decimal.NewFromInt(9000)), "10%% of 90000 should be 9000, got %s", got)

	got = RetirementContribution(salary, decimal.Zero)
	assert.True(t, got.IsZero(), "Zero rate should contribute nothing")
}
