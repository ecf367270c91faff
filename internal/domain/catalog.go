package domain

import (
	"github.com/shopspring/decimal"
)

// Category identifies one budget decision in a simulation run.
type Category string

const (
	CategoryCareer        Category = "career"
	CategoryHousing       Category = "housing"
	CategoryVehicle       Category = "vehicle"
	CategoryGroceries     Category = "groceries"
	CategoryMedical       Category = "medical"
	CategoryChildcare     Category = "childcare"
	CategoryPhone         Category = "phone"
	CategoryUtilities     Category = "utilities"
	CategoryLoan          Category = "loan"
	CategoryEntertainment Category = "entertainment"
	CategoryRetirement    Category = "retirement"
)

// CatalogCategories lists every category backed by an option table, in
// presentation order. Retirement is absent: it is a rate, not a catalog pick.
var CatalogCategories = []Category{
	CategoryCareer,
	CategoryHousing,
	CategoryVehicle,
	CategoryGroceries,
	CategoryMedical,
	CategoryChildcare,
	CategoryPhone,
	CategoryUtilities,
	CategoryLoan,
	CategoryEntertainment,
}

// HouseholdType indicates household composition for the simulation run.
type HouseholdType string

const (
	HouseholdSingle HouseholdType = "single"
	HouseholdFamily HouseholdType = "family"
)

// HasDependents reports whether dependent-driven costs (childcare, family
// grocery/medical tiers) apply to this household.
func (h HouseholdType) HasDependents() bool {
	return h == HouseholdFamily
}

// CostOption is an immutable catalog entry. Only some fields apply per
// category: Insurance is a housing add-on, FuelEfficiency a vehicle
// attribute, FamilyAnnual a household-dependent override.
type CostOption struct {
	Name   string          `yaml:"name" json:"name"`
	Annual decimal.Decimal `yaml:"annual" json:"annual"`

	// FamilyAnnual overrides Annual for households with dependents.
	// The single/family figures are hand-tuned configuration constants.
	FamilyAnnual *decimal.Decimal `yaml:"family_annual,omitempty" json:"family_annual,omitempty"`

	// Insurance is the bundled annual insurance add-on for housing options.
	Insurance decimal.Decimal `yaml:"insurance,omitempty" json:"insurance,omitempty"`

	// FuelEfficiency is miles per gallon for vehicle options. Zero means the
	// option incurs no fuel cost (public transport, no car).
	FuelEfficiency decimal.Decimal `yaml:"fuel_efficiency,omitempty" json:"fuel_efficiency,omitempty"`
}

// AnnualFor returns the option's annual amount for the given household.
func (o CostOption) AnnualFor(household HouseholdType) decimal.Decimal {
	if household.HasDependents() && o.FamilyAnnual != nil {
		return *o.FamilyAnnual
	}
	return o.Annual
}

// Catalog maps option keys to entries for one category.
type Catalog map[string]CostOption

// Catalogs holds every category's option table. The tables are configuration
// data owned by the caller; the engine never mutates them.
type Catalogs struct {
	Career        Catalog `yaml:"career" json:"career"`
	Housing       Catalog `yaml:"housing" json:"housing"`
	Vehicle       Catalog `yaml:"vehicle" json:"vehicle"`
	Groceries     Catalog `yaml:"groceries" json:"groceries"`
	Medical       Catalog `yaml:"medical" json:"medical"`
	Childcare     Catalog `yaml:"childcare" json:"childcare"`
	Phone         Catalog `yaml:"phone" json:"phone"`
	Utilities     Catalog `yaml:"utilities" json:"utilities"`
	Loan          Catalog `yaml:"loan" json:"loan"`
	Entertainment Catalog `yaml:"entertainment" json:"entertainment"`
}

// ForCategory returns the option table for a category.
func (c *Catalogs) ForCategory(category Category) (Catalog, bool) {
	switch category {
	case CategoryCareer:
		return c.Career, true
	case CategoryHousing:
		return c.Housing, true
	case CategoryVehicle:
		return c.Vehicle, true
	case CategoryGroceries:
		return c.Groceries, true
	case CategoryMedical:
		return c.Medical, true
	case CategoryChildcare:
		return c.Childcare, true
	case CategoryPhone:
		return c.Phone, true
	case CategoryUtilities:
		return c.Utilities, true
	case CategoryLoan:
		return c.Loan, true
	case CategoryEntertainment:
		return c.Entertainment, true
	default:
		return nil, false
	}
}

// Selection maps each decision to a chosen option key, plus the retirement
// contribution rate. One Selection per simulation run, passed by value.
type Selection struct {
	Career        string `yaml:"career" json:"career"`
	Housing       string `yaml:"housing" json:"housing"`
	Vehicle       string `yaml:"vehicle" json:"vehicle"`
	Groceries     string `yaml:"groceries" json:"groceries"`
	Medical       string `yaml:"medical" json:"medical"`
	Childcare     string `yaml:"childcare" json:"childcare"`
	Phone         string `yaml:"phone" json:"phone"`
	Utilities     string `yaml:"utilities" json:"utilities"`
	Loan          string `yaml:"loan" json:"loan"`
	Entertainment string `yaml:"entertainment" json:"entertainment"`

	RetirementRate decimal.Decimal `yaml:"retirement_rate" json:"retirement_rate"`
}

// KeyFor returns the selected option key for a catalog-backed category.
func (s Selection) KeyFor(category Category) string {
	switch category {
	case CategoryCareer:
		return s.Career
	case CategoryHousing:
		return s.Housing
	case CategoryVehicle:
		return s.Vehicle
	case CategoryGroceries:
		return s.Groceries
	case CategoryMedical:
		return s.Medical
	case CategoryChildcare:
		return s.Childcare
	case CategoryPhone:
		return s.Phone
	case CategoryUtilities:
		return s.Utilities
	case CategoryLoan:
		return s.Loan
	case CategoryEntertainment:
		return s.Entertainment
	default:
		return ""
	}
}

// FuelParameters feeds the derived fuel cost for vehicles with a nonzero
// fuel efficiency. Zero values yield zero fuel cost.
type FuelParameters struct {
	AnnualMiles    decimal.Decimal `yaml:"annual_miles" json:"annual_miles"`
	PricePerGallon decimal.Decimal `yaml:"price_per_gallon" json:"price_per_gallon"`
}

// TaxBracket is one marginal tax band. A zero Max marks the top, unbounded
// bracket.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// ValidRetirementRates enumerates the allowed salary-percentage
// contributions.
var ValidRetirementRates = []decimal.Decimal{
	decimal.Zero,
	decimal.NewFromFloat(0.05),
	decimal.NewFromFloat(0.10),
	decimal.NewFromFloat(0.15),
	decimal.NewFromFloat(0.20),
}

// IsValidRetirementRate reports whether rate is one of the allowed
// contribution rates.
func IsValidRetirementRate(rate decimal.Decimal) bool {
	for _, r := range ValidRetirementRates {
		if rate.Equal(r) {
			return true
		}
	}
	return false
}
