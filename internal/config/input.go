package config

import (
	"fmt"
	"os"

	"github.com/budgetflow/budgetflow/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the complete simulator input: the option catalogs, the
// household flag, optional tax brackets and fuel parameters, and one
// selection.
type Configuration struct {
	Household   domain.HouseholdType  `yaml:"household" json:"household"`
	Catalogs    domain.Catalogs       `yaml:"catalogs" json:"catalogs"`
	TaxBrackets []domain.TaxBracket   `yaml:"tax_brackets,omitempty" json:"tax_brackets,omitempty"`
	Fuel        domain.FuelParameters `yaml:"fuel" json:"fuel"`
	Selection   domain.Selection      `yaml:"selection" json:"selection"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Catalog amount
// invariants are enforced here, at configuration time; the calculation
// layer assumes them.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := ip.validateHousehold(config.Household); err != nil {
		return err
	}
	if err := ip.validateCatalogs(&config.Catalogs); err != nil {
		return fmt.Errorf("catalog validation failed: %w", err)
	}
	if err := ip.validateTaxBrackets(config.TaxBrackets); err != nil {
		return fmt.Errorf("tax bracket validation failed: %w", err)
	}
	if err := ip.validateFuel(&config.Fuel); err != nil {
		return fmt.Errorf("fuel parameter validation failed: %w", err)
	}
	if err := ip.validateSelection(&config.Selection, &config.Catalogs, config.Household); err != nil {
		return fmt.Errorf("selection validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateHousehold(household domain.HouseholdType) error {
	if household != domain.HouseholdSingle && household != domain.HouseholdFamily {
		return fmt.Errorf("household must be %q or %q, got %q",
			domain.HouseholdSingle, domain.HouseholdFamily, household)
	}
	return nil
}

func (ip *InputParser) validateCatalogs(catalogs *domain.Catalogs) error {
	for _, category := range domain.CatalogCategories {
		catalog, _ := catalogs.ForCategory(category)
		if len(catalog) == 0 {
			return fmt.Errorf("%s catalog must not be empty", category)
		}
		for key, option := range catalog {
			if err := ip.validateOption(&option); err != nil {
				return fmt.Errorf("%s option %q: %w", category, key, err)
			}
		}
	}
	return nil
}

func (ip *InputParser) validateOption(option *domain.CostOption) error {
	if option.Annual.IsNegative() {
		return fmt.Errorf("annual amount cannot be negative")
	}
	if option.FamilyAnnual != nil && option.FamilyAnnual.IsNegative() {
		return fmt.Errorf("family annual amount cannot be negative")
	}
	if option.Insurance.IsNegative() {
		return fmt.Errorf("insurance amount cannot be negative")
	}
	if option.FuelEfficiency.IsNegative() {
		return fmt.Errorf("fuel efficiency cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateTaxBrackets(brackets []domain.TaxBracket) error {
	// Empty is fine: the engine falls back to the built-in brackets.
	for i, bracket := range brackets {
		if bracket.Min.IsNegative() {
			return fmt.Errorf("bracket %d: floor cannot be negative", i)
		}
		if bracket.Rate.IsNegative() || bracket.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be between 0 and 1", i)
		}
		unbounded := bracket.Max.IsZero()
		if unbounded && i != len(brackets)-1 {
			return fmt.Errorf("bracket %d: only the top bracket may be unbounded", i)
		}
		if !unbounded && bracket.Max.LessThanOrEqual(bracket.Min) {
			return fmt.Errorf("bracket %d: ceiling must exceed floor", i)
		}
		if i > 0 && !bracket.Min.Equal(brackets[i-1].Max) {
			return fmt.Errorf("bracket %d: floor must equal previous bracket's ceiling", i)
		}
	}
	return nil
}

func (ip *InputParser) validateFuel(fuel *domain.FuelParameters) error {
	if fuel.AnnualMiles.IsNegative() {
		return fmt.Errorf("annual miles cannot be negative")
	}
	if fuel.PricePerGallon.IsNegative() {
		return fmt.Errorf("price per gallon cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateSelection(sel *domain.Selection, catalogs *domain.Catalogs, household domain.HouseholdType) error {
	for _, category := range domain.CatalogCategories {
		// Childcare is resolved to zero for single households whatever the
		// key says, so an absent pick is acceptable there.
		if category == domain.CategoryChildcare && !household.HasDependents() {
			continue
		}
		key := sel.KeyFor(category)
		if key == "" {
			return fmt.Errorf("no option selected for %s", category)
		}
		catalog, _ := catalogs.ForCategory(category)
		if _, ok := catalog[key]; !ok {
			return fmt.Errorf("%s option %q not found in catalog", category, key)
		}
	}
	if !domain.IsValidRetirementRate(sel.RetirementRate) {
		return fmt.Errorf("retirement rate %s is not one of the allowed rates", sel.RetirementRate.String())
	}
	return nil
}
