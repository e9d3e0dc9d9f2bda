package config

import (
	"fmt"
	"os"

	"github.com/naijatax/paye-calculator/internal/calculation"
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of rules and roster files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadRules loads tax rules from a YAML file. Keys absent from the file keep
// their statutory default; a band table present in the file replaces the default table.
func (ip *InputParser) LoadRules(filename string) (*domain.TaxRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseRules(data)
}

// ParseRules decodes and validates rules from YAML bytes
func (ip *InputParser) ParseRules(data []byte) (*domain.TaxRules, error) {
	rules := calculation.DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rules, nil
}

// ValidateRules validates a rules set
func (ip *InputParser) ValidateRules(rules *domain.TaxRules) error {
	if err := validateBandTable("bands_2026", rules.Bands2026); err != nil {
		return err
	}
	if err := validateBandTable("bands_2021", rules.Bands2021); err != nil {
		return err
	}

	if rules.TaxFreeThreshold.IsNegative() {
		return fmt.Errorf("tax free threshold cannot be negative")
	}
	if rules.RentReliefCap.IsNegative() {
		return fmt.Errorf("rent relief cap cannot be negative")
	}
	if rules.CRAFixed.IsNegative() {
		return fmt.Errorf("CRA fixed amount cannot be negative")
	}

	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"pension_rate", rules.PensionRate},
		{"nhf_rate", rules.NHFRate},
		{"life_assurance_rate", rules.LifeAssuranceRate},
		{"rent_relief_rate", rules.RentReliefRate},
		{"cra_gross_rate", rules.CRAGrossRate},
		{"cra_additional_rate", rules.CRAAdditionalRate},
		{"minimum_tax_rate", rules.MinimumTaxRate},
	}
	for _, r := range rates {
		if !isFraction(r.rate) {
			return fmt.Errorf("%s must be between 0 and 1", r.name)
		}
	}

	return nil
}

// validateBandTable requires at least one band, positive widths on every band
// but the last, and rates between 0 and 1
func validateBandTable(name string, table []domain.BandSpec) error {
	if len(table) == 0 {
		return fmt.Errorf("%s: at least one band is required", name)
	}
	for i, b := range table {
		if !isFraction(b.Rate) {
			return fmt.Errorf("%s band %d: rate must be between 0 and 1", name, i)
		}
		if i < len(table)-1 && !b.Width.IsPositive() {
			return fmt.Errorf("%s band %d: width must be positive", name, i)
		}
	}
	return nil
}

func isFraction(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

// LoadRoster loads an employee roster from a YAML file
func (ip *InputParser) LoadRoster(filename string) (*domain.Roster, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var roster domain.Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRoster(&roster); err != nil {
		return nil, fmt.Errorf("roster validation failed: %w", err)
	}

	return &roster, nil
}

// ValidateRoster validates every employee and rejects duplicate IDs
func (ip *InputParser) ValidateRoster(roster *domain.Roster) error {
	seen := make(map[string]bool, len(roster.Employees))
	for i, e := range roster.Employees {
		if err := ip.validateEmployee(&e); err != nil {
			return fmt.Errorf("employee %d (%s) validation failed: %w", i, e.DisplayName(), err)
		}
		if e.ID == "" {
			continue
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate employee id %q", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}

// validateEmployee validates a single employee's amounts
func (ip *InputParser) validateEmployee(e *domain.Employee) error {
	if e.MonthlyGross.IsNegative() {
		return fmt.Errorf("monthly gross cannot be negative")
	}
	if e.AnnualRent.IsNegative() {
		return fmt.Errorf("annual rent cannot be negative")
	}
	if e.LifeInsurance.IsNegative() {
		return fmt.Errorf("life insurance cannot be negative")
	}
	return nil
}
