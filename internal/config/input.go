package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input profile files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML profile.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Enum fields are
// normalized in place so downstream lookups see canonical values.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Household.Members) == 0 {
		return fmt.Errorf("%w: household must have at least one member", domain.ErrInvalidInput)
	}

	for i := range config.Household.Members {
		if err := ip.validateMember(&config.Household.Members[i]); err != nil {
			return err
		}
	}

	if config.BaselineCost.IsNegative() {
		return fmt.Errorf("%w: baseline_cost must be non-negative, got %s", domain.ErrInvalidInput, config.BaselineCost)
	}

	if len(config.MonthlyPremiums) > 0 {
		normalized := make(map[domain.MetalTier]decimal.Decimal, len(config.MonthlyPremiums))
		for tier, premium := range config.MonthlyPremiums {
			canonical, err := domain.ParseMetalTier(string(tier))
			if err != nil {
				return err
			}
			if premium.IsNegative() {
				return fmt.Errorf("%w: premium for tier %s must be non-negative, got %s", domain.ErrInvalidInput, canonical, premium)
			}
			normalized[canonical] = premium
		}
		config.MonthlyPremiums = normalized
	}

	if config.Simulation.Iterations < 0 {
		return fmt.Errorf("%w: simulation iterations must be positive, got %d", domain.ErrInvalidInput, config.Simulation.Iterations)
	}
	if config.Simulation.Sigma < 0 {
		return fmt.Errorf("%w: simulation sigma must be positive, got %v", domain.ErrInvalidInput, config.Simulation.Sigma)
	}

	if config.Scenario != "" {
		if _, err := domain.ParseUtilizationScenario(config.Scenario); err != nil {
			return err
		}
	}

	return nil
}

func (ip *InputParser) validateMember(member *domain.Member) error {
	if member.Name == "" {
		return fmt.Errorf("%w: member name is required", domain.ErrInvalidInput)
	}
	if member.Age < 0 || member.Age > 120 {
		return fmt.Errorf("%w: member %s age must be between 0 and 120, got %d", domain.ErrInvalidInput, member.Name, member.Age)
	}

	gender, err := domain.ParseGender(string(member.Gender))
	if err != nil {
		return fmt.Errorf("member %s: %w", member.Name, err)
	}
	member.Gender = gender

	status, err := domain.ParseHealthStatus(string(member.HealthStatus))
	if err != nil {
		return fmt.Errorf("member %s: %w", member.Name, err)
	}
	member.HealthStatus = status

	// Prescription volume is optional; empty means none.
	switch member.PrescriptionVolume {
	case "", domain.RxNone, domain.RxOneToThree, domain.RxFourPlus:
	default:
		return fmt.Errorf("%w: member %s prescription_volume must be one of none, 1-3, 4-or-more; got %q",
			domain.ErrInvalidInput, member.Name, member.PrescriptionVolume)
	}

	return nil
}
