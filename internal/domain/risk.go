package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks caller contract violations: unrecognized enum values,
// negative costs, non-positive iteration counts.
var ErrInvalidInput = errors.New("invalid input")

// Gender is used for risk-adjustment table lookups only.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ParseGender converts a string to a Gender, case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderOther:
		return GenderOther, nil
	}
	return "", fmt.Errorf("%w: unrecognized gender %q", ErrInvalidInput, s)
}

// HealthStatus is a self-reported four-level health rating.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

// ParseHealthStatus converts a string to a HealthStatus, case-insensitively.
func ParseHealthStatus(s string) (HealthStatus, error) {
	switch HealthStatus(strings.ToLower(strings.TrimSpace(s))) {
	case HealthExcellent:
		return HealthExcellent, nil
	case HealthGood:
		return HealthGood, nil
	case HealthFair:
		return HealthFair, nil
	case HealthPoor:
		return HealthPoor, nil
	}
	return "", fmt.Errorf("%w: unrecognized health status %q", ErrInvalidInput, s)
}

// RiskInput describes one covered person for risk adjustment. Constructed
// fresh per request and never mutated.
type RiskInput struct {
	Age               int             `yaml:"age" json:"age"`
	Gender            Gender          `yaml:"gender" json:"gender"`
	HealthStatus      HealthStatus    `yaml:"health_status" json:"healthStatus"`
	ChronicConditions []string        `yaml:"chronic_conditions" json:"chronicConditions"`
	BaselineCost      decimal.Decimal `yaml:"baseline_cost" json:"baselineCost"` // healthy-40-year-old reference cost
}

// Validate checks the parts of a RiskInput that indicate a caller bug rather
// than a data-quality gap. Out-of-range ages are NOT an error; they clamp to
// the nearest age bracket during lookup.
func (ri RiskInput) Validate() error {
	if _, err := ParseGender(string(ri.Gender)); err != nil {
		return err
	}
	if _, err := ParseHealthStatus(string(ri.HealthStatus)); err != nil {
		return err
	}
	if ri.BaselineCost.IsNegative() {
		return fmt.Errorf("%w: baseline cost must be non-negative, got %s", ErrInvalidInput, ri.BaselineCost)
	}
	return nil
}

// HasChronicConditions reports whether any condition codes are present.
func (ri RiskInput) HasChronicConditions() bool {
	return len(ri.ChronicConditions) > 0
}

// AgeBracket represents one row of the age-factor lookup table.
type AgeBracket struct {
	MinAge int             `yaml:"min_age" json:"min_age"`
	MaxAge int             `yaml:"max_age" json:"max_age"` // inclusive
	Factor decimal.Decimal `yaml:"factor" json:"factor"`
}

// GenderAgeBand identifies a (gender, age-band) cell of the gender-factor
// table. Only three bands exist; ages below 18 use the 18-44 band.
type GenderAgeBand struct {
	Gender Gender
	Band   string // "18-44" | "45-64" | "65+"
}

// RiskTables bundles the lookup tables the risk adjustment model consumes.
// Treated as process-wide immutable configuration, injected rather than
// referenced as globals so tests can substitute smaller tables.
type RiskTables struct {
	AgeBrackets          []AgeBracket
	GenderFactors        map[GenderAgeBand]decimal.Decimal
	ConditionFactors     map[string]decimal.Decimal
	HealthStatusFactors  map[HealthStatus]decimal.Decimal
	UnknownConditionRisk decimal.Decimal
}

// DefaultRiskTables returns the standard risk-adjustment lookup tables.
func DefaultRiskTables() RiskTables {
	return RiskTables{
		AgeBrackets:          DefaultAgeBrackets(),
		GenderFactors:        DefaultGenderFactors(),
		ConditionFactors:     DefaultConditionFactors(),
		HealthStatusFactors:  DefaultHealthStatusFactors(),
		UnknownConditionRisk: decimal.NewFromFloat(1.5),
	}
}

// DefaultAgeBrackets returns the 18-bracket age factor table spanning 0-85+.
// Out-of-range ages clamp to the nearest bracket.
func DefaultAgeBrackets() []AgeBracket {
	return []AgeBracket{
		{MinAge: 0, MaxAge: 4, Factor: decimal.NewFromFloat(0.75)},
		{MinAge: 5, MaxAge: 9, Factor: decimal.NewFromFloat(0.55)},
		{MinAge: 10, MaxAge: 14, Factor: decimal.NewFromFloat(0.60)},
		{MinAge: 15, MaxAge: 17, Factor: decimal.NewFromFloat(0.65)},
		{MinAge: 18, MaxAge: 24, Factor: decimal.NewFromFloat(0.70)},
		{MinAge: 25, MaxAge: 29, Factor: decimal.NewFromFloat(0.80)},
		{MinAge: 30, MaxAge: 34, Factor: decimal.NewFromFloat(0.90)},
		{MinAge: 35, MaxAge: 39, Factor: decimal.NewFromFloat(0.95)},
		{MinAge: 40, MaxAge: 44, Factor: decimal.NewFromFloat(1.00)},
		{MinAge: 45, MaxAge: 49, Factor: decimal.NewFromFloat(1.15)},
		{MinAge: 50, MaxAge: 54, Factor: decimal.NewFromFloat(1.35)},
		{MinAge: 55, MaxAge: 59, Factor: decimal.NewFromFloat(1.60)},
		{MinAge: 60, MaxAge: 64, Factor: decimal.NewFromFloat(1.95)},
		{MinAge: 65, MaxAge: 69, Factor: decimal.NewFromFloat(2.30)},
		{MinAge: 70, MaxAge: 74, Factor: decimal.NewFromFloat(2.70)},
		{MinAge: 75, MaxAge: 79, Factor: decimal.NewFromFloat(3.10)},
		{MinAge: 80, MaxAge: 84, Factor: decimal.NewFromFloat(3.50)},
		{MinAge: 85, MaxAge: 120, Factor: decimal.NewFromFloat(3.90)},
	}
}

// DefaultGenderFactors returns gender factors keyed by (gender, age-band).
// Female costs run higher in childbearing years and converge after 65.
func DefaultGenderFactors() map[GenderAgeBand]decimal.Decimal {
	return map[GenderAgeBand]decimal.Decimal{
		{Gender: GenderMale, Band: "18-44"}:   decimal.NewFromFloat(0.90),
		{Gender: GenderMale, Band: "45-64"}:   decimal.NewFromFloat(1.05),
		{Gender: GenderMale, Band: "65+"}:     decimal.NewFromFloat(1.05),
		{Gender: GenderFemale, Band: "18-44"}: decimal.NewFromFloat(1.25),
		{Gender: GenderFemale, Band: "45-64"}: decimal.NewFromFloat(1.10),
		{Gender: GenderFemale, Band: "65+"}:   decimal.NewFromFloat(1.00),
		{Gender: GenderOther, Band: "18-44"}:  decimal.NewFromFloat(1.05),
		{Gender: GenderOther, Band: "45-64"}:  decimal.NewFromFloat(1.08),
		{Gender: GenderOther, Band: "65+"}:    decimal.NewFromFloat(1.02),
	}
}

// DefaultConditionFactors returns relative risk factors for common chronic
// condition codes. Keys are lowercase; lookups normalize case. Unknown codes
// fall back to RiskTables.UnknownConditionRisk.
func DefaultConditionFactors() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"hypertension":     decimal.NewFromFloat(1.30),
		"high_cholesterol": decimal.NewFromFloat(1.20),
		"asthma":           decimal.NewFromFloat(1.35),
		"depression":       decimal.NewFromFloat(1.40),
		"anxiety":          decimal.NewFromFloat(1.25),
		"arthritis":        decimal.NewFromFloat(1.45),
		"obesity":          decimal.NewFromFloat(1.50),
		"diabetes":         decimal.NewFromFloat(1.75),
		"copd":             decimal.NewFromFloat(2.10),
		"heart_disease":    decimal.NewFromFloat(2.40),
		"stroke":           decimal.NewFromFloat(2.60),
		"kidney_disease":   decimal.NewFromFloat(2.80),
		"cancer":           decimal.NewFromFloat(3.20),
		"heart_failure":    decimal.NewFromFloat(3.40),
	}
}

// DefaultHealthStatusFactors returns the condition factor used when no
// chronic condition codes are present.
func DefaultHealthStatusFactors() map[HealthStatus]decimal.Decimal {
	return map[HealthStatus]decimal.Decimal{
		HealthExcellent: decimal.NewFromFloat(0.8),
		HealthGood:      decimal.NewFromFloat(1.0),
		HealthFair:      decimal.NewFromFloat(1.3),
		HealthPoor:      decimal.NewFromFloat(1.8),
	}
}
