package calculation

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
)

// RiskCalculator converts demographic and health inputs into a composite
// multiplicative risk-adjustment factor. 1.0 is population-average risk.
type RiskCalculator struct {
	Tables domain.RiskTables
}

// NewRiskCalculator creates a risk calculator with the default lookup tables.
func NewRiskCalculator() *RiskCalculator {
	return &RiskCalculator{Tables: domain.DefaultRiskTables()}
}

// NewRiskCalculatorWithTables creates a risk calculator with substituted
// tables, used by tests and callers with custom reference data.
func NewRiskCalculatorWithTables(tables domain.RiskTables) *RiskCalculator {
	return &RiskCalculator{Tables: tables}
}

// ComputeRiskFactor combines age, gender, and condition factors into a single
// multiplicative risk factor. The product is not clamped: very large values
// (>15) are valid signals of catastrophic risk.
func (rc *RiskCalculator) ComputeRiskFactor(age int, gender domain.Gender, healthStatus domain.HealthStatus, conditions []string) (decimal.Decimal, error) {
	if _, err := domain.ParseGender(string(gender)); err != nil {
		return decimal.Zero, err
	}
	if _, err := domain.ParseHealthStatus(string(healthStatus)); err != nil {
		return decimal.Zero, err
	}

	ageFactor := rc.ageFactor(age)
	genderFactor := rc.genderFactor(gender, age)
	conditionFactor := rc.conditionFactor(healthStatus, conditions)

	return ageFactor.Mul(genderFactor).Mul(conditionFactor), nil
}

// ComputeForInput is a convenience wrapper over ComputeRiskFactor for a full
// RiskInput.
func (rc *RiskCalculator) ComputeForInput(input domain.RiskInput) (decimal.Decimal, error) {
	if err := input.Validate(); err != nil {
		return decimal.Zero, err
	}
	return rc.ComputeRiskFactor(input.Age, input.Gender, input.HealthStatus, input.ChronicConditions)
}

// AdjustedBaseline returns baselineCost scaled by the input's risk factor.
func (rc *RiskCalculator) AdjustedBaseline(input domain.RiskInput) (decimal.Decimal, error) {
	factor, err := rc.ComputeForInput(input)
	if err != nil {
		return decimal.Zero, err
	}
	return input.BaselineCost.Mul(factor), nil
}

// ageFactor looks up the age bracket table. Out-of-range ages clamp to the
// nearest bracket rather than extrapolating.
func (rc *RiskCalculator) ageFactor(age int) decimal.Decimal {
	brackets := rc.Tables.AgeBrackets
	if len(brackets) == 0 {
		return decimal.NewFromInt(1)
	}
	if age < brackets[0].MinAge {
		return brackets[0].Factor
	}
	for _, b := range brackets {
		if age >= b.MinAge && age <= b.MaxAge {
			return b.Factor
		}
	}
	return brackets[len(brackets)-1].Factor
}

// genderFactor looks up the (gender, age-band) table. Only three bands exist;
// ages under 18 use the 18-44 band.
func (rc *RiskCalculator) genderFactor(gender domain.Gender, age int) decimal.Decimal {
	band := "18-44"
	switch {
	case age >= 65:
		band = "65+"
	case age >= 45:
		band = "45-64"
	}
	if factor, ok := rc.Tables.GenderFactors[domain.GenderAgeBand{Gender: gender, Band: band}]; ok {
		return factor
	}
	return decimal.NewFromInt(1)
}

// conditionFactor derives the condition component of the risk factor. With no
// condition codes it falls back to the four-level health-status multiplier.
// With conditions present it takes the maximum condition factor as the base
// and adds 50% of each remaining factor's excess over 1.0: comorbid
// conditions overlap in driving cost, so naive summation would overstate
// risk. Unknown codes default to a mid-range factor rather than failing.
func (rc *RiskCalculator) conditionFactor(healthStatus domain.HealthStatus, conditions []string) decimal.Decimal {
	if len(conditions) == 0 {
		if factor, ok := rc.Tables.HealthStatusFactors[healthStatus]; ok {
			return factor
		}
		return decimal.NewFromInt(1)
	}

	factors := make([]decimal.Decimal, 0, len(conditions))
	for _, code := range conditions {
		normalized := strings.ToLower(strings.TrimSpace(code))
		if factor, ok := rc.Tables.ConditionFactors[normalized]; ok {
			factors = append(factors, factor)
		} else {
			factors = append(factors, rc.Tables.UnknownConditionRisk)
		}
	}

	maxIdx := 0
	for i, f := range factors {
		if f.GreaterThan(factors[maxIdx]) {
			maxIdx = i
		}
	}

	one := decimal.NewFromInt(1)
	half := decimal.NewFromFloat(0.5)
	combined := factors[maxIdx]
	for i, f := range factors {
		if i == maxIdx {
			continue
		}
		excess := f.Sub(one)
		if excess.IsPositive() {
			combined = combined.Add(excess.Mul(half))
		}
	}
	return combined
}

// DescribeRiskFactor renders a short qualitative label for a computed factor,
// used by the narrative-facing formatters.
func DescribeRiskFactor(factor decimal.Decimal) string {
	switch {
	case factor.LessThan(decimal.NewFromFloat(0.8)):
		return "below average"
	case factor.LessThan(decimal.NewFromFloat(1.2)):
		return "average"
	case factor.LessThan(decimal.NewFromFloat(2.5)):
		return "elevated"
	case factor.LessThan(decimal.NewFromFloat(6.0)):
		return "high"
	default:
		return fmt.Sprintf("catastrophic (%sx population baseline)", factor.Round(1))
	}
}
