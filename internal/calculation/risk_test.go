package calculation

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskCalculator_ComputeRiskFactor_AlwaysFiniteAndPositive(t *testing.T) {
	rc := NewRiskCalculator()

	ages := []int{0, 1, 17, 18, 40, 64, 65, 85, 120, 200, -5}
	genders := []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther}
	statuses := []domain.HealthStatus{domain.HealthExcellent, domain.HealthGood, domain.HealthFair, domain.HealthPoor}
	conditionSets := [][]string{nil, {"diabetes"}, {"diabetes", "copd", "heart_failure"}, {"made-up-code"}}

	for _, age := range ages {
		for _, gender := range genders {
			for _, status := range statuses {
				for _, conditions := range conditionSets {
					factor, err := rc.ComputeRiskFactor(age, gender, status, conditions)
					require.NoError(t, err)
					assert.True(t, factor.IsPositive(),
						"factor must be > 0 for age=%d gender=%s status=%s conditions=%v, got %s",
						age, gender, status, conditions, factor)
				}
			}
		}
	}
}

func TestRiskCalculator_AgeClamping(t *testing.T) {
	rc := NewRiskCalculator()

	// Ages beyond the table clamp to the boundary brackets rather than
	// extrapolating.
	lowFactor, err := rc.ComputeRiskFactor(-10, domain.GenderMale, domain.HealthGood, nil)
	require.NoError(t, err)
	zeroFactor, err := rc.ComputeRiskFactor(0, domain.GenderMale, domain.HealthGood, nil)
	require.NoError(t, err)
	assert.True(t, lowFactor.Equal(zeroFactor), "age below range should clamp to first bracket")

	highFactor, err := rc.ComputeRiskFactor(200, domain.GenderMale, domain.HealthGood, nil)
	require.NoError(t, err)
	capFactor, err := rc.ComputeRiskFactor(120, domain.GenderMale, domain.HealthGood, nil)
	require.NoError(t, err)
	assert.True(t, highFactor.Equal(capFactor), "age above range should clamp to last bracket")
}

func TestRiskCalculator_HealthStatusFallback(t *testing.T) {
	rc := NewRiskCalculator()

	tests := []struct {
		status   domain.HealthStatus
		expected decimal.Decimal
	}{
		{domain.HealthExcellent, decimal.NewFromFloat(0.8)},
		{domain.HealthGood, decimal.NewFromFloat(1.0)},
		{domain.HealthFair, decimal.NewFromFloat(1.3)},
		{domain.HealthPoor, decimal.NewFromFloat(1.8)},
	}

	for _, test := range tests {
		t.Run(string(test.status), func(t *testing.T) {
			// Age 40, male: ageFactor 1.00, genderFactor 0.90, so the
			// condition component is factor / 0.90.
			factor, err := rc.ComputeRiskFactor(40, domain.GenderMale, test.status, nil)
			require.NoError(t, err)

			expected := decimal.NewFromFloat(1.00).Mul(decimal.NewFromFloat(0.90)).Mul(test.expected)
			assert.True(t, factor.Equal(expected), "expected %s, got %s", expected, factor)
		})
	}
}

func TestRiskCalculator_ComorbidityCombination(t *testing.T) {
	rc := NewRiskCalculator()

	// diabetes 1.75 is the max; hypertension 1.30 contributes half its
	// excess over 1.0: 1.75 + 0.5*0.30 = 1.90.
	factor, err := rc.ComputeRiskFactor(40, domain.GenderMale, domain.HealthGood, []string{"diabetes", "hypertension"})
	require.NoError(t, err)

	expectedCondition := decimal.NewFromFloat(1.90)
	expected := decimal.NewFromFloat(1.00).Mul(decimal.NewFromFloat(0.90)).Mul(expectedCondition)
	assert.True(t, factor.Equal(expected), "expected %s, got %s", expected, factor)
}

func TestRiskCalculator_UnknownConditionDefaults(t *testing.T) {
	rc := NewRiskCalculator()

	factor, err := rc.ComputeRiskFactor(40, domain.GenderMale, domain.HealthGood, []string{"zebra-syndrome"})
	require.NoError(t, err)

	// Unknown codes default to 1.5 rather than failing.
	expected := decimal.NewFromFloat(1.00).Mul(decimal.NewFromFloat(0.90)).Mul(decimal.NewFromFloat(1.5))
	assert.True(t, factor.Equal(expected), "expected %s, got %s", expected, factor)
}

func TestRiskCalculator_ConditionCodesCaseInsensitive(t *testing.T) {
	rc := NewRiskCalculator()

	lower, err := rc.ComputeRiskFactor(40, domain.GenderFemale, domain.HealthGood, []string{"diabetes"})
	require.NoError(t, err)
	upper, err := rc.ComputeRiskFactor(40, domain.GenderFemale, domain.HealthGood, []string{"DIABETES"})
	require.NoError(t, err)
	assert.True(t, lower.Equal(upper))
}

func TestRiskCalculator_InvalidEnums(t *testing.T) {
	rc := NewRiskCalculator()

	_, err := rc.ComputeRiskFactor(40, "unknown", domain.HealthGood, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = rc.ComputeRiskFactor(40, domain.GenderMale, "mediocre", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestRiskCalculator_HighComorbidityIsNotClamped(t *testing.T) {
	rc := NewRiskCalculator()

	// An 85+ year old in poor health with several severe conditions should
	// produce a very large factor; the product is a valid catastrophic-risk
	// signal, not an error.
	factor, err := rc.ComputeRiskFactor(90, domain.GenderMale, domain.HealthPoor,
		[]string{"cancer", "heart_failure", "kidney_disease", "copd", "stroke"})
	require.NoError(t, err)
	assert.True(t, factor.GreaterThan(decimal.NewFromInt(15)), "expected factor > 15, got %s", factor)
}
