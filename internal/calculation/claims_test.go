package calculation

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsModel_BaselineProfile(t *testing.T) {
	cm := NewClaimsModel()

	// A 30-year-old in good health with no chronic conditions hits the
	// identity row of every stage, so the baselines pass through untouched.
	profile, err := cm.ModelClaimsProfile(30, domain.HealthGood, false)
	require.NoError(t, err)

	assert.True(t, profile.ExpectedClaims.Equal(decimal.NewFromInt(5)))
	assert.True(t, profile.AvgClaimSize.Equal(decimal.NewFromInt(800)))
	assert.True(t, profile.ProbabilityHighCost.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, profile.ProbabilityCatastrophic.Equal(decimal.NewFromFloat(0.01)))
}

func TestClaimsModel_ChronicConditionBoost(t *testing.T) {
	cm := NewClaimsModel()

	without, err := cm.ModelClaimsProfile(30, domain.HealthGood, false)
	require.NoError(t, err)
	with, err := cm.ModelClaimsProfile(30, domain.HealthGood, true)
	require.NoError(t, err)

	assert.True(t, with.ExpectedClaims.Equal(without.ExpectedClaims.Mul(decimal.NewFromFloat(1.6))))
	assert.True(t, with.AvgClaimSize.Equal(without.AvgClaimSize.Mul(decimal.NewFromFloat(1.3))))
	assert.True(t, with.ProbabilityHighCost.Equal(without.ProbabilityHighCost.Mul(decimal.NewFromFloat(1.8))))
	assert.True(t, with.ProbabilityCatastrophic.Equal(without.ProbabilityCatastrophic.Mul(decimal.NewFromFloat(1.5))))
}

func TestClaimsModel_ProbabilityCapsHoldEverywhere(t *testing.T) {
	cm := NewClaimsModel()

	maxHigh := decimal.NewFromFloat(0.30)
	maxCat := decimal.NewFromFloat(0.10)

	ages := []int{0, 10, 24, 25, 44, 45, 59, 60, 80, 120}
	statuses := []domain.HealthStatus{domain.HealthExcellent, domain.HealthGood, domain.HealthFair, domain.HealthPoor}

	for _, age := range ages {
		for _, status := range statuses {
			for _, chronic := range []bool{false, true} {
				profile, err := cm.ModelClaimsProfile(age, status, chronic)
				require.NoError(t, err)
				assert.True(t, profile.ProbabilityHighCost.LessThanOrEqual(maxHigh),
					"high-cost probability exceeds cap for age=%d status=%s chronic=%v", age, status, chronic)
				assert.True(t, profile.ProbabilityCatastrophic.LessThanOrEqual(maxCat),
					"catastrophic probability exceeds cap for age=%d status=%s chronic=%v", age, status, chronic)
			}
		}
	}
}

func TestClaimsModel_WorstCaseHitsBothCaps(t *testing.T) {
	cm := NewClaimsModel()

	// Age 80, poor health, chronic conditions: the raw products
	// (0.05 x 2.2 x 3.0 x 1.8 and 0.01 x 2.5 x 3.5 x 1.5) are well above
	// the caps, so both caps must bind exactly.
	profile, err := cm.ModelClaimsProfile(80, domain.HealthPoor, true)
	require.NoError(t, err)

	assert.True(t, profile.ProbabilityHighCost.Equal(decimal.NewFromFloat(0.30)))
	assert.True(t, profile.ProbabilityCatastrophic.Equal(decimal.NewFromFloat(0.10)))
}

func TestClaimsModel_AgeStages(t *testing.T) {
	cm := NewClaimsModel()

	young, err := cm.ModelClaimsProfile(20, domain.HealthGood, false)
	require.NoError(t, err)
	older, err := cm.ModelClaimsProfile(65, domain.HealthGood, false)
	require.NoError(t, err)

	assert.True(t, young.ExpectedClaims.LessThan(older.ExpectedClaims))
	assert.True(t, young.AvgClaimSize.LessThan(older.AvgClaimSize))
	assert.True(t, young.ProbabilityCatastrophic.LessThan(older.ProbabilityCatastrophic))
}

func TestClaimsModel_InvalidHealthStatus(t *testing.T) {
	cm := NewClaimsModel()

	_, err := cm.ModelClaimsProfile(40, "superb", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
