package calculation

import (
	"context"
	"errors"
	"testing"

	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() *domain.Configuration {
	seed := int64(4242)
	return &domain.Configuration{
		Household: domain.Household{
			Members: []domain.Member{
				{
					Name:               "Jordan",
					Age:                42,
					Gender:             domain.GenderFemale,
					HealthStatus:       domain.HealthGood,
					ChronicConditions:  []string{"asthma"},
					PrescriptionVolume: domain.RxOneToThree,
				},
				{
					Name:         "Sam",
					Age:          8,
					Gender:       domain.GenderMale,
					HealthStatus: domain.HealthExcellent,
				},
			},
		},
		BaselineCost: decimal.NewFromInt(6500),
		MonthlyPremiums: map[domain.MetalTier]decimal.Decimal{
			domain.TierBronze:   decimal.NewFromInt(320),
			domain.TierSilver:   decimal.NewFromInt(470),
			domain.TierGold:     decimal.NewFromInt(610),
			domain.TierPlatinum: decimal.NewFromInt(770),
		},
		Simulation: domain.SimulationConfig{Iterations: 500, Seed: &seed},
	}
}

func TestAnalysisEngine_RunAnalysis(t *testing.T) {
	engine := NewAnalysisEngine()

	report, err := engine.RunAnalysis(context.Background(), testConfiguration())
	require.NoError(t, err)
	require.NotNil(t, report)

	require.Len(t, report.Members, 2)
	total := decimal.Zero
	for _, m := range report.Members {
		assert.True(t, m.RiskFactor.IsPositive())
		assert.True(t, m.AdjustedBaseline.IsPositive())
		assert.True(t, m.Distribution.P50.LessThan(m.Distribution.Mean))
		total = total.Add(m.AdjustedBaseline)
	}
	assert.True(t, report.HouseholdExpectedCost.Equal(total),
		"household cost must be the sum of member adjusted baselines")

	require.NotNil(t, report.Simulation)
	assert.Equal(t, 500, report.Simulation.SimulationCount)
	assert.Equal(t, domain.TierSilver, report.ReferenceTier)

	require.Len(t, report.TierRanking, 4)
	assert.Equal(t, 1, report.TierRanking[0].Ranking)
}

func TestAnalysisEngine_ScenarioDerivedFromFirstMember(t *testing.T) {
	engine := NewAnalysisEngine()

	report, err := engine.RunAnalysis(context.Background(), testConfiguration())
	require.NoError(t, err)

	// Jordan: age 42 (1 point), one condition (2), rx 1-3 (2) = 5 -> medium.
	assert.Equal(t, domain.UtilizationMedium, report.Scenario)
}

func TestAnalysisEngine_ScenarioOverride(t *testing.T) {
	engine := NewAnalysisEngine()

	config := testConfiguration()
	config.Scenario = "very-high"
	report, err := engine.RunAnalysis(context.Background(), config)
	require.NoError(t, err)
	assert.Equal(t, domain.UtilizationVeryHigh, report.Scenario)

	config.Scenario = "unheard-of"
	_, err = engine.RunAnalysis(context.Background(), config)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestAnalysisEngine_Reproducible(t *testing.T) {
	engine := NewAnalysisEngine()

	first, err := engine.RunAnalysis(context.Background(), testConfiguration())
	require.NoError(t, err)
	second, err := engine.RunAnalysis(context.Background(), testConfiguration())
	require.NoError(t, err)

	assert.True(t, first.Simulation.Mean.Equal(second.Simulation.Mean),
		"seeded pipeline runs must reproduce simulation outputs")
	assert.True(t, first.HouseholdExpectedCost.Equal(second.HouseholdExpectedCost))
}

func TestAnalysisEngine_NoPremiumsSkipsRanking(t *testing.T) {
	engine := NewAnalysisEngine()

	config := testConfiguration()
	config.MonthlyPremiums = nil
	report, err := engine.RunAnalysis(context.Background(), config)
	require.NoError(t, err)
	assert.Empty(t, report.TierRanking)
	assert.NotNil(t, report.Simulation)
}

func TestAnalysisEngine_InvalidConfigurations(t *testing.T) {
	engine := NewAnalysisEngine()
	ctx := context.Background()

	_, err := engine.RunAnalysis(ctx, nil)
	require.Error(t, err)

	empty := &domain.Configuration{BaselineCost: decimal.NewFromInt(5000)}
	_, err = engine.RunAnalysis(ctx, empty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	bad := testConfiguration()
	bad.Household.Members[0].Gender = "robot"
	_, err = engine.RunAnalysis(ctx, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
