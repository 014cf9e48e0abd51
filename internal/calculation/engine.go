package calculation

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Logger is a minimal logging interface so the engine can emit diagnostics
// without binding to a specific logging package.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// AnalysisEngine orchestrates the full pipeline for a household profile:
// risk adjustment, cost distribution, claims profile, Monte Carlo simulation
// under the reference plan, and tier ranking. Stateless between invocations;
// concurrent callers need no locking.
type AnalysisEngine struct {
	RiskCalc   *RiskCalculator
	DistGen    *DistributionGenerator
	Claims     *ClaimsModel
	MonteCarlo *MonteCarloEngine
	TCC        *TCCAnalyzer

	// ReferenceTier is the plan whose cost-sharing rules the simulation
	// uses. Silver is the marketplace benchmark tier.
	ReferenceTier domain.MetalTier

	logger Logger
}

// NewAnalysisEngine creates an engine with default tables throughout.
func NewAnalysisEngine() *AnalysisEngine {
	return &AnalysisEngine{
		RiskCalc:      NewRiskCalculator(),
		DistGen:       NewDistributionGenerator(),
		Claims:        NewClaimsModel(),
		MonteCarlo:    NewMonteCarloEngine(),
		TCC:           NewTCCAnalyzer(),
		ReferenceTier: domain.TierSilver,
		logger:        noopLogger{},
	}
}

// SetLogger installs a logger; a nil logger restores the no-op default.
func (ae *AnalysisEngine) SetLogger(l Logger) {
	if l == nil {
		ae.logger = noopLogger{}
		return
	}
	ae.logger = l
}

// RunAnalysis executes the pipeline for one configuration.
func (ae *AnalysisEngine) RunAnalysis(ctx context.Context, config *domain.Configuration) (*domain.AnalysisReport, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: configuration is required", domain.ErrInvalidInput)
	}
	if len(config.Household.Members) == 0 {
		return nil, fmt.Errorf("%w: household must have at least one member", domain.ErrInvalidInput)
	}
	if config.BaselineCost.IsNegative() {
		return nil, fmt.Errorf("%w: baseline cost must be non-negative, got %s", domain.ErrInvalidInput, config.BaselineCost)
	}

	report := &domain.AnalysisReport{ReferenceTier: ae.ReferenceTier}
	householdCost := decimal.Zero

	for _, member := range config.Household.Members {
		input := domain.RiskInput{
			Age:               member.Age,
			Gender:            member.Gender,
			HealthStatus:      member.HealthStatus,
			ChronicConditions: member.ChronicConditions,
			BaselineCost:      config.BaselineCost,
		}

		factor, err := ae.RiskCalc.ComputeForInput(input)
		if err != nil {
			return nil, fmt.Errorf("risk factor for %s: %w", member.Name, err)
		}

		adjusted := config.BaselineCost.Mul(factor)
		ae.logger.Debugf("member %s: risk factor %s, adjusted baseline %s", member.Name, factor, adjusted.Round(0))

		dist, err := ae.DistGen.GenerateCostDistribution(config.BaselineCost, factor)
		if err != nil {
			return nil, fmt.Errorf("cost distribution for %s: %w", member.Name, err)
		}

		claims, err := ae.Claims.ModelClaimsProfile(member.Age, member.HealthStatus, len(member.ChronicConditions) > 0)
		if err != nil {
			return nil, fmt.Errorf("claims profile for %s: %w", member.Name, err)
		}

		report.Members = append(report.Members, domain.MemberAssessment{
			Name:             member.Name,
			RiskFactor:       factor,
			AdjustedBaseline: adjusted,
			Distribution:     dist,
			Claims:           claims,
		})
		householdCost = householdCost.Add(adjusted)
	}
	report.HouseholdExpectedCost = householdCost

	scenario, err := ae.resolveScenario(config)
	if err != nil {
		return nil, err
	}
	report.Scenario = scenario

	sharing, ok := ae.TCC.Tables.CostSharing[ae.ReferenceTier]
	if !ok {
		return nil, fmt.Errorf("%w: no cost-sharing structure for reference tier %s", domain.ErrInvalidInput, ae.ReferenceTier)
	}

	ae.logger.Infof("simulating %s-tier cost sharing, household expected cost %s", ae.ReferenceTier, householdCost.Round(0))
	simResult, err := ae.MonteCarlo.RunMonteCarloAsync(ctx, householdCost, sharing.Deductible, sharing.OOPMaximum, config.Simulation)
	if err != nil {
		return nil, fmt.Errorf("monte carlo simulation: %w", err)
	}
	report.Simulation = simResult

	if len(config.MonthlyPremiums) > 0 {
		ranking, err := ae.TCC.AnalyzeTotalCostOfCare(config.MonthlyPremiums, householdCost, scenario)
		if err != nil {
			return nil, fmt.Errorf("total cost of care: %w", err)
		}
		report.TierRanking = ranking
	}

	return report, nil
}

// resolveScenario uses the configured scenario when pinned, otherwise derives
// one from the first member's health profile.
func (ae *AnalysisEngine) resolveScenario(config *domain.Configuration) (domain.UtilizationScenario, error) {
	if config.Scenario != "" {
		return domain.ParseUtilizationScenario(config.Scenario)
	}
	first := config.Household.Members[0]
	return DetermineUtilizationScenario(first.Age, first.ChronicConditions, first.PrescriptionVolume), nil
}
