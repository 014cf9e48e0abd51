package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
)

// TCCAnalyzer ranks plan tiers by deterministic total cost of care: annual
// premium plus estimated out-of-pocket under a fixed utilization scenario.
// Complementary to the Monte Carlo view, which quantifies the spread around
// this expectation.
type TCCAnalyzer struct {
	Tables domain.PlanTables
}

// NewTCCAnalyzer creates an analyzer with the default cost-sharing and
// utilization tables.
func NewTCCAnalyzer() *TCCAnalyzer {
	return &TCCAnalyzer{Tables: domain.DefaultPlanTables()}
}

// NewTCCAnalyzerWithTables creates an analyzer with substituted tables.
func NewTCCAnalyzerWithTables(tables domain.PlanTables) *TCCAnalyzer {
	return &TCCAnalyzer{Tables: tables}
}

// AnalyzeTotalCostOfCare computes total annual cost for each of the four
// priced tiers and returns them sorted ascending by total cost, with rank 1
// assigned to the cheapest. Ties keep the stable Bronze/Silver/Gold/Platinum
// input order. Catastrophic plans are excluded from ranking.
func (ta *TCCAnalyzer) AnalyzeTotalCostOfCare(monthlyPremiums map[domain.MetalTier]decimal.Decimal, expectedMedicalCost decimal.Decimal, scenario domain.UtilizationScenario) ([]domain.TCCAnalysis, error) {
	if expectedMedicalCost.IsNegative() {
		return nil, fmt.Errorf("%w: expected medical cost must be non-negative, got %s", domain.ErrInvalidInput, expectedMedicalCost)
	}
	pattern, ok := ta.Tables.Utilization[scenario]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized utilization scenario %q", domain.ErrInvalidInput, scenario)
	}

	twelve := decimal.NewFromInt(12)
	analyses := make([]domain.TCCAnalysis, 0, 4)
	for _, tier := range domain.RankedTiers() {
		sharing, ok := ta.Tables.CostSharing[tier]
		if !ok {
			return nil, fmt.Errorf("%w: no cost-sharing structure for tier %s", domain.ErrInvalidInput, tier)
		}
		monthly, ok := monthlyPremiums[tier]
		if !ok {
			return nil, fmt.Errorf("%w: missing premium for tier %s", domain.ErrInvalidInput, tier)
		}
		if monthly.IsNegative() {
			return nil, fmt.Errorf("%w: premium for tier %s must be non-negative, got %s", domain.ErrInvalidInput, tier, monthly)
		}

		annualPremium := monthly.Mul(twelve)
		oop := estimateOutOfPocket(sharing, pattern, expectedMedicalCost)

		analyses = append(analyses, domain.TCCAnalysis{
			MetalTier:       tier,
			AnnualPremium:   annualPremium,
			EstimatedOOP:    oop,
			TotalAnnualCost: annualPremium.Add(oop),
			Deductible:      sharing.Deductible,
			OOPMaximum:      sharing.OOPMaximum,
		})
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].TotalAnnualCost.LessThan(analyses[j].TotalAnnualCost)
	})
	for i := range analyses {
		analyses[i].Ranking = i + 1
	}

	return analyses, nil
}

// estimateOutOfPocket applies the deterministic cost-sharing formula: the
// deductible portion of expected costs, plus copays for the scenario's visit
// counts, plus prescription copays, plus coinsurance on the remainder at
// (1 - actuarial value), all capped at the out-of-pocket maximum.
func estimateOutOfPocket(sharing domain.CostSharingStructure, pattern domain.UtilizationPattern, expectedMedicalCost decimal.Decimal) decimal.Decimal {
	deductiblePortion := decimal.Min(sharing.Deductible, expectedMedicalCost)

	copayTotal := sharing.PrimaryCareCopay.Mul(decimal.NewFromInt(int64(pattern.PrimaryCareVisits))).
		Add(sharing.SpecialistCopay.Mul(decimal.NewFromInt(int64(pattern.SpecialistVisits)))).
		Add(sharing.ImagingCopay.Mul(decimal.NewFromInt(int64(pattern.ImagingStudies))))

	rxTotal := sharing.RxMonthlyCopay.Mul(decimal.NewFromInt(int64(pattern.RxMonths)))

	coinsuranceBase := decimal.Max(decimal.Zero, expectedMedicalCost.Sub(sharing.Deductible).Sub(copayTotal))
	coinsurance := coinsuranceBase.Mul(decimal.NewFromInt(1).Sub(sharing.ActuarialValue))

	total := deductiblePortion.Add(copayTotal).Add(rxTotal).Add(coinsurance)
	return decimal.Min(total, sharing.OOPMaximum)
}

// DetermineUtilizationScenario maps a health profile to one of the five
// ordinal utilization scenarios via an additive point score: age band,
// two points per chronic condition, and prescription volume. Thresholds:
// 0 -> minimal, <=2 -> low, <=5 -> medium, <=8 -> high, else very-high.
func DetermineUtilizationScenario(age int, conditions []string, rxVolume domain.PrescriptionVolume) domain.UtilizationScenario {
	score := 0

	switch {
	case age >= 60:
		score += 3
	case age >= 45:
		score += 2
	case age >= 30:
		score++
	}

	score += 2 * len(conditions)

	switch domain.PrescriptionVolume(strings.ToLower(strings.TrimSpace(string(rxVolume)))) {
	case domain.RxOneToThree:
		score += 2
	case domain.RxFourPlus:
		score += 3
	}

	switch {
	case score == 0:
		return domain.UtilizationMinimal
	case score <= 2:
		return domain.UtilizationLow
	case score <= 5:
		return domain.UtilizationMedium
	case score <= 8:
		return domain.UtilizationHigh
	default:
		return domain.UtilizationVeryHigh
	}
}
