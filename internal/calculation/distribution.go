package calculation

import (
	"fmt"

	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
)

// DistributionGenerator derives an analytic cost-percentile profile from a
// risk-adjusted baseline. Deterministic; no sampling involved.
type DistributionGenerator struct {
	Shape domain.DistributionShape
}

// NewDistributionGenerator creates a generator with the standard percentile
// multipliers.
func NewDistributionGenerator() *DistributionGenerator {
	return &DistributionGenerator{Shape: domain.DefaultDistributionShape()}
}

// NewDistributionGeneratorWithShape creates a generator with substituted
// multipliers.
func NewDistributionGeneratorWithShape(shape domain.DistributionShape) *DistributionGenerator {
	return &DistributionGenerator{Shape: shape}
}

// GenerateCostDistribution maps (baselineCost, riskFactor) to the eight-point
// percentile profile. Each field is a fixed multiple of the adjusted mean,
// rounded to the nearest whole currency unit independently. Per-field
// rounding can produce non-monotonic percentiles when the adjusted mean is
// below about $10; that behavior is kept as-is because the narrative layer
// depends on the exact figures.
func (dg *DistributionGenerator) GenerateCostDistribution(baselineCost, riskFactor decimal.Decimal) (domain.CostDistribution, error) {
	if baselineCost.IsNegative() {
		return domain.CostDistribution{}, fmt.Errorf("%w: baseline cost must be non-negative, got %s", domain.ErrInvalidInput, baselineCost)
	}
	if !riskFactor.IsPositive() {
		return domain.CostDistribution{}, fmt.Errorf("%w: risk factor must be positive, got %s", domain.ErrInvalidInput, riskFactor)
	}

	adjustedMean := baselineCost.Mul(riskFactor)

	return domain.CostDistribution{
		P10:  adjustedMean.Mul(dg.Shape.P10).Round(0),
		P25:  adjustedMean.Mul(dg.Shape.P25).Round(0),
		P50:  adjustedMean.Mul(dg.Shape.P50).Round(0),
		P75:  adjustedMean.Mul(dg.Shape.P75).Round(0),
		P90:  adjustedMean.Mul(dg.Shape.P90).Round(0),
		P95:  adjustedMean.Mul(dg.Shape.P95).Round(0),
		P99:  adjustedMean.Mul(dg.Shape.P99).Round(0),
		Mean: adjustedMean.Mul(dg.Shape.Mean).Round(0),
	}, nil
}
