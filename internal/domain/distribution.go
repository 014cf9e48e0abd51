package domain

import (
	"github.com/shopspring/decimal"
)

// CostDistribution is an eight-point percentile profile of annual medical
// cost, derived deterministically from a risk-adjusted baseline. Each field
// is rounded to the nearest whole currency unit independently, so percentiles
// can be non-monotonic when the adjusted mean is below about $10. That is a
// known boundary of the proportional model, not a defect; downstream
// consumers depend on the exact figures.
type CostDistribution struct {
	P10  decimal.Decimal `json:"p10"`
	P25  decimal.Decimal `json:"p25"`
	P50  decimal.Decimal `json:"p50"`
	P75  decimal.Decimal `json:"p75"`
	P90  decimal.Decimal `json:"p90"`
	P95  decimal.Decimal `json:"p95"`
	P99  decimal.Decimal `json:"p99"`
	Mean decimal.Decimal `json:"mean"`
}

// DistributionShape holds the fixed proportional multipliers applied to the
// adjusted mean. The ratios approximate the right skew of healthcare cost
// distributions (coefficient of variation ~2.5) without a full lognormal
// inversion.
type DistributionShape struct {
	P10  decimal.Decimal
	P25  decimal.Decimal
	P50  decimal.Decimal
	P75  decimal.Decimal
	P90  decimal.Decimal
	P95  decimal.Decimal
	P99  decimal.Decimal
	Mean decimal.Decimal
}

// DefaultDistributionShape returns the standard percentile multipliers.
func DefaultDistributionShape() DistributionShape {
	return DistributionShape{
		P10:  decimal.NewFromFloat(0.10),
		P25:  decimal.NewFromFloat(0.25),
		P50:  decimal.NewFromFloat(0.60),
		P75:  decimal.NewFromFloat(1.20),
		P90:  decimal.NewFromFloat(2.50),
		P95:  decimal.NewFromFloat(4.00),
		P99:  decimal.NewFromFloat(10.00),
		Mean: decimal.NewFromFloat(1.00),
	}
}
