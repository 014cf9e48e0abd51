package domain

import (
	"github.com/shopspring/decimal"
)

// ClaimsProfile estimates claim frequency, severity, and tail-event
// probabilities for one person. It is an independent, qualitative view of
// risk: the narrative layer consumes it, the simulator does not.
type ClaimsProfile struct {
	ExpectedClaims          decimal.Decimal `json:"expectedClaims"`          // claims per year
	AvgClaimSize            decimal.Decimal `json:"avgClaimSize"`            // currency
	ProbabilityHighCost     decimal.Decimal `json:"probabilityHighCost"`     // fraction, capped at 0.30
	ProbabilityCatastrophic decimal.Decimal `json:"probabilityCatastrophic"` // fraction, capped at 0.10
}

// ClaimsAdjustment scales the four claims-profile metrics in one stage.
type ClaimsAdjustment struct {
	Claims       decimal.Decimal
	Size         decimal.Decimal
	HighCost     decimal.Decimal
	Catastrophic decimal.Decimal
}

// ClaimsTables bundles the baselines and adjustment stages for the claims
// profile model. The probability caps are a policy decision to keep the
// narrative layer from making implausible claims; they must hold for every
// input combination.
type ClaimsTables struct {
	BaselineClaims       decimal.Decimal
	BaselineClaimSize    decimal.Decimal
	BaselineHighCost     decimal.Decimal
	BaselineCatastrophic decimal.Decimal

	AgeAdjustments    []ClaimsAgeBracket
	HealthAdjustments map[HealthStatus]ClaimsAdjustment
	ChronicBoost      ClaimsAdjustment

	MaxHighCostProbability     decimal.Decimal
	MaxCatastrophicProbability decimal.Decimal
}

// ClaimsAgeBracket is one row of the claims-model age table.
type ClaimsAgeBracket struct {
	MinAge     int
	MaxAge     int // inclusive
	Adjustment ClaimsAdjustment
}

// DefaultClaimsTables returns the standard claims-profile model parameters.
func DefaultClaimsTables() ClaimsTables {
	return ClaimsTables{
		BaselineClaims:       decimal.NewFromInt(5),
		BaselineClaimSize:    decimal.NewFromInt(800),
		BaselineHighCost:     decimal.NewFromFloat(0.05),
		BaselineCatastrophic: decimal.NewFromFloat(0.01),

		AgeAdjustments: []ClaimsAgeBracket{
			{MinAge: 0, MaxAge: 24, Adjustment: ClaimsAdjustment{
				Claims:       decimal.NewFromFloat(0.8),
				Size:         decimal.NewFromFloat(0.7),
				HighCost:     decimal.NewFromFloat(0.6),
				Catastrophic: decimal.NewFromFloat(0.5),
			}},
			{MinAge: 25, MaxAge: 44, Adjustment: ClaimsAdjustment{
				Claims:       decimal.NewFromFloat(1.0),
				Size:         decimal.NewFromFloat(1.0),
				HighCost:     decimal.NewFromFloat(1.0),
				Catastrophic: decimal.NewFromFloat(1.0),
			}},
			{MinAge: 45, MaxAge: 59, Adjustment: ClaimsAdjustment{
				Claims:       decimal.NewFromFloat(1.3),
				Size:         decimal.NewFromFloat(1.2),
				HighCost:     decimal.NewFromFloat(1.5),
				Catastrophic: decimal.NewFromFloat(1.5),
			}},
			{MinAge: 60, MaxAge: 120, Adjustment: ClaimsAdjustment{
				Claims:       decimal.NewFromFloat(1.7),
				Size:         decimal.NewFromFloat(1.5),
				HighCost:     decimal.NewFromFloat(2.2),
				Catastrophic: decimal.NewFromFloat(2.5),
			}},
		},

		HealthAdjustments: map[HealthStatus]ClaimsAdjustment{
			HealthExcellent: {
				Claims:       decimal.NewFromFloat(0.6),
				Size:         decimal.NewFromFloat(0.8),
				HighCost:     decimal.NewFromFloat(0.5),
				Catastrophic: decimal.NewFromFloat(0.5),
			},
			HealthGood: {
				Claims:       decimal.NewFromFloat(1.0),
				Size:         decimal.NewFromFloat(1.0),
				HighCost:     decimal.NewFromFloat(1.0),
				Catastrophic: decimal.NewFromFloat(1.0),
			},
			HealthFair: {
				Claims:       decimal.NewFromFloat(1.4),
				Size:         decimal.NewFromFloat(1.2),
				HighCost:     decimal.NewFromFloat(1.8),
				Catastrophic: decimal.NewFromFloat(2.0),
			},
			HealthPoor: {
				Claims:       decimal.NewFromFloat(2.0),
				Size:         decimal.NewFromFloat(1.5),
				HighCost:     decimal.NewFromFloat(3.0),
				Catastrophic: decimal.NewFromFloat(3.5),
			},
		},

		ChronicBoost: ClaimsAdjustment{
			Claims:       decimal.NewFromFloat(1.6),
			Size:         decimal.NewFromFloat(1.3),
			HighCost:     decimal.NewFromFloat(1.8),
			Catastrophic: decimal.NewFromFloat(1.5),
		},

		MaxHighCostProbability:     decimal.NewFromFloat(0.30),
		MaxCatastrophicProbability: decimal.NewFromFloat(0.10),
	}
}
