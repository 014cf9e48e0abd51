package calculation

import (
	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
)

// ClaimsModel estimates claim frequency, severity, and tail-event
// probabilities. Independent of the simulator; feeds qualitative narrative.
type ClaimsModel struct {
	Tables domain.ClaimsTables
}

// NewClaimsModel creates a claims model with the default parameter tables.
func NewClaimsModel() *ClaimsModel {
	return &ClaimsModel{Tables: domain.DefaultClaimsTables()}
}

// NewClaimsModelWithTables creates a claims model with substituted tables.
func NewClaimsModelWithTables(tables domain.ClaimsTables) *ClaimsModel {
	return &ClaimsModel{Tables: tables}
}

// ModelClaimsProfile applies three independent multiplicative stages to the
// fixed baselines: age bracket, health status, then a flat boost when any
// chronic condition is present. Final probabilities are hard-capped
// regardless of the computed value; the caps keep the narrative layer from
// reporting implausible tail risks and must hold for every input.
func (cm *ClaimsModel) ModelClaimsProfile(age int, healthStatus domain.HealthStatus, hasChronicConditions bool) (domain.ClaimsProfile, error) {
	if _, err := domain.ParseHealthStatus(string(healthStatus)); err != nil {
		return domain.ClaimsProfile{}, err
	}

	profile := domain.ClaimsProfile{
		ExpectedClaims:          cm.Tables.BaselineClaims,
		AvgClaimSize:            cm.Tables.BaselineClaimSize,
		ProbabilityHighCost:     cm.Tables.BaselineHighCost,
		ProbabilityCatastrophic: cm.Tables.BaselineCatastrophic,
	}

	profile = applyAdjustment(profile, cm.ageAdjustment(age))

	if health, ok := cm.Tables.HealthAdjustments[healthStatus]; ok {
		profile = applyAdjustment(profile, health)
	}

	if hasChronicConditions {
		profile = applyAdjustment(profile, cm.Tables.ChronicBoost)
	}

	if profile.ProbabilityHighCost.GreaterThan(cm.Tables.MaxHighCostProbability) {
		profile.ProbabilityHighCost = cm.Tables.MaxHighCostProbability
	}
	if profile.ProbabilityCatastrophic.GreaterThan(cm.Tables.MaxCatastrophicProbability) {
		profile.ProbabilityCatastrophic = cm.Tables.MaxCatastrophicProbability
	}

	return profile, nil
}

// ageAdjustment finds the claims-model age bracket, clamping out-of-range
// ages to the nearest bracket like the risk model does.
func (cm *ClaimsModel) ageAdjustment(age int) domain.ClaimsAdjustment {
	brackets := cm.Tables.AgeAdjustments
	if len(brackets) == 0 {
		return identityAdjustment()
	}
	if age < brackets[0].MinAge {
		return brackets[0].Adjustment
	}
	for _, b := range brackets {
		if age >= b.MinAge && age <= b.MaxAge {
			return b.Adjustment
		}
	}
	return brackets[len(brackets)-1].Adjustment
}

func applyAdjustment(p domain.ClaimsProfile, adj domain.ClaimsAdjustment) domain.ClaimsProfile {
	return domain.ClaimsProfile{
		ExpectedClaims:          p.ExpectedClaims.Mul(adj.Claims),
		AvgClaimSize:            p.AvgClaimSize.Mul(adj.Size),
		ProbabilityHighCost:     p.ProbabilityHighCost.Mul(adj.HighCost),
		ProbabilityCatastrophic: p.ProbabilityCatastrophic.Mul(adj.Catastrophic),
	}
}

func identityAdjustment() domain.ClaimsAdjustment {
	one := decimal.NewFromInt(1)
	return domain.ClaimsAdjustment{Claims: one, Size: one, HighCost: one, Catastrophic: one}
}
