package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MetalTier identifies an ACA marketplace plan tier.
type MetalTier string

const (
	TierBronze       MetalTier = "Bronze"
	TierSilver       MetalTier = "Silver"
	TierGold         MetalTier = "Gold"
	TierPlatinum     MetalTier = "Platinum"
	TierCatastrophic MetalTier = "Catastrophic"
)

// RankedTiers lists the four priced tiers the optimizer ranks, in stable
// input order. Catastrophic plans are priced elsewhere but excluded from
// total-cost ranking.
func RankedTiers() []MetalTier {
	return []MetalTier{TierBronze, TierSilver, TierGold, TierPlatinum}
}

// ParseMetalTier converts a string to a MetalTier, case-insensitively.
func ParseMetalTier(s string) (MetalTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bronze":
		return TierBronze, nil
	case "silver":
		return TierSilver, nil
	case "gold":
		return TierGold, nil
	case "platinum":
		return TierPlatinum, nil
	case "catastrophic":
		return TierCatastrophic, nil
	}
	return "", fmt.Errorf("%w: unrecognized metal tier %q", ErrInvalidInput, s)
}

// CostSharingStructure holds one tier's cost-sharing rules. Static reference
// data consumed by the optimizer and the simulator; by design the OOP maximum
// is at least the deductible, but the simulator tolerates misconfigured
// inputs where it is not.
type CostSharingStructure struct {
	Tier                 MetalTier       `yaml:"tier" json:"tier"`
	Deductible           decimal.Decimal `yaml:"deductible" json:"deductible"`
	OOPMaximum           decimal.Decimal `yaml:"oop_maximum" json:"oopMaximum"`
	PrimaryCareCopay     decimal.Decimal `yaml:"primary_care_copay" json:"primaryCareCopay"`
	SpecialistCopay      decimal.Decimal `yaml:"specialist_copay" json:"specialistCopay"`
	ImagingCopay         decimal.Decimal `yaml:"imaging_copay" json:"imagingCopay"`
	RxMonthlyCopay       decimal.Decimal `yaml:"rx_monthly_copay" json:"rxMonthlyCopay"`
	ActuarialValue       decimal.Decimal `yaml:"actuarial_value" json:"actuarialValue"` // fraction of costs the plan covers
}

// UtilizationScenario is an ordinal bucket of expected annual healthcare
// usage intensity.
type UtilizationScenario string

const (
	UtilizationMinimal  UtilizationScenario = "minimal"
	UtilizationLow      UtilizationScenario = "low"
	UtilizationMedium   UtilizationScenario = "medium"
	UtilizationHigh     UtilizationScenario = "high"
	UtilizationVeryHigh UtilizationScenario = "very-high"
)

// ParseUtilizationScenario converts a string to a UtilizationScenario.
func ParseUtilizationScenario(s string) (UtilizationScenario, error) {
	switch UtilizationScenario(strings.ToLower(strings.TrimSpace(s))) {
	case UtilizationMinimal:
		return UtilizationMinimal, nil
	case UtilizationLow:
		return UtilizationLow, nil
	case UtilizationMedium:
		return UtilizationMedium, nil
	case UtilizationHigh:
		return UtilizationHigh, nil
	case UtilizationVeryHigh:
		return UtilizationVeryHigh, nil
	}
	return "", fmt.Errorf("%w: unrecognized utilization scenario %q", ErrInvalidInput, s)
}

// UtilizationPattern holds the fixed annual service counts for one scenario.
type UtilizationPattern struct {
	PrimaryCareVisits int `yaml:"primary_care_visits" json:"primaryCareVisits"`
	SpecialistVisits  int `yaml:"specialist_visits" json:"specialistVisits"`
	ImagingStudies    int `yaml:"imaging_studies" json:"imagingStudies"`
	RxMonths          int `yaml:"rx_months" json:"rxMonths"` // months of prescription therapy
}

// PlanTables bundles the cost-sharing reference data the optimizer consumes,
// keyed by tier and by utilization scenario.
type PlanTables struct {
	CostSharing map[MetalTier]CostSharingStructure
	Utilization map[UtilizationScenario]UtilizationPattern
}

// DefaultPlanTables returns the standard cost-sharing and utilization tables.
func DefaultPlanTables() PlanTables {
	return PlanTables{
		CostSharing: DefaultCostSharing(),
		Utilization: DefaultUtilizationPatterns(),
	}
}

// DefaultCostSharing returns representative cost-sharing structures per tier.
func DefaultCostSharing() map[MetalTier]CostSharingStructure {
	return map[MetalTier]CostSharingStructure{
		TierBronze: {
			Tier:             TierBronze,
			Deductible:       decimal.NewFromInt(7000),
			OOPMaximum:       decimal.NewFromInt(9100),
			PrimaryCareCopay: decimal.NewFromInt(45),
			SpecialistCopay:  decimal.NewFromInt(95),
			ImagingCopay:     decimal.NewFromInt(250),
			RxMonthlyCopay:   decimal.NewFromInt(25),
			ActuarialValue:   decimal.NewFromFloat(0.60),
		},
		TierSilver: {
			Tier:             TierSilver,
			Deductible:       decimal.NewFromInt(4500),
			OOPMaximum:       decimal.NewFromInt(8500),
			PrimaryCareCopay: decimal.NewFromInt(30),
			SpecialistCopay:  decimal.NewFromInt(65),
			ImagingCopay:     decimal.NewFromInt(150),
			RxMonthlyCopay:   decimal.NewFromInt(15),
			ActuarialValue:   decimal.NewFromFloat(0.70),
		},
		TierGold: {
			Tier:             TierGold,
			Deductible:       decimal.NewFromInt(1500),
			OOPMaximum:       decimal.NewFromInt(6000),
			PrimaryCareCopay: decimal.NewFromInt(20),
			SpecialistCopay:  decimal.NewFromInt(40),
			ImagingCopay:     decimal.NewFromInt(100),
			RxMonthlyCopay:   decimal.NewFromInt(10),
			ActuarialValue:   decimal.NewFromFloat(0.80),
		},
		TierPlatinum: {
			Tier:             TierPlatinum,
			Deductible:       decimal.NewFromInt(500),
			OOPMaximum:       decimal.NewFromInt(3500),
			PrimaryCareCopay: decimal.NewFromInt(10),
			SpecialistCopay:  decimal.NewFromInt(25),
			ImagingCopay:     decimal.NewFromInt(50),
			RxMonthlyCopay:   decimal.NewFromInt(5),
			ActuarialValue:   decimal.NewFromFloat(0.90),
		},
		TierCatastrophic: {
			Tier:             TierCatastrophic,
			Deductible:       decimal.NewFromInt(9100),
			OOPMaximum:       decimal.NewFromInt(9100),
			PrimaryCareCopay: decimal.NewFromInt(0),
			SpecialistCopay:  decimal.NewFromInt(0),
			ImagingCopay:     decimal.NewFromInt(0),
			RxMonthlyCopay:   decimal.NewFromInt(0),
			ActuarialValue:   decimal.NewFromFloat(0.57),
		},
	}
}

// DefaultUtilizationPatterns returns fixed annual service counts per
// utilization scenario.
func DefaultUtilizationPatterns() map[UtilizationScenario]UtilizationPattern {
	return map[UtilizationScenario]UtilizationPattern{
		UtilizationMinimal:  {PrimaryCareVisits: 1, SpecialistVisits: 0, ImagingStudies: 0, RxMonths: 0},
		UtilizationLow:      {PrimaryCareVisits: 2, SpecialistVisits: 1, ImagingStudies: 0, RxMonths: 6},
		UtilizationMedium:   {PrimaryCareVisits: 4, SpecialistVisits: 3, ImagingStudies: 1, RxMonths: 12},
		UtilizationHigh:     {PrimaryCareVisits: 6, SpecialistVisits: 6, ImagingStudies: 2, RxMonths: 24},
		UtilizationVeryHigh: {PrimaryCareVisits: 10, SpecialistVisits: 12, ImagingStudies: 4, RxMonths: 48},
	}
}
