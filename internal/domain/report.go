package domain

import (
	"github.com/shopspring/decimal"
)

// Member describes one household member in an input profile.
type Member struct {
	Name               string             `yaml:"name" json:"name"`
	Age                int                `yaml:"age" json:"age"`
	Gender             Gender             `yaml:"gender" json:"gender"`
	HealthStatus       HealthStatus       `yaml:"health_status" json:"healthStatus"`
	ChronicConditions  []string           `yaml:"chronic_conditions" json:"chronicConditions"`
	PrescriptionVolume PrescriptionVolume `yaml:"prescription_volume" json:"prescriptionVolume"`
}

// Household groups the members an analysis covers.
type Household struct {
	Members []Member `yaml:"members" json:"members"`
}

// Configuration is the top-level input profile for an analysis run: the
// household, the reference baseline cost, resolved monthly premiums per tier,
// and simulation settings. Premiums arrive already resolved; this engine does
// no geographic or eligibility lookup.
type Configuration struct {
	Household       Household                     `yaml:"household" json:"household"`
	BaselineCost    decimal.Decimal               `yaml:"baseline_cost" json:"baselineCost"`
	MonthlyPremiums map[MetalTier]decimal.Decimal `yaml:"monthly_premiums" json:"monthlyPremiums"`
	Simulation      SimulationConfig              `yaml:"simulation" json:"simulation"`

	// Scenario optionally pins the utilization scenario; when empty it is
	// derived from the first member's health profile.
	Scenario string `yaml:"scenario" json:"scenario,omitempty"`
}

// MemberAssessment bundles the per-member model outputs.
type MemberAssessment struct {
	Name             string           `json:"name"`
	RiskFactor       decimal.Decimal  `json:"riskFactor"`
	AdjustedBaseline decimal.Decimal  `json:"adjustedBaseline"`
	Distribution     CostDistribution `json:"distribution"`
	Claims           ClaimsProfile    `json:"claims"`
}

// AnalysisReport is the full pipeline output for one profile: per-member
// assessments, the household expected cost, the simulation under the chosen
// reference plan, and the tier ranking.
type AnalysisReport struct {
	Members               []MemberAssessment  `json:"members"`
	HouseholdExpectedCost decimal.Decimal     `json:"householdExpectedCost"`
	Scenario              UtilizationScenario `json:"scenario"`
	ReferenceTier         MetalTier           `json:"referenceTier"`
	Simulation            *MonteCarloResult   `json:"simulation,omitempty"`
	TierRanking           []TCCAnalysis       `json:"tierRanking,omitempty"`
}
