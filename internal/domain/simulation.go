package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSimulationIterations is used when a config leaves the iteration
// count unset. Practical range is 10 to 10000.
const DefaultSimulationIterations = 1000

// DefaultSimulationSigma is the default log-space standard deviation of the
// lognormal expense draws.
const DefaultSimulationSigma = 0.5

// SimulationConfig controls a Monte Carlo run. A nil Seed means a
// time-derived value is used, forfeiting reproducibility.
type SimulationConfig struct {
	Iterations int     `yaml:"iterations" json:"iterations"`
	Seed       *int64  `yaml:"seed" json:"seed,omitempty"`
	Sigma      float64 `yaml:"sigma" json:"sigma"`
}

// WithDefaults fills unset fields with the standard defaults.
func (sc SimulationConfig) WithDefaults() SimulationConfig {
	out := sc
	if out.Iterations == 0 {
		out.Iterations = DefaultSimulationIterations
	}
	if out.Sigma == 0 {
		out.Sigma = DefaultSimulationSigma
	}
	return out
}

// EffectiveSeed returns the configured seed, or a time-derived one when the
// config does not pin it.
func (sc SimulationConfig) EffectiveSeed() int64 {
	if sc.Seed != nil {
		return *sc.Seed
	}
	return time.Now().UnixNano()
}

// MonteCarloResult summarizes one simulation run. Probabilities are rounded
// 0-100 integers; ExpectedValueAtRisk is the 95th percentile of simulated
// out-of-pocket outcomes.
type MonteCarloResult struct {
	Median                          decimal.Decimal            `json:"median"`
	Mean                            decimal.Decimal            `json:"mean"`
	StandardDeviation               decimal.Decimal            `json:"standardDeviation"`
	Percentiles                     map[string]decimal.Decimal `json:"percentiles"` // p5, p10, p25, p50, p75, p90, p95, p99
	ProbabilityOfExceedingDeductible int                       `json:"probabilityOfExceedingDeductible"`
	ProbabilityOfHittingOOPMax       int                       `json:"probabilityOfHittingOOPMax"`
	ExpectedValueAtRisk             decimal.Decimal            `json:"expectedValueAtRisk"`
	SimulationCount                 int                        `json:"simulationCount"`
	ExecutionTime                   time.Duration              `json:"executionTime"`
}

// SimulationPercentileKeys lists the percentile map keys in ascending order.
func SimulationPercentileKeys() []string {
	return []string{"p5", "p10", "p25", "p50", "p75", "p90", "p95", "p99"}
}
