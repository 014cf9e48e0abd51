package calculation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/shopspring/decimal"
)

// coinsuranceRate is the share of expenses the household pays above the
// deductible, before the out-of-pocket maximum applies.
const coinsuranceRate = 0.20

// oopMaxHitThreshold: a capped outcome at or above this share of the OOP
// maximum counts as hitting the cap.
const oopMaxHitThreshold = 0.95

// MonteCarloEngine quantifies out-of-pocket cost uncertainty under one plan's
// cost-sharing rules via repeated lognormal expense sampling. Identical
// inputs with an explicit seed reproduce bit-identical outputs; that is the
// engine's core contract.
type MonteCarloEngine struct{}

// NewMonteCarloEngine creates a Monte Carlo simulation engine.
func NewMonteCarloEngine() *MonteCarloEngine {
	return &MonteCarloEngine{}
}

// simulationParams carries one run's inputs across the worker boundary.
type simulationParams struct {
	baselineCost float64
	deductible   float64
	oopMax       float64
	iterations   int
	seed         int64
	sigma        float64
}

// simulationOutcomes is the raw loop output, before summary statistics.
type simulationOutcomes struct {
	outcomes           []float64 // capped out-of-pocket, one per iteration
	exceededDeductible int       // pre-cap expense > deductible
	hitOOPMax          int       // capped outcome >= 95% of oopMax
}

// RunMonteCarlo runs the simulation synchronously.
func (mce *MonteCarloEngine) RunMonteCarlo(baselineCost, deductible, oopMax decimal.Decimal, config domain.SimulationConfig) (*domain.MonteCarloResult, error) {
	params, err := mce.prepareParams(baselineCost, deductible, oopMax, config)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw := simulateOutcomes(params)
	return summarize(raw, params, time.Since(start)), nil
}

// RunMonteCarloAsync offloads the sampling loop to a background goroutine and
// suspends until the result returns. If the context is cancelled while the
// worker runs, the worker's eventual result is discarded and the call falls
// back to the synchronous in-process path; partial statistics are never
// returned. Results are identical to RunMonteCarlo by construction, since
// both paths call the same loop.
func (mce *MonteCarloEngine) RunMonteCarloAsync(ctx context.Context, baselineCost, deductible, oopMax decimal.Decimal, config domain.SimulationConfig) (*domain.MonteCarloResult, error) {
	params, err := mce.prepareParams(baselineCost, deductible, oopMax, config)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resultCh := make(chan simulationOutcomes, 1)
	go func() {
		resultCh <- simulateOutcomes(params)
	}()

	select {
	case raw := <-resultCh:
		return summarize(raw, params, time.Since(start)), nil
	case <-ctx.Done():
		raw := simulateOutcomes(params)
		return summarize(raw, params, time.Since(start)), nil
	}
}

// prepareParams validates inputs and resolves config defaults. Degenerate
// cost-sharing (deductible above the OOP maximum) is not an error: every
// outcome is simply capped at the maximum.
func (mce *MonteCarloEngine) prepareParams(baselineCost, deductible, oopMax decimal.Decimal, config domain.SimulationConfig) (simulationParams, error) {
	if baselineCost.IsNegative() {
		return simulationParams{}, fmt.Errorf("%w: baseline cost must be non-negative, got %s", domain.ErrInvalidInput, baselineCost)
	}
	if deductible.IsNegative() {
		return simulationParams{}, fmt.Errorf("%w: deductible must be non-negative, got %s", domain.ErrInvalidInput, deductible)
	}
	if oopMax.IsNegative() {
		return simulationParams{}, fmt.Errorf("%w: out-of-pocket maximum must be non-negative, got %s", domain.ErrInvalidInput, oopMax)
	}

	resolved := config.WithDefaults()
	if resolved.Iterations <= 0 {
		return simulationParams{}, fmt.Errorf("%w: iteration count must be positive, got %d", domain.ErrInvalidInput, resolved.Iterations)
	}
	if resolved.Sigma <= 0 {
		return simulationParams{}, fmt.Errorf("%w: sigma must be positive, got %v", domain.ErrInvalidInput, resolved.Sigma)
	}

	baseline, _ := baselineCost.Float64()
	ded, _ := deductible.Float64()
	oop, _ := oopMax.Float64()

	return simulationParams{
		baselineCost: baseline,
		deductible:   ded,
		oopMax:       oop,
		iterations:   resolved.Iterations,
		seed:         resolved.EffectiveSeed(),
		sigma:        resolved.Sigma,
	}, nil
}

// simulateOutcomes is the single sampling loop shared by the synchronous and
// offloaded paths. Each iteration draws a lognormal medical expense with
// location ln(baselineCost) and the configured scale, then applies the plan's
// cost-sharing: the household pays everything up to the deductible plus 20%
// coinsurance above it, capped at the out-of-pocket maximum.
func simulateOutcomes(params simulationParams) simulationOutcomes {
	rng := rand.New(rand.NewSource(params.seed))
	raw := simulationOutcomes{outcomes: make([]float64, params.iterations)}

	for i := 0; i < params.iterations; i++ {
		z := boxMuller(rng)

		expense := 0.0
		if params.baselineCost > 0 {
			expense = params.baselineCost * math.Exp(params.sigma*z)
		}

		outOfPocket := math.Min(expense, params.deductible) + coinsuranceRate*math.Max(0, expense-params.deductible)
		if outOfPocket > params.oopMax {
			outOfPocket = params.oopMax
		}

		raw.outcomes[i] = outOfPocket
		if expense > params.deductible {
			raw.exceededDeductible++
		}
		if outOfPocket >= oopMaxHitThreshold*params.oopMax {
			raw.hitOOPMax++
		}
	}

	return raw
}

// boxMuller transforms two independent uniforms into a standard-normal
// variate. A zero first uniform is redrawn to keep the log finite; the redraw
// stays on the seeded stream, so determinism holds.
func boxMuller(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// summarize sorts the outcomes and computes the moments, nearest-rank
// percentiles, and threshold probabilities.
func summarize(raw simulationOutcomes, params simulationParams, elapsed time.Duration) *domain.MonteCarloResult {
	outcomes := raw.outcomes
	sort.Float64s(outcomes)

	n := len(outcomes)
	sum := 0.0
	for _, v := range outcomes {
		sum += v
	}
	mean := sum / float64(n)

	variance := 0.0
	if n > 1 {
		for _, v := range outcomes {
			d := v - mean
			variance += d * d
		}
		variance /= float64(n - 1)
	}
	stdDev := math.Sqrt(variance)

	percentiles := make(map[string]decimal.Decimal, 8)
	for _, p := range []int{5, 10, 25, 50, 75, 90, 95, 99} {
		percentiles[fmt.Sprintf("p%d", p)] = money(percentileNearestRank(outcomes, p))
	}

	return &domain.MonteCarloResult{
		Median:                           money(percentileNearestRank(outcomes, 50)),
		Mean:                             money(mean),
		StandardDeviation:                money(stdDev),
		Percentiles:                      percentiles,
		ProbabilityOfExceedingDeductible: roundedPercent(raw.exceededDeductible, n),
		ProbabilityOfHittingOOPMax:       roundedPercent(raw.hitOOPMax, n),
		ExpectedValueAtRisk:              money(percentileNearestRank(outcomes, 95)),
		SimulationCount:                  n,
		ExecutionTime:                    elapsed,
	}
}

// percentileNearestRank indexes sorted outcomes at floor(p/100 * (N-1)).
func percentileNearestRank(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Floor(float64(p) / 100 * float64(len(sorted)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func roundedPercent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
