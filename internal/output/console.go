package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/healthsim/internal/domain"
)

// ConsoleFormatter renders the detailed plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "HEALTHCARE COST RISK ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)

	for i, m := range report.Members {
		fmt.Fprintf(&buf, "MEMBER %d: %s\n", i+1, m.Name)
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		fmt.Fprintf(&buf, "Risk Adjustment Factor: %s\n", m.RiskFactor.Round(2))
		fmt.Fprintf(&buf, "Risk-Adjusted Baseline: %s\n", FormatCurrency(m.AdjustedBaseline))
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Annual Cost Percentiles:")
		fmt.Fprintf(&buf, "  p10: %-12s p25: %-12s p50: %-12s p75: %s\n",
			FormatCurrency(m.Distribution.P10), FormatCurrency(m.Distribution.P25),
			FormatCurrency(m.Distribution.P50), FormatCurrency(m.Distribution.P75))
		fmt.Fprintf(&buf, "  p90: %-12s p95: %-12s p99: %-12s mean: %s\n",
			FormatCurrency(m.Distribution.P90), FormatCurrency(m.Distribution.P95),
			FormatCurrency(m.Distribution.P99), FormatCurrency(m.Distribution.Mean))
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Claims Outlook:")
		fmt.Fprintf(&buf, "  Expected claims/year:     %s\n", m.Claims.ExpectedClaims.Round(1))
		fmt.Fprintf(&buf, "  Average claim size:       %s\n", FormatCurrency(m.Claims.AvgClaimSize))
		fmt.Fprintf(&buf, "  P(high-cost year):        %s\n", FormatPercentage(m.Claims.ProbabilityHighCost))
		fmt.Fprintf(&buf, "  P(catastrophic year):     %s\n", FormatPercentage(m.Claims.ProbabilityCatastrophic))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "HOUSEHOLD SUMMARY")
	fmt.Fprintln(&buf, "=================")
	fmt.Fprintf(&buf, "Expected Annual Medical Cost: %s\n", FormatCurrency(report.HouseholdExpectedCost))
	fmt.Fprintf(&buf, "Utilization Scenario:         %s\n", report.Scenario)
	fmt.Fprintln(&buf)

	if report.Simulation != nil {
		sim := report.Simulation
		fmt.Fprintf(&buf, "OUT-OF-POCKET SIMULATION (%s tier, %d iterations)\n", report.ReferenceTier, sim.SimulationCount)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "Median OOP:             %s\n", FormatCurrency(sim.Median))
		fmt.Fprintf(&buf, "Mean OOP:               %s\n", FormatCurrency(sim.Mean))
		fmt.Fprintf(&buf, "Std Deviation:          %s\n", FormatCurrency(sim.StandardDeviation))
		fmt.Fprintf(&buf, "Value at Risk (p95):    %s\n", FormatCurrency(sim.ExpectedValueAtRisk))
		fmt.Fprintf(&buf, "P(exceed deductible):   %d%%\n", sim.ProbabilityOfExceedingDeductible)
		fmt.Fprintf(&buf, "P(hit OOP maximum):     %d%%\n", sim.ProbabilityOfHittingOOPMax)
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Simulated OOP Percentiles:")
		for _, key := range domain.SimulationPercentileKeys() {
			fmt.Fprintf(&buf, "  %-4s %s\n", key+":", FormatCurrency(sim.Percentiles[key]))
		}
		fmt.Fprintln(&buf)
	}

	if len(report.TierRanking) > 0 {
		fmt.Fprintln(&buf, "PLAN TIER RANKING (Total Cost of Care)")
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "%-4s %-10s %-14s %-14s %s\n", "Rank", "Tier", "Premium/yr", "Est. OOP", "Total/yr")
		for _, t := range report.TierRanking {
			fmt.Fprintf(&buf, "%-4d %-10s %-14s %-14s %s\n",
				t.Ranking, t.MetalTier, FormatCurrency(t.AnnualPremium),
				FormatCurrency(t.EstimatedOOP), FormatCurrency(t.TotalAnnualCost))
		}
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}
