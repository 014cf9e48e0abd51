package tui

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/healthsim/internal/calculation"
	"github.com/rgehrsitz/healthsim/internal/output"
)

// View renders the current state (required by tea.Model interface).
func (m Model) View() string {
	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " Running analysis..."
	case m.err != nil:
		body = dangerStyle.Render("Error: ") + m.err.Error()
	case m.report != nil:
		body = m.renderReport()
	default:
		body = labelStyle.Render("No report loaded.")
	}

	help := helpStyle.Render("r: re-run analysis • q: quit")

	return titleStyle.Render("Healthcare Cost Risk Analysis") + "\n" +
		panelStyle.Width(min(m.width-2, 76)).Render(body) + "\n" + help
}

func (m Model) renderReport() string {
	var b strings.Builder
	r := m.report

	b.WriteString(sectionStyle.Render("Household"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Expected annual medical cost:"),
		valueStyle.Render(output.FormatCurrency(r.HouseholdExpectedCost))))
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		labelStyle.Render("Utilization scenario:"),
		valueStyle.Render(string(r.Scenario))))

	for _, member := range r.Members {
		b.WriteString(sectionStyle.Render(member.Name))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s (%s)\n",
			labelStyle.Render("Risk factor:"),
			valueStyle.Render(member.RiskFactor.Round(2).String()),
			calculation.DescribeRiskFactor(member.RiskFactor)))
		b.WriteString(fmt.Sprintf("%s p50 %s / p90 %s / p99 %s\n\n",
			labelStyle.Render("Cost percentiles:"),
			output.FormatCurrency(member.Distribution.P50),
			output.FormatCurrency(member.Distribution.P90),
			output.FormatCurrency(member.Distribution.P99)))
	}

	if r.Simulation != nil {
		sim := r.Simulation
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Out-of-Pocket Simulation (%s tier)", r.ReferenceTier)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
			labelStyle.Render("Median:"), valueStyle.Render(output.FormatCurrency(sim.Median)),
			labelStyle.Render("Mean:"), valueStyle.Render(output.FormatCurrency(sim.Mean))))
		b.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Value at risk (p95):"),
			dangerStyle.Render(output.FormatCurrency(sim.ExpectedValueAtRisk))))
		b.WriteString(fmt.Sprintf("%s %d%%  %s %d%%\n\n",
			labelStyle.Render("P(exceed deductible):"), sim.ProbabilityOfExceedingDeductible,
			labelStyle.Render("P(hit OOP max):"), sim.ProbabilityOfHittingOOPMax))
	}

	if len(r.TierRanking) > 0 {
		b.WriteString(sectionStyle.Render("Plan Tier Ranking"))
		b.WriteString("\n")
		for _, t := range r.TierRanking {
			line := fmt.Sprintf("%d. %-9s %s/yr total (%s premium + %s OOP)",
				t.Ranking, t.MetalTier,
				output.FormatCurrency(t.TotalAnnualCost),
				output.FormatCurrency(t.AnnualPremium),
				output.FormatCurrency(t.EstimatedOOP))
			if t.Ranking == 1 {
				line = rankFirstStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
