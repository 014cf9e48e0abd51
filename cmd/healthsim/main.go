package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/healthsim/internal/calculation"
	"github.com/rgehrsitz/healthsim/internal/config"
	"github.com/rgehrsitz/healthsim/internal/domain"
	"github.com/rgehrsitz/healthsim/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "healthsim",
	Short: "Healthcare cost risk calculator",
	Long:  "Actuarial risk and cost simulation engine for household healthcare planning",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "healthsim %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Run the full risk and cost analysis for a household profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewAnalysisEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		report, err := engine.RunAnalysis(context.Background(), configData)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unsupported format %q (available: %v)", outputFormat, output.FormatterNames())
		}
		data, err := f.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a Monte Carlo out-of-pocket simulation for one plan",
	Run: func(cmd *cobra.Command, args []string) {
		baseline, _ := cmd.Flags().GetFloat64("baseline")
		deductible, _ := cmd.Flags().GetFloat64("deductible")
		oopMax, _ := cmd.Flags().GetFloat64("oop-max")
		iterations, _ := cmd.Flags().GetInt("iterations")
		sigma, _ := cmd.Flags().GetFloat64("sigma")

		simConfig := domain.SimulationConfig{Iterations: iterations, Sigma: sigma}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			simConfig.Seed = &seed
		}

		engine := calculation.NewMonteCarloEngine()
		result, err := engine.RunMonteCarlo(
			decimal.NewFromFloat(baseline),
			decimal.NewFromFloat(deductible),
			decimal.NewFromFloat(oopMax),
			simConfig,
		)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Simulated %d iterations in %s\n\n", result.SimulationCount, result.ExecutionTime)
		fmt.Printf("Median OOP:            %s\n", output.FormatCurrency(result.Median))
		fmt.Printf("Mean OOP:              %s\n", output.FormatCurrency(result.Mean))
		fmt.Printf("Std Deviation:         %s\n", output.FormatCurrency(result.StandardDeviation))
		fmt.Printf("Value at Risk (p95):   %s\n", output.FormatCurrency(result.ExpectedValueAtRisk))
		fmt.Printf("P(exceed deductible):  %d%%\n", result.ProbabilityOfExceedingDeductible)
		fmt.Printf("P(hit OOP maximum):    %d%%\n", result.ProbabilityOfHittingOOPMax)
		fmt.Println()
		for _, key := range domain.SimulationPercentileKeys() {
			fmt.Printf("  %-4s %s\n", key+":", output.FormatCurrency(result.Percentiles[key]))
		}
	},
}

var tccCmd = &cobra.Command{
	Use:   "tcc [input-file]",
	Short: "Rank plan tiers by total cost of care for a household profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if len(configData.MonthlyPremiums) == 0 {
			log.Fatal("input profile has no monthly_premiums; nothing to rank")
		}

		engine := calculation.NewAnalysisEngine()
		report, err := engine.RunAnalysis(context.Background(), configData)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Utilization scenario: %s\n", report.Scenario)
		fmt.Printf("Expected medical cost: %s\n\n", output.FormatCurrency(report.HouseholdExpectedCost))
		fmt.Printf("%-4s %-10s %-14s %-14s %s\n", "Rank", "Tier", "Premium/yr", "Est. OOP", "Total/yr")
		for _, t := range report.TierRanking {
			fmt.Printf("%-4d %-10s %-14s %-14s %s\n",
				t.Ranking, t.MetalTier, output.FormatCurrency(t.AnnualPremium),
				output.FormatCurrency(t.EstimatedOOP), output.FormatCurrency(t.TotalAnnualCost))
		}
	},
}

func init() {
	analyzeCmd.Flags().String("format", "console", "Output format (console, json, csv)")
	analyzeCmd.Flags().Bool("debug", false, "Enable debug logging")

	simulateCmd.Flags().Float64("baseline", 5000, "Risk-adjusted baseline annual medical cost")
	simulateCmd.Flags().Float64("deductible", 2000, "Plan deductible")
	simulateCmd.Flags().Float64("oop-max", 8000, "Plan out-of-pocket maximum")
	simulateCmd.Flags().Int("iterations", domain.DefaultSimulationIterations, "Simulation iterations (10-10000)")
	simulateCmd.Flags().Int64("seed", 0, "PRNG seed for reproducible runs")
	simulateCmd.Flags().Float64("sigma", domain.DefaultSimulationSigma, "Log-space standard deviation")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(tccCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
