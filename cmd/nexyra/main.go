package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/nexyra/energy-advisor/internal/calculation"
	"github.com/nexyra/energy-advisor/internal/compare"
	"github.com/nexyra/energy-advisor/internal/config"
	"github.com/nexyra/energy-advisor/internal/domain"
	"github.com/nexyra/energy-advisor/internal/output"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "nexyra",
	Short: "NEXYRA Energy Advisor CLI",
	Long:  "Scenario calculator for solar PV, battery storage, and electrification upgrades",
}

var residentialCmd = &cobra.Command{
	Use:   "residential [scenario-file]",
	Short: "Evaluate the fixed Bronze/Silver/Gold residential tiers against a household baseline",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario(args)

		engine := calculation.NewEngine()
		engine.AllowNegativeBill = scenario.AllowNegativeBill
		result := engine.EvaluateResidential(scenario.Profile, scenario.Environment, scenario.Residential)

		rs := output.NewResidentialResultSet(compare.NewComparisonSet(result))
		render(cmd, rs)
	},
}

var commercialCmd = &cobra.Command{
	Use:   "commercial [scenario-file]",
	Short: "Quick-compare arbitrary commercial tier configurations",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario(args)
		render(cmd, evaluateGeneric(scenario, domain.SegmentCommercial, scenario.Commercial))
	},
}

var communityCmd = &cobra.Command{
	Use:   "community [scenario-file]",
	Short: "Quick-compare arbitrary community tier configurations",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario(args)
		render(cmd, evaluateGeneric(scenario, domain.SegmentCommunity, scenario.Community))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Scenario file %s is valid\n", args[0])
	},
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the named irradiance presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range domain.RegionNames() {
			irradiance, err := domain.RegionIrradiance(name)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%-20s %s kWh/kWp·yr\n", name, irradiance.StringFixed(0))
		}
		fmt.Printf("%-20s direct numeric entry via environment.irradiance\n", domain.RegionCustom)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "nexyra %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

// loadScenario parses the scenario file argument, or returns the stock
// scenario when none is given.
func loadScenario(args []string) *config.Scenario {
	if len(args) == 0 {
		scenario, err := config.NewInputParser().Parse([]byte("{}"))
		if err != nil {
			log.Fatal(err)
		}
		return scenario
	}
	scenario, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		log.Fatal(err)
	}
	return scenario
}

// evaluateGeneric runs the generic tier engine once per configured tier.
func evaluateGeneric(scenario *config.Scenario, segment domain.Segment, tiers []domain.TierPreset) *output.ResultSet {
	engine := calculation.NewEngine()
	results := make([]domain.TierResult, 0, len(tiers))
	for _, tier := range tiers {
		results = append(results, engine.EvaluateTier(tier,
			scenario.Environment.Irradiance, scenario.Profile.UnitRate, scenario.Profile.ExportRate))
	}
	return output.NewGenericResultSet(segment, results)
}

// render writes the result set in the requested format, to stdout or to the
// --output path.
func render(cmd *cobra.Command, rs *output.ResultSet) {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")

	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		log.Fatalf("unsupported format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	data, err := formatter.Format(rs)
	if err != nil {
		log.Fatal(err)
	}

	if outPath == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s report to %s\n", formatter.Name(), outPath)
}

func init() {
	for _, cmd := range []*cobra.Command{residentialCmd, commercialCmd, communityCmd} {
		cmd.Flags().StringP("format", "f", "console", "output format: console, csv, html, json")
		cmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	}

	rootCmd.AddCommand(residentialCmd)
	rootCmd.AddCommand(commercialCmd)
	rootCmd.AddCommand(communityCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
