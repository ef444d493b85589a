// Package main runs numcalc worksheets from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sartorproj/numcalc/descriptive"
	"github.com/sartorproj/numcalc/series"
	"github.com/sartorproj/numcalc/worksheet"
)

var (
	outFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "numcalc",
	Short: "Numeric calculators for statistics, finance, and algebra",
	Long: `numcalc evaluates worksheets of calculations: descriptive statistics,
regression, probability distributions, hypothesis tests, time value of money,
capital budgeting, decision matrices, economics formulas, and equations.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		// NUMCALC_WORKSHEET and NUMCALC_ALPHA may come from a local .env
		_ = godotenv.Load(".env")
	},
}

var runCmd = &cobra.Command{
	Use:   "run [worksheet]",
	Short: "Run every task in a YAML or TOML worksheet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWorksheet,
}

var describeCmd = &cobra.Command{
	Use:   "describe <numbers...>",
	Short: "Summarize a list of numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  describeNumbers,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "development logging")
	runCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the report as JSON to this file")
	rootCmd.AddCommand(runCmd, describeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func worksheetPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if v := os.Getenv("NUMCALC_WORKSHEET"); v != "" {
		return v
	}
	return "worksheet.yaml"
}

func runWorksheet(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	path := worksheetPath(args)
	ws, err := worksheet.Load(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, runErr := worksheet.NewRunner(logger).Run(ctx, ws)
	if report != nil {
		printReport(report)
	}
	if runErr != nil {
		return runErr
	}

	if outFile != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if err := os.WriteFile(outFile, data, 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("Exported %d results to %s\n", len(report.Results), outFile)
	}
	return nil
}

func printReport(report *worksheet.Report) {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("%s (run %s)\n", report.Title, report.ID)
	fmt.Println(strings.Repeat("=", 80))

	for i, res := range report.Results {
		fmt.Printf("\n[%d/%d] %s (%s)\n", i+1, len(report.Results), res.Task, res.Kind)
		if res.Failed() {
			fmt.Printf("   FAILED [%s]: %s\n", res.ErrorKind, res.Error)
			continue
		}
		data, err := json.MarshalIndent(res.Output, "   ", "  ")
		if err != nil {
			fmt.Printf("   %v\n", res.Output)
			continue
		}
		fmt.Printf("   %s\n", data)
	}

	fmt.Printf("\n%s\n%d tasks, %d failed\n", strings.Repeat("=", 80), len(report.Results), report.Failed())
}

func describeNumbers(_ *cobra.Command, args []string) error {
	xs := series.ParseFloats(strings.Join(args, " "))
	s, err := descriptive.Describe(xs)
	if err != nil {
		return err
	}

	fmt.Printf("n=%d min=%g q1=%g median=%g q3=%g max=%g\n",
		s.Count, s.Min, s.Q1, s.Median, s.Q3, s.Max)
	fmt.Printf("mean=%g variance=%g stddev=%g\n", s.Mean, s.Variance, s.StdDev)
	switch s.Mode.Kind {
	case descriptive.NoMode:
		fmt.Println("mode: none")
	default:
		fmt.Printf("mode: %v (%s, %d occurrences)\n", s.Mode.Values, s.Mode.Kind, s.Mode.Frequency)
	}
	return nil
}

