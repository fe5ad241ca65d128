package main

import (
	"errors"

	il "github.com/CoinSummer/uniswap-il-calculator"
	"github.com/spf13/cobra"
)

var errCurveUnavailable = errors.New("curve unavailable: enter a valid deposit amount and range")

// sweepCmd samples the position across a price axis
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sample LP and HODL value across a price sweep",
	Long: `Evaluate the position at evenly spaced prices from half the lower of
(min price, current price) to one and a half times the higher of
(max price, current price), and write the curve as CSV or JSON.

Examples:
  ilcalc sweep --steps 200 --format csv > curve.csv
  ilcalc sweep --format json --output-dir ./curves --workers 8`,
	RunE: runSweep,
}

func init() {
	flags := sweepCmd.Flags()
	flags.Int("steps", 0, "Number of intervals in the sweep")
	flags.Int("workers", 0, "Parallel evaluations, 0 means GOMAXPROCS")
	flags.String("format", "", "Output format: csv or json")
	flags.String("output-dir", "", "Write curve_<scenario>.<format> here instead of stdout")
	bindFlags(sweepCmd, map[string]string{
		"steps":      "steps",
		"workers":    "workers",
		"format":     "format",
		"output_dir": "output-dir",
	}, false)
}

func runSweep(cmd *cobra.Command, args []string) error {
	scenario, _, err := cfg.Scenario("sweep")
	if err != nil {
		return err
	}
	curve, err := il.Sweep(cmd.Context(), scenario.Inputs, scenario.CurrentPrice, il.SweepOptions{
		Steps:   cfg.Steps,
		Workers: cfg.Workers,
	})
	if err != nil {
		return err
	}
	if curve.Unavailable() {
		return errCurveUnavailable
	}

	exporter, err := il.NewCurveExporter(il.ExportFormat(cfg.Format))
	if err != nil {
		return err
	}
	if cfg.OutputDir == "" {
		return exporter.Write(cmd.OutOrStdout(), curve)
	}
	_, err = exporter.ExportFile(cfg.OutputDir, scenario, curve)
	return err
}
