package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	il "github.com/CoinSummer/uniswap-il-calculator"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// evaluateCmd values the configured position at the current price
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Value the position at the current price",
	Long: `Print the position overview: LP value against HODL value, PnL against
the deposit, impermanent loss and whether the price is inside the range.

Examples:
  ilcalc evaluate --deposit 1000 --entry-price 2000 --min-price 1500 --max-price 2500 --current-price 2200
  ilcalc evaluate --config scenario.yaml --align --fee 500`,
	RunE: runEvaluate,
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	scenario, aligned, err := cfg.Scenario("evaluate")
	if err != nil {
		return err
	}
	if _, err := il.Evaluate(scenario.Inputs, scenario.CurrentPrice); err != nil {
		logrus.WithError(err).Warn("invalid position, valuation is zero")
	}
	return printEvaluation(cmd.OutOrStdout(), scenario, aligned)
}

func printEvaluation(out io.Writer, scenario *il.Scenario, aligned *il.AlignedRange) error {
	in := scenario.Inputs
	overview := scenario.Overview()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Scenario\t%s\n", scenario.Id)
	fmt.Fprintf(w, "Range\t%g - %g\n", in.LowerBound, in.UpperBound)
	if aligned != nil {
		fmt.Fprintf(w, "Ticks\t%d - %d (spacing %d)\n", aligned.TickLower, aligned.TickUpper, aligned.TickSpacing)
	}
	fmt.Fprintf(w, "Entry / Current\t%g / %g\n", in.EntryPrice, scenario.CurrentPrice)
	if p, err := il.NewPosition(in); err == nil {
		amounts := p.AmountsAt(scenario.CurrentPrice)
		fmt.Fprintf(w, "Liquidity\t%.6f\n", p.Liquidity)
		fmt.Fprintf(w, "Token0 / Token1\t%.8f / %.2f\n", amounts.Amount0, amounts.Amount1)
	}
	fmt.Fprintf(w, "LP Value | HODL Value\t$%s | $%s\n", overview.PositionValue.StringFixed(2), overview.HoldValue.StringFixed(2))
	fmt.Fprintf(w, "PnL vs Deposit\t$%s (%s%%)\n", overview.PnL.StringFixed(2), signed(overview.PnLPercent))
	fmt.Fprintf(w, "Impermanent Loss\t%s%% ($%s)\n", overview.ImpermanentLossPercent.StringFixed(2), overview.ImpermanentLoss.StringFixed(2))
	fmt.Fprintf(w, "Status\t%s\n", statusColor(overview).Sprint(overview.Status))
	return w.Flush()
}

func statusColor(o il.Overview) *color.Color {
	if o.InRange() {
		return color.New(color.FgGreen, color.Bold)
	}
	return color.New(color.FgRed, color.Bold)
}

func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}
