package main

import (
	"fmt"
	"text/tabwriter"

	il "github.com/CoinSummer/uniswap-il-calculator"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List symmetric ranges around the entry price",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PRESET\tMIN PRICE\tMAX PRICE\tIL AT CURRENT")
		in := cfg.Inputs()
		for _, p := range il.Presets(cfg.EntryPrice) {
			in.LowerBound, in.UpperBound = p.LowerBound, p.UpperBound
			res := il.ComputeImpermanentLoss(in.DepositValue, in.LowerBound, in.UpperBound, in.EntryPrice, cfg.CurrentPrice)
			fmt.Fprintf(w, "±%.0f%%\t%.2f\t%.2f\t%.2f%%\n", p.Percent*100, p.LowerBound, p.UpperBound, res.ImpermanentLossPercent)
		}
		return w.Flush()
	},
}
