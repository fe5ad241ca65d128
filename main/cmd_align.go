package main

import (
	"fmt"
	"text/tabwriter"

	il "github.com/CoinSummer/uniswap-il-calculator"
	"github.com/spf13/cobra"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Snap the range to the usable ticks of a fee tier",
	Long: `Uniswap v3 positions start and end on ticks that are multiples of the
pool's tick spacing. align shows the ticks and prices the configured range
would actually get.

Examples:
  ilcalc align --min-price 1800 --max-price 5000 --fee 3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := il.AlignRange(cfg.MinPrice, cfg.MaxPrice, il.FeeAmount(cfg.Fee))
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Fee tier\t%d (spacing %d)\n", r.Fee, r.TickSpacing)
		fmt.Fprintf(w, "Lower\t%g -> tick %d -> %s\n", cfg.MinPrice, r.TickLower, r.LowerBound.StringFixed(6))
		fmt.Fprintf(w, "Upper\t%g -> tick %d -> %s\n", cfg.MaxPrice, r.TickUpper, r.UpperBound.StringFixed(6))
		return w.Flush()
	},
}
