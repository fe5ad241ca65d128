package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	v          = viper.New()
	cfg        *Config
	configPath string
)

// rootCmd is the base command for the calculator CLI
var rootCmd = &cobra.Command{
	Use:   "ilcalc",
	Short: "Uniswap v3 impermanent loss calculator",
	Long: `ilcalc values a concentrated-liquidity position at a simulated price and
compares it with simply holding the tokens bought at entry.

Inputs come from flags, ILCALC_* environment variables or a config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadConfig(v, configPath)
		if err != nil {
			return err
		}
		setupLogging(c)
		cfg = c
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a yaml, json or toml scenario file")
	flags.Float64("deposit", 0, "Deposit value in quote token")
	flags.Float64("entry-price", 0, "Price at deposit time")
	flags.Float64("min-price", 0, "Lower bound of the range")
	flags.Float64("max-price", 0, "Upper bound of the range")
	flags.Float64("current-price", 0, "Price to value the position at")
	flags.Int("fee", 0, "Fee tier used for tick alignment: 500, 3000 or 10000")
	flags.Bool("align", false, "Snap the range to usable ticks before valuing")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.Bool("log-json", false, "Log as JSON")

	bindFlags(rootCmd, map[string]string{
		"deposit":       "deposit",
		"entry_price":   "entry-price",
		"min_price":     "min-price",
		"max_price":     "max-price",
		"current_price": "current-price",
		"fee":           "fee",
		"align":         "align",
		"log_level":     "log-level",
		"log_json":      "log-json",
	}, true)

	rootCmd.AddCommand(evaluateCmd, sweepCmd, presetsCmd, alignCmd)
}

func bindFlags(cmd *cobra.Command, keys map[string]string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			logrus.Fatal(err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
