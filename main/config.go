package main

import (
	"errors"
	"fmt"
	"strings"

	il "github.com/CoinSummer/uniswap-il-calculator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Deposit      float64 `mapstructure:"deposit"`
	EntryPrice   float64 `mapstructure:"entry_price"`
	MinPrice     float64 `mapstructure:"min_price"`
	MaxPrice     float64 `mapstructure:"max_price"`
	CurrentPrice float64 `mapstructure:"current_price"`
	Fee          int     `mapstructure:"fee"`
	Align        bool    `mapstructure:"align"`
	Steps        int     `mapstructure:"steps"`
	Workers      int     `mapstructure:"workers"`
	Format       string  `mapstructure:"format"`
	OutputDir    string  `mapstructure:"output_dir"`
	LogLevel     string  `mapstructure:"log_level"`
	LogJSON      bool    `mapstructure:"log_json"`
}

const EnvPrefix = "ILCALC"

var defaults = map[string]interface{}{
	"deposit":       il.DefaultDepositValue,
	"entry_price":   il.DefaultEntryPrice,
	"min_price":     il.DefaultLowerBound,
	"max_price":     il.DefaultUpperBound,
	"current_price": il.DefaultCurrentPrice,
	"fee":           int(il.FeeAmountMedium),
	"align":         false,
	"steps":         il.DefaultSweepSteps,
	"workers":       0,
	"format":        string(il.FormatCSV),
	"output_dir":    "",
	"log_level":     "info",
	"log_json":      false,
}

// LoadConfig layers defaults, an optional config file, ILCALC_* env vars and
// whatever flags were bound to v.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, cfg.Validate()
}

// Validate only covers how the tool runs. Bad position numbers are left to
// the engine, which answers them with a zero valuation.
func (c *Config) Validate() error {
	if c.Steps < 0 {
		return errors.New("steps must not be negative")
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	if _, err := il.NewCurveExporter(il.ExportFormat(c.Format)); err != nil {
		return err
	}
	if _, ok := il.TICK_SPACINGS[il.FeeAmount(c.Fee)]; !ok {
		return fmt.Errorf("unsupported fee tier %d", c.Fee)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c *Config) Inputs() il.PositionInputs {
	return il.PositionInputs{
		DepositValue: c.Deposit,
		EntryPrice:   c.EntryPrice,
		LowerBound:   c.MinPrice,
		UpperBound:   c.MaxPrice,
	}
}

func (c *Config) Scenario(description string) (*il.Scenario, *il.AlignedRange, error) {
	s, err := il.NewScenario(description, c.Inputs(), c.CurrentPrice, il.FeeAmount(c.Fee))
	if err != nil {
		return nil, nil, err
	}
	if !c.Align {
		return s, nil, nil
	}
	aligned, r, err := s.Aligned()
	if err != nil {
		return nil, nil, fmt.Errorf("align range: %w", err)
	}
	return aligned, r, nil
}

func setupLogging(c *Config) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if c.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
