package uniswap_il_calculator

import (
	"errors"
	"math"
)

var INVALID_RANGE = errors.New("INVALID_RANGE")
var INVALID_DEPOSIT = errors.New("INVALID_DEPOSIT")
var INVALID_PRICE = errors.New("INVALID_PRICE")
var NON_FINITE = errors.New("NON_FINITE")

// PricePosition is where a price sits relative to a position's range.
type PricePosition int

const (
	BelowRange PricePosition = iota
	InRange
	AboveRange
)

func (p PricePosition) String() string {
	switch p {
	case BelowRange:
		return "BELOW RANGE"
	case AboveRange:
		return "ABOVE RANGE"
	default:
		return "IN RANGE"
	}
}

func (p PricePosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ClassifyPrice treats both bounds as part of the range.
func ClassifyPrice(price, lowerBound, upperBound float64) PricePosition {
	if price < lowerBound {
		return BelowRange
	}
	if price > upperBound {
		return AboveRange
	}
	return InRange
}

type PositionInputs struct {
	DepositValue float64 `json:"depositValue" mapstructure:"deposit"`
	EntryPrice   float64 `json:"entryPrice" mapstructure:"entry_price"`
	LowerBound   float64 `json:"lowerBound" mapstructure:"min_price"`
	UpperBound   float64 `json:"upperBound" mapstructure:"max_price"`
}

func DefaultPositionInputs() PositionInputs {
	return PositionInputs{
		DepositValue: DefaultDepositValue,
		EntryPrice:   DefaultEntryPrice,
		LowerBound:   DefaultLowerBound,
		UpperBound:   DefaultUpperBound,
	}
}

// Validate checks the inputs together with the price they are evaluated at.
// Comparisons are written so that NaN fails them.
func (in PositionInputs) Validate(price float64) error {
	for _, v := range []float64{in.DepositValue, in.EntryPrice, in.LowerBound, in.UpperBound, price} {
		if math.IsInf(v, 0) {
			return NON_FINITE
		}
	}
	if !(in.LowerBound < in.UpperBound) || in.LowerBound < 0 {
		return INVALID_RANGE
	}
	if !(in.DepositValue > 0) {
		return INVALID_DEPOSIT
	}
	if !(in.EntryPrice > 0) || !(price > 0) {
		return INVALID_PRICE
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (in PositionInputs) Classify(price float64) PricePosition {
	return ClassifyPrice(price, in.LowerBound, in.UpperBound)
}

type Preset struct {
	Percent    float64
	LowerBound float64
	UpperBound float64
}

// RangePreset centers a range of +/- pct around the entry price.
func RangePreset(entryPrice, pct float64) (float64, float64) {
	return entryPrice * (1 - pct), entryPrice * (1 + pct)
}

func Presets(entryPrice float64) []Preset {
	presets := make([]Preset, 0, len(DefaultPresets))
	for _, pct := range DefaultPresets {
		lower, upper := RangePreset(entryPrice, pct)
		presets = append(presets, Preset{Percent: pct, LowerBound: lower, UpperBound: upper})
	}
	return presets
}
