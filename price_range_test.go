package uniswap_il_calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  PricePosition
	}{
		{name: "below", price: 1000, want: BelowRange},
		{name: "at lower bound", price: 1500, want: InRange},
		{name: "inside", price: 2000, want: InRange},
		{name: "at upper bound", price: 2500, want: InRange},
		{name: "above", price: 3000, want: AboveRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPrice(tt.price, 1500, 2500))
		})
	}
}

func TestPricePositionString(t *testing.T) {
	assert.Equal(t, "IN RANGE", InRange.String())
	assert.Equal(t, "BELOW RANGE", BelowRange.String())
	assert.Equal(t, "ABOVE RANGE", AboveRange.String())

	text, err := AboveRange.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "ABOVE RANGE", string(text))
}

func TestPositionInputsValidate(t *testing.T) {
	valid := PositionInputs{DepositValue: 1000, EntryPrice: 2000, LowerBound: 1500, UpperBound: 2500}
	tests := []struct {
		name   string
		mutate func(in *PositionInputs)
		price  float64
		want   error
	}{
		{name: "valid", mutate: func(in *PositionInputs) {}, price: 2200, want: nil},
		{name: "equal bounds", mutate: func(in *PositionInputs) { in.UpperBound = in.LowerBound }, price: 2200, want: INVALID_RANGE},
		{name: "inverted bounds", mutate: func(in *PositionInputs) { in.LowerBound, in.UpperBound = 2500, 1500 }, price: 2200, want: INVALID_RANGE},
		{name: "negative lower bound", mutate: func(in *PositionInputs) { in.LowerBound = -1 }, price: 2200, want: INVALID_RANGE},
		{name: "NaN bound", mutate: func(in *PositionInputs) { in.LowerBound = math.NaN() }, price: 2200, want: INVALID_RANGE},
		{name: "zero deposit", mutate: func(in *PositionInputs) { in.DepositValue = 0 }, price: 2200, want: INVALID_DEPOSIT},
		{name: "negative deposit", mutate: func(in *PositionInputs) { in.DepositValue = -5 }, price: 2200, want: INVALID_DEPOSIT},
		{name: "zero entry", mutate: func(in *PositionInputs) { in.EntryPrice = 0 }, price: 2200, want: INVALID_PRICE},
		{name: "zero price", mutate: func(in *PositionInputs) {}, price: 0, want: INVALID_PRICE},
		{name: "infinite deposit", mutate: func(in *PositionInputs) { in.DepositValue = math.Inf(1) }, price: 2200, want: NON_FINITE},
		{name: "infinite price", mutate: func(in *PositionInputs) {}, price: math.Inf(1), want: NON_FINITE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate(tt.price)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPresets(t *testing.T) {
	lower, upper := RangePreset(3000, 0.10)
	assert.InDelta(t, 2700, lower, 1e-9)
	assert.InDelta(t, 3300, upper, 1e-9)

	presets := Presets(2000)
	assert.Len(t, presets, len(DefaultPresets))
	for i, p := range presets {
		assert.Equal(t, DefaultPresets[i], p.Percent)
		assert.Less(t, p.LowerBound, 2000.0)
		assert.Greater(t, p.UpperBound, 2000.0)
		assert.InDelta(t, 2000, (p.LowerBound+p.UpperBound)/2, 1e-9)
	}
}

func TestDefaultPositionInputs(t *testing.T) {
	in := DefaultPositionInputs()
	assert.NoError(t, in.Validate(DefaultCurrentPrice))
	assert.Equal(t, InRange, in.Classify(DefaultCurrentPrice))
}
