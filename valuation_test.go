package uniswap_il_calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeImpermanentLossAtEntry(t *testing.T) {
	tests := []struct {
		name  string
		lower float64
		upper float64
		entry float64
	}{
		{name: "in range", lower: 1500, upper: 2500, entry: 2000},
		{name: "below range", lower: 1500, upper: 2500, entry: 1000},
		{name: "above range", lower: 1500, upper: 2500, entry: 3000},
		{name: "on lower bound", lower: 1500, upper: 2500, entry: 1500},
		{name: "narrow range", lower: 1999, upper: 2001, entry: 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ComputeImpermanentLoss(1000, tt.lower, tt.upper, tt.entry, tt.entry)
			assert.InDelta(t, 0, res.ImpermanentLossPercent, 1e-5)
			assert.InDelta(t, res.HoldValue, res.PositionValue, 1e-2)
			assert.InDelta(t, 1000, res.PositionValue, 1e-6)
		})
	}
}

func TestComputeImpermanentLossPriceMove(t *testing.T) {
	res := ComputeImpermanentLoss(1000, 1500, 2500, 2000, 2200)
	assert.Less(t, res.ImpermanentLossPercent, 0.0)

	res = ComputeImpermanentLoss(1000, 50, 150, 100, 120)
	assert.Less(t, res.PositionValue, res.HoldValue)
	assert.Less(t, res.ImpermanentLossValue, 0.0)
	assert.InDelta(t, res.PositionValue-res.HoldValue, res.ImpermanentLossValue, 1e-12)
	assert.InDelta(t, res.ImpermanentLossValue/res.HoldValue*100, res.ImpermanentLossPercent, 1e-12)
}

func TestComputeImpermanentLossInvalid(t *testing.T) {
	tests := []struct {
		name    string
		deposit float64
		lower   float64
		upper   float64
		entry   float64
		current float64
	}{
		{name: "equal bounds", deposit: 1000, lower: 1000, upper: 1000, entry: 1000, current: 1000},
		{name: "inverted bounds", deposit: 1000, lower: 2500, upper: 1500, entry: 2000, current: 2000},
		{name: "zero deposit", deposit: 0, lower: 1500, upper: 2500, entry: 2000, current: 2000},
		{name: "negative entry", deposit: 1000, lower: 1500, upper: 2500, entry: -1, current: 2000},
		{name: "zero current", deposit: 1000, lower: 1500, upper: 2500, entry: 2000, current: 0},
		{name: "NaN current", deposit: 1000, lower: 1500, upper: 2500, entry: 2000, current: math.NaN()},
		{name: "infinite deposit", deposit: math.Inf(1), lower: 1500, upper: 2500, entry: 2000, current: 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ComputeImpermanentLoss(tt.deposit, tt.lower, tt.upper, tt.entry, tt.current)
			assert.Equal(t, ValuationResult{}, res)
			assert.True(t, res.IsZero())
		})
	}
}

func TestComputeImpermanentLossDegenerate(t *testing.T) {
	res := ComputeImpermanentLoss(1000, 1000, 1000, 1000, 1000)
	assert.Equal(t, 0.0, res.ImpermanentLossValue)
}

func TestComputeImpermanentLossIsPure(t *testing.T) {
	a := ComputeImpermanentLoss(1000, 1500, 2500, 2000, 2200)
	b := ComputeImpermanentLoss(1000, 1500, 2500, 2000, 2200)
	assert.Equal(t, a, b)

	assert.Equal(t, ComputeLiquidity(1000, 1500, 2500, 2000), ComputeLiquidity(1000, 1500, 2500, 2000))
	assert.Equal(t, ComputeTokenAmounts(42, 1800, 1500, 2500), ComputeTokenAmounts(42, 1800, 1500, 2500))
	assert.Equal(t, ComputeHoldValue(1000, 2000, 2200, 1500, 2500), ComputeHoldValue(1000, 2000, 2200, 1500, 2500))
}

func TestComputeHoldValue(t *testing.T) {
	// entry below the range: all token0, so holding scales with price
	hold := ComputeHoldValue(1000, 1000, 2000, 1500, 2500)
	assert.InDelta(t, 2000, hold, 1e-6)

	// entry above the range: all token1, price does not matter
	hold = ComputeHoldValue(1000, 3000, 500, 1500, 2500)
	assert.InDelta(t, 1000, hold, 1e-6)
}

func TestComputePositionValue(t *testing.T) {
	assert.Equal(t, 2500.0, ComputePositionValue(1, 500, 2000))
	assert.Equal(t, 0.0, ComputePositionValue(0, 0, 2000))
	assert.Equal(t, -1.0, ComputePositionValue(-1, 1, 2))
}

func TestEvaluate(t *testing.T) {
	in := PositionInputs{DepositValue: 1000, EntryPrice: 2000, LowerBound: 1500, UpperBound: 2500}

	res, err := Evaluate(in, 2200)
	require.NoError(t, err)
	assert.Equal(t, ComputeImpermanentLoss(1000, 1500, 2500, 2000, 2200), res)

	tests := []struct {
		name  string
		in    PositionInputs
		price float64
		want  error
	}{
		{name: "bad range", in: PositionInputs{DepositValue: 1000, EntryPrice: 2000, LowerBound: 2500, UpperBound: 1500}, price: 2000, want: INVALID_RANGE},
		{name: "bad deposit", in: PositionInputs{DepositValue: -1, EntryPrice: 2000, LowerBound: 1500, UpperBound: 2500}, price: 2000, want: INVALID_DEPOSIT},
		{name: "bad price", in: in, price: -3, want: INVALID_PRICE},
		{name: "infinite price", in: in, price: math.Inf(-1), want: NON_FINITE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.in, tt.price)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, res.IsZero())
		})
	}
}

func TestEvaluateOverflow(t *testing.T) {
	oneUlpAbove := math.Nextafter(1, 2)
	tests := []struct {
		name  string
		in    PositionInputs
		price float64
	}{
		{name: "bounds one ulp apart below range", in: PositionInputs{DepositValue: 1000, EntryPrice: 0.5, LowerBound: 1, UpperBound: oneUlpAbove}, price: 0.5},
		{name: "bounds one ulp apart above range", in: PositionInputs{DepositValue: 1000, EntryPrice: 2, LowerBound: 1, UpperBound: oneUlpAbove}, price: 2},
		{name: "hold value overflows", in: PositionInputs{DepositValue: 1e300, EntryPrice: 2, LowerBound: 1, UpperBound: 4}, price: 1e300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.in, tt.price)
			assert.ErrorIs(t, err, NON_FINITE)
			assert.True(t, res.IsZero())

			in := tt.in
			assert.True(t, ComputeImpermanentLoss(in.DepositValue, in.LowerBound, in.UpperBound, in.EntryPrice, tt.price).IsZero())
		})
	}

	_, err := NewPosition(tests[0].in)
	assert.ErrorIs(t, err, NON_FINITE)
}
