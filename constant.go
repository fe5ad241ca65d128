package uniswap_il_calculator

import "github.com/shopspring/decimal"

type FeeAmount int

const (
	FeeAmountLow    FeeAmount = 500
	FeeAmountMedium FeeAmount = 3000
	FeeAmountHigh   FeeAmount = 10000
)

var (
	Q96 = decimal.NewFromInt(2).Pow(decimal.NewFromInt(96))

	TICK_SPACINGS = map[FeeAmount]int{
		FeeAmountLow:    10,
		FeeAmountMedium: 60,
		FeeAmountHigh:   200,
	}
	MIN_TICK          int = -887272
	MAX_TICK          int = -MIN_TICK
	MIN_SQRT_RATIO        = decimal.NewFromInt(4295128739)
	MAX_SQRT_RATIO, _     = decimal.NewFromString("1461446703485210103287273052203988822378723970342")

	ZERO    = decimal.Zero
	ONE     = decimal.NewFromInt(1)
	HUNDRED = decimal.NewFromInt(100)
)

// chart sweep
const (
	DefaultSweepSteps = 200
	SweepLowerFactor  = 0.5
	SweepUpperFactor  = 1.5
)

// default scenario
const (
	DefaultDepositValue = 1000.0
	DefaultEntryPrice   = 3000.0
	DefaultLowerBound   = 1800.0
	DefaultUpperBound   = 5000.0
	DefaultCurrentPrice = 3000.0
)

var DefaultPresets = []float64{0.10, 0.30, 0.50}
