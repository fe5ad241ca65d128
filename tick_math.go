package uniswap_il_calculator

import (
	"errors"
	"fmt"

	"github.com/daoleno/uniswapv3-sdk/entities"
	"github.com/daoleno/uniswapv3-sdk/utils"
	"github.com/shopspring/decimal"
)

var INVALID_TICK = errors.New("INVALID_TICK")
var INVALID_FEE = errors.New("INVALID_FEE")

// AlignedRange is a price range snapped to ticks a pool will accept.
type AlignedRange struct {
	Fee         FeeAmount
	TickSpacing int
	TickLower   int
	TickUpper   int
	LowerBound  decimal.Decimal
	UpperBound  decimal.Decimal
}

func PriceToTick(price float64) (int, error) {
	sqrtRatioX96, err := PriceToSqrtRatioX96(price)
	if err != nil {
		return 0, err
	}
	sqrt := decimal.NewFromBigInt(sqrtRatioX96, 0)
	if sqrt.LessThan(MIN_SQRT_RATIO) || sqrt.GreaterThanOrEqual(MAX_SQRT_RATIO) {
		return 0, INVALID_TICK
	}
	return utils.GetTickAtSqrtRatio(sqrtRatioX96)
}

func TickToPrice(tick int) (decimal.Decimal, error) {
	if tick < MIN_TICK || tick > MAX_TICK {
		return decimal.Zero, INVALID_TICK
	}
	sqrtRatioX96, err := utils.GetSqrtRatioAtTick(tick)
	if err != nil {
		return decimal.Zero, err
	}
	return SqrtRatioX96ToPrice(sqrtRatioX96)
}

// AlignRange snaps both bounds to the nearest usable tick of the fee tier.
// A range that collapses onto a single tick is widened by one spacing.
func AlignRange(lowerBound, upperBound float64, fee FeeAmount) (*AlignedRange, error) {
	spacing, ok := TICK_SPACINGS[fee]
	if !ok {
		return nil, INVALID_FEE
	}
	if !(lowerBound < upperBound) {
		return nil, INVALID_RANGE
	}
	lowerTick, err := PriceToTick(lowerBound)
	if err != nil {
		return nil, fmt.Errorf("lower bound %g: %w", lowerBound, err)
	}
	upperTick, err := PriceToTick(upperBound)
	if err != nil {
		return nil, fmt.Errorf("upper bound %g: %w", upperBound, err)
	}

	lowerTick = entities.NearestUsableTick(lowerTick, spacing)
	upperTick = entities.NearestUsableTick(upperTick, spacing)
	if upperTick <= lowerTick {
		upperTick = lowerTick + spacing
	}
	if upperTick > MAX_TICK {
		return nil, INVALID_TICK
	}

	lowerPrice, err := TickToPrice(lowerTick)
	if err != nil {
		return nil, err
	}
	upperPrice, err := TickToPrice(upperTick)
	if err != nil {
		return nil, err
	}
	return &AlignedRange{
		Fee:         fee,
		TickSpacing: spacing,
		TickLower:   lowerTick,
		TickUpper:   upperTick,
		LowerBound:  lowerPrice,
		UpperBound:  upperPrice,
	}, nil
}

// Apply returns a copy of in with its bounds replaced by the aligned ones.
func (r *AlignedRange) Apply(in PositionInputs) PositionInputs {
	in.LowerBound = r.LowerBound.InexactFloat64()
	in.UpperBound = r.UpperBound.InexactFloat64()
	return in
}
