package uniswap_il_calculator

import "math"

// ComputeLiquidity returns the liquidity that costs exactly depositValue at
// entryPrice for the range [lowerBound, upperBound]. Inputs are not
// validated here; see PositionInputs.Validate.
func ComputeLiquidity(depositValue, lowerBound, upperBound, entryPrice float64) float64 {
	sqrtLower := math.Sqrt(lowerBound)
	sqrtUpper := math.Sqrt(upperBound)

	switch ClassifyPrice(entryPrice, lowerBound, upperBound) {
	case BelowRange:
		// all token0
		return depositValue / (entryPrice * (1/sqrtLower - 1/sqrtUpper))
	case AboveRange:
		// all token1
		return depositValue / (sqrtUpper - sqrtLower)
	default:
		sqrtEntry := math.Sqrt(entryPrice)
		value0 := entryPrice * (1/sqrtEntry - 1/sqrtUpper)
		value1 := sqrtEntry - sqrtLower
		return depositValue / (value0 + value1)
	}
}
