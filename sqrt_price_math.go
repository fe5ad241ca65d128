package uniswap_il_calculator

import (
	"errors"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

type TokenAmounts struct {
	Amount0 float64 `json:"amount0"`
	Amount1 float64 `json:"amount1"`
}

// ComputeTokenAmounts returns the token0/token1 balances held by liquidity
// at price. Below the range the position holds the most token0 the range
// can hold; above it holds only token1.
func ComputeTokenAmounts(liquidity, price, lowerBound, upperBound float64) TokenAmounts {
	sqrtLower := math.Sqrt(lowerBound)
	sqrtUpper := math.Sqrt(upperBound)

	switch ClassifyPrice(price, lowerBound, upperBound) {
	case BelowRange:
		return TokenAmounts{
			Amount0: liquidity * (1/sqrtLower - 1/sqrtUpper),
			Amount1: 0,
		}
	case AboveRange:
		return TokenAmounts{
			Amount0: 0,
			Amount1: liquidity * (sqrtUpper - sqrtLower),
		}
	default:
		sqrtPrice := math.Sqrt(price)
		return TokenAmounts{
			Amount0: liquidity * (1/sqrtPrice - 1/sqrtUpper),
			Amount1: liquidity * (sqrtPrice - sqrtLower),
		}
	}
}

// PriceToSqrtRatioX96 encodes a token1/token0 price as a Q64.96 square root.
func PriceToSqrtRatioX96(price float64) (*big.Int, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, NON_FINITE
	}
	if price <= 0 {
		return nil, INVALID_PRICE
	}
	sqrt := new(big.Float).SetFloat64(math.Sqrt(price))
	sqrt.Mul(sqrt, new(big.Float).SetInt(Q96.BigInt()))
	r, _ := sqrt.Int(nil)
	return r, nil
}

func SqrtRatioX96ToPrice(sqrtRatioX96 *big.Int) (decimal.Decimal, error) {
	if sqrtRatioX96 == nil || sqrtRatioX96.Sign() <= 0 {
		return decimal.Zero, errors.New("sqrt ratio must be positive")
	}
	sqrt := decimal.NewFromBigInt(sqrtRatioX96, 0).DivRound(Q96, 32)
	return sqrt.Mul(sqrt), nil
}
