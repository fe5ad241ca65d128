package uniswap_il_calculator

type ValuationResult struct {
	ImpermanentLossValue   float64 `json:"impermanentLossValue"`
	ImpermanentLossPercent float64 `json:"impermanentLossPercent"`
	PositionValue          float64 `json:"positionValue"`
	HoldValue              float64 `json:"holdValue"`
}

func (r ValuationResult) IsZero() bool {
	return r == ValuationResult{}
}

// ComputePositionValue marks a token pair to market in token1 terms.
func ComputePositionValue(amount0, amount1, price float64) float64 {
	return amount0*price + amount1
}

// ComputeHoldValue values, at currentPrice, the token amounts the position
// held at entryPrice.
func ComputeHoldValue(depositValue, entryPrice, currentPrice, lowerBound, upperBound float64) float64 {
	liquidity := ComputeLiquidity(depositValue, lowerBound, upperBound, entryPrice)
	initial := ComputeTokenAmounts(liquidity, entryPrice, lowerBound, upperBound)
	return ComputePositionValue(initial.Amount0, initial.Amount1, currentPrice)
}

// ComputeImpermanentLoss never fails: invalid inputs give the zero result.
func ComputeImpermanentLoss(depositValue, lowerBound, upperBound, entryPrice, currentPrice float64) ValuationResult {
	res, err := Evaluate(PositionInputs{
		DepositValue: depositValue,
		EntryPrice:   entryPrice,
		LowerBound:   lowerBound,
		UpperBound:   upperBound,
	}, currentPrice)
	if err != nil {
		return ValuationResult{}
	}
	return res
}

// Evaluate values the position at price, or reports why the inputs are invalid.
func Evaluate(in PositionInputs, price float64) (ValuationResult, error) {
	p, err := NewPosition(in)
	if err != nil {
		return ValuationResult{}, err
	}
	return p.Evaluate(price)
}

func impermanentLoss(positionValue, holdValue float64) (ValuationResult, error) {
	ilValue := positionValue - holdValue
	ilPercent := 0.0
	if holdValue != 0 {
		ilPercent = ilValue / holdValue * 100
	}
	if !finite(positionValue, holdValue, ilValue, ilPercent) {
		return ValuationResult{}, NON_FINITE
	}
	return ValuationResult{
		ImpermanentLossValue:   ilValue,
		ImpermanentLossPercent: ilPercent,
		PositionValue:          positionValue,
		HoldValue:              holdValue,
	}, nil
}
