package uniswap_il_calculator

import "math"

// Position caches what a single deposit fixes at entry: its liquidity and
// the token amounts bought at the entry price. A Position is never mutated
// after NewPosition, so it can be shared between goroutines.
type Position struct {
	Inputs    PositionInputs
	Liquidity float64
	Initial   TokenAmounts
}

func NewPosition(in PositionInputs) (*Position, error) {
	if err := in.Validate(in.EntryPrice); err != nil {
		return nil, err
	}
	liquidity := ComputeLiquidity(in.DepositValue, in.LowerBound, in.UpperBound, in.EntryPrice)
	initial := ComputeTokenAmounts(liquidity, in.EntryPrice, in.LowerBound, in.UpperBound)
	// bounds one ulp apart zero the liquidity denominator
	if !finite(liquidity, initial.Amount0, initial.Amount1) {
		return nil, NON_FINITE
	}
	return &Position{
		Inputs:    in,
		Liquidity: liquidity,
		Initial:   initial,
	}, nil
}

func (p *Position) AmountsAt(price float64) TokenAmounts {
	return ComputeTokenAmounts(p.Liquidity, price, p.Inputs.LowerBound, p.Inputs.UpperBound)
}

func (p *Position) ValueAt(price float64) float64 {
	amounts := p.AmountsAt(price)
	return ComputePositionValue(amounts.Amount0, amounts.Amount1, price)
}

func (p *Position) HoldValueAt(price float64) float64 {
	return ComputePositionValue(p.Initial.Amount0, p.Initial.Amount1, price)
}

func (p *Position) Classify(price float64) PricePosition {
	return p.Inputs.Classify(price)
}

func (p *Position) Evaluate(price float64) (ValuationResult, error) {
	if math.IsInf(price, 0) {
		return ValuationResult{}, NON_FINITE
	}
	if !(price > 0) {
		return ValuationResult{}, INVALID_PRICE
	}
	return impermanentLoss(p.ValueAt(price), p.HoldValueAt(price))
}
