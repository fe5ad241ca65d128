package uniswap_il_calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Overview is the headline view of a position at one price, in cents.
type Overview struct {
	PositionValue          decimal.Decimal `json:"positionValue"`
	HoldValue              decimal.Decimal `json:"holdValue"`
	PnL                    decimal.Decimal `json:"pnl"`
	PnLPercent             decimal.Decimal `json:"pnlPercent"`
	ImpermanentLoss        decimal.Decimal `json:"impermanentLoss"`
	ImpermanentLossPercent decimal.Decimal `json:"impermanentLossPercent"`
	Status                 PricePosition   `json:"status"`
}

func NewOverview(in PositionInputs, currentPrice float64) Overview {
	res := ComputeImpermanentLoss(in.DepositValue, in.LowerBound, in.UpperBound, in.EntryPrice, currentPrice)

	positionValue := fromFloat(res.PositionValue)
	deposit := fromFloat(in.DepositValue)
	pnl := positionValue.Sub(deposit)
	pnlPercent := ZERO
	if !deposit.IsZero() {
		pnlPercent = pnl.Div(deposit).Mul(HUNDRED)
	}

	return Overview{
		PositionValue:          positionValue.Round(2),
		HoldValue:              fromFloat(res.HoldValue).Round(2),
		PnL:                    pnl.Round(2),
		PnLPercent:             pnlPercent.Round(2),
		ImpermanentLoss:        fromFloat(res.ImpermanentLossValue).Round(2),
		ImpermanentLossPercent: fromFloat(res.ImpermanentLossPercent).Round(2),
		Status:                 in.Classify(currentPrice),
	}
}

func (o Overview) InRange() bool {
	return o.Status == InRange
}

func fromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ZERO
	}
	return decimal.NewFromFloat(v)
}
