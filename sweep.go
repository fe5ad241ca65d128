package uniswap_il_calculator

import (
	"context"
	"errors"
	"math"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var INVALID_STEPS = errors.New("INVALID_STEPS")

type SweepOptions struct {
	// Steps is the number of intervals; the curve has Steps+1 points.
	Steps   int
	Workers int
}

type CurvePoint struct {
	Price                  float64 `json:"price"`
	PositionValue          float64 `json:"positionValue"`
	HoldValue              float64 `json:"holdValue"`
	ImpermanentLossValue   float64 `json:"impermanentLossValue"`
	ImpermanentLossPercent float64 `json:"impermanentLossPercent"`
}

type Curve struct {
	Inputs       PositionInputs `json:"inputs"`
	CurrentPrice float64        `json:"currentPrice"`
	From         float64        `json:"from"`
	To           float64        `json:"to"`
	Points       []CurvePoint   `json:"points"`
}

// Unavailable reports a curve with nothing to plot, which is what invalid
// inputs produce.
func (c *Curve) Unavailable() bool {
	for _, p := range c.Points {
		if p.PositionValue != 0 || p.HoldValue != 0 {
			return false
		}
	}
	return true
}

// SweepBounds pads the price axis around both the range and the current price.
func SweepBounds(in PositionInputs, currentPrice float64) (float64, float64) {
	from := math.Min(in.LowerBound*SweepLowerFactor, currentPrice*SweepLowerFactor)
	to := math.Max(in.UpperBound*SweepUpperFactor, currentPrice*SweepUpperFactor)
	return from, to
}

// Sweep evaluates the position at evenly spaced prices between SweepBounds.
func Sweep(ctx context.Context, in PositionInputs, currentPrice float64, opts SweepOptions) (*Curve, error) {
	if opts.Steps < 0 || opts.Workers < 0 {
		return nil, INVALID_STEPS
	}
	if opts.Steps == 0 {
		opts.Steps = DefaultSweepSteps
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	from, to := SweepBounds(in, currentPrice)
	stepSize := (to - from) / float64(opts.Steps)
	points := make([]CurvePoint, opts.Steps+1)

	logrus.WithFields(logrus.Fields{
		"from":    from,
		"to":      to,
		"points":  len(points),
		"workers": opts.Workers,
	}).Debug("sweeping position")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range points {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			price := from + float64(i)*stepSize
			res := ComputeImpermanentLoss(in.DepositValue, in.LowerBound, in.UpperBound, in.EntryPrice, price)
			points[i] = CurvePoint{
				Price:                  price,
				PositionValue:          res.PositionValue,
				HoldValue:              res.HoldValue,
				ImpermanentLossValue:   res.ImpermanentLossValue,
				ImpermanentLossPercent: res.ImpermanentLossPercent,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Curve{
		Inputs:       in,
		CurrentPrice: currentPrice,
		From:         from,
		To:           to,
		Points:       points,
	}, nil
}
