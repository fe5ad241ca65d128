package uniswap_il_calculator

import (
	"time"

	"github.com/google/uuid"
)

// scenario
type Scenario struct {
	Id           string         `json:"id"`
	Description  string         `json:"description"`
	Inputs       PositionInputs `json:"inputs"`
	CurrentPrice float64        `json:"currentPrice"`
	Fee          FeeAmount      `json:"fee"`
	Timestamp    time.Time      `json:"timestamp"`
}

func NewScenario(
	Description string,
	Inputs PositionInputs,
	CurrentPrice float64,
	Fee FeeAmount,
) (*Scenario, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return &Scenario{
		Id:           id.String(),
		Description:  Description,
		Inputs:       Inputs,
		CurrentPrice: CurrentPrice,
		Fee:          Fee,
		Timestamp:    time.Now(),
	}, nil
}

func (s *Scenario) Evaluate() ValuationResult {
	return ComputeImpermanentLoss(s.Inputs.DepositValue, s.Inputs.LowerBound, s.Inputs.UpperBound, s.Inputs.EntryPrice, s.CurrentPrice)
}

func (s *Scenario) Overview() Overview {
	return NewOverview(s.Inputs, s.CurrentPrice)
}

// Aligned returns a copy of the scenario whose range sits on usable ticks.
func (s *Scenario) Aligned() (*Scenario, *AlignedRange, error) {
	r, err := AlignRange(s.Inputs.LowerBound, s.Inputs.UpperBound, s.Fee)
	if err != nil {
		return nil, nil, err
	}
	aligned := *s
	aligned.Inputs = r.Apply(s.Inputs)
	return &aligned, r, nil
}
