package engine

import "github.com/Victor-armando18/service-fees/internal/domain"

// Engine runs fees through availability, applicability and application.
type Engine struct {
	Clock Clock
}

func New(clock Clock) *Engine {
	return &Engine{Clock: clock}
}

func (e *Engine) Available(fee *FeeDefinition, order *domain.Order) bool {
	return Available(fee, order, e.Clock.Now())
}

func (e *Engine) Applies(fee *FeeDefinition, order *domain.Order) (bool, error) {
	return Applies(fee, order)
}

func (e *Engine) Apply(fee *FeeDefinition, order *domain.Order) error {
	return Apply(fee, order)
}

// Process applies fee to order when it is both available and applicable.
func (e *Engine) Process(fee *FeeDefinition, order *domain.Order) (Outcome, error) {
	if !e.Available(fee, order) {
		return OutcomeUnavailable, nil
	}
	ok, err := e.Applies(fee, order)
	if err != nil {
		return OutcomeNotApplicable, err
	}
	if !ok {
		return OutcomeNotApplicable, nil
	}
	if err := e.Apply(fee, order); err != nil {
		return OutcomeApplied, err
	}
	return OutcomeApplied, nil
}
