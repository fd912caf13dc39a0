package engine

import "errors"

// Outcome records how far a fee got through the engine.
type Outcome string

const (
	OutcomeUnavailable   Outcome = "unavailable"
	OutcomeNotApplicable Outcome = "not_applicable"
	OutcomeApplied       Outcome = "applied"
)

var (
	ErrInvalidOperator = errors.New("invalid condition operator")
	ErrUnknownTarget   = errors.New("unknown plugin target type")
	ErrMissingPlugin   = errors.New("fee has no plugin")
)
