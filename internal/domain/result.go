package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Outcome of a single fee evaluation.
const (
	StepUnavailable   = "unavailable"
	StepNotApplicable = "not_applicable"
	StepApplied       = "applied"
)

type ExecutionStep struct {
	FeeID   string `json:"feeId"`
	FeeName string `json:"feeName"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

// RefreshResult is what a pricing pass returns to the caller.
type RefreshResult struct {
	Order        Order           `json:"order"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Adjustments  []Adjustment    `json:"adjustments"`
	ExecutionLog []ExecutionStep `json:"executionLog"`
	// Delta is an RFC 7386 merge patch from the submitted order to the refreshed one.
	Delta       json.RawMessage `json:"delta,omitempty"`
	ServerDelta bool            `json:"serverDelta"`
}
