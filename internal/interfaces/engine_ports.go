package interfaces

import (
	"context"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
)

// ErrRuleExecutionFailed is returned by RuleExecutor implementations.
var ErrRuleExecutionFailed = domain.ErrRuleExecutionFailed

// FeeLoader defines the contract for loading fee records (from disk, database, etc.).
type FeeLoader interface {
	Load(ctx context.Context) ([]domain.FeeRecord, error)
}

// RuleExecutor defines the contract for running a JsonLogic rule with custom operators.
type RuleExecutor interface {
	Execute(ctx context.Context, ruleData map[string]interface{}, contextVars map[string]interface{}) (interface{}, error)
	RegisterCustomOperator(name string, logic func(args ...interface{}) interface{})
}

// FeeResolver turns a persisted record into an evaluable fee.
type FeeResolver interface {
	Resolve(record domain.FeeRecord) (*engine.FeeDefinition, error)
}

// FeeFacade is the entry point exposed to the pricing pipeline.
type FeeFacade interface {
	Refresh(ctx context.Context, order domain.Order) (*domain.RefreshResult, error)
}
