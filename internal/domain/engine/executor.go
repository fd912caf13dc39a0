package engine

import "time"

// TargetType is the granularity a condition or plugin operates on.
type TargetType string

const (
	TargetOrder     TargetType = "commerce_order"
	TargetOrderItem TargetType = "commerce_order_item"
)

// ConditionOperator combines conditions of the same target type.
type ConditionOperator string

const (
	OperatorAND ConditionOperator = "AND"
	OperatorOR  ConditionOperator = "OR"
)

// Condition is a boolean predicate over an order or an order item.
// Evaluate must be a pure function of the subject and the condition's configuration.
type Condition interface {
	TargetType() TargetType
	Evaluate(subject any) (bool, error)
}

// FeePlugin produces adjustments. Apply receives a *domain.Order or a *domain.OrderItem
// matching TargetType and appends to its adjustments.
type FeePlugin interface {
	TargetType() TargetType
	Apply(target any, fee *FeeDefinition) error
}

type Clock interface {
	Now() time.Time
}
