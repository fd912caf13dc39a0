package engine

import "fmt"

// ConditionGroup evaluates same-target conditions with AND/OR semantics.
// An empty AND group passes, an empty OR group fails.
type ConditionGroup struct {
	conditions []Condition
	operator   ConditionOperator
}

func NewConditionGroup(conditions []Condition, operator ConditionOperator) *ConditionGroup {
	return &ConditionGroup{conditions: conditions, operator: operator}
}

func (g *ConditionGroup) Evaluate(subject any) (bool, error) {
	switch g.operator {
	case OperatorAND:
		for i, c := range g.conditions {
			ok, err := c.Evaluate(subject)
			if err != nil {
				return false, fmt.Errorf("condition %d: %w", i, err)
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case OperatorOR:
		for i, c := range g.conditions {
			ok, err := c.Evaluate(subject)
			if err != nil {
				return false, fmt.Errorf("condition %d: %w", i, err)
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, g.operator)
	}
}
