package conditions

import (
	"context"
	"fmt"

	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/Victor-armando18/service-fees/internal/interfaces"
)

// JsonLogic evaluates a JsonLogic expression. Order expressions see {"order": ...},
// item expressions see {"item": ...}.
type JsonLogic struct {
	Target   engine.TargetType
	Logic    map[string]any
	executor interfaces.RuleExecutor
}

func NewJsonLogicFactory(executor interfaces.RuleExecutor) Factory {
	return func(config map[string]any) (engine.Condition, error) {
		target := engine.TargetOrder
		if raw, ok := config["target"]; ok {
			s, _ := raw.(string)
			switch engine.TargetType(s) {
			case engine.TargetOrder, engine.TargetOrderItem:
				target = engine.TargetType(s)
			default:
				return nil, fmt.Errorf("%w: unknown target %v", ErrInvalidConfiguration, raw)
			}
		}
		logic, ok := config["logic"].(map[string]any)
		if !ok || len(logic) == 0 {
			return nil, fmt.Errorf("%w: %q must be a JsonLogic object", ErrInvalidConfiguration, "logic")
		}
		return &JsonLogic{Target: target, Logic: logic, executor: executor}, nil
	}
}

func (c *JsonLogic) TargetType() engine.TargetType { return c.Target }

func (c *JsonLogic) Evaluate(subject any) (bool, error) {
	var data map[string]any
	if c.Target == engine.TargetOrderItem {
		item, err := asOrderItem(subject, JsonLogicID)
		if err != nil {
			return false, err
		}
		data = map[string]any{"item": item.ToMap()}
	} else {
		order, err := asOrder(subject, JsonLogicID)
		if err != nil {
			return false, err
		}
		data = map[string]any{"order": order.ToMap()}
	}

	out, err := c.executor.Execute(context.Background(), c.Logic, data)
	if err != nil {
		return false, err
	}
	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %v", ErrNonBooleanResult, out)
	}
	return result, nil
}
