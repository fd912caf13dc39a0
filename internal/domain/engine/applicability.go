package engine

import (
	"fmt"

	"github.com/Victor-armando18/service-fees/internal/domain"
)

// Applies reports whether the fee's conditions hold for order.
//
// Order conditions, when there are any, gate the whole order. Item conditions,
// combined with the fee's operator, must then hold for at least one item. With no
// item conditions the item group is vacuously true under AND and false under OR, so
// an OR fee whose conditions are all order-scoped never applies, and neither does a
// conditional fee on an order with no items.
func Applies(fee *FeeDefinition, order *domain.Order) (bool, error) {
	if len(fee.Conditions) == 0 {
		return true, nil
	}
	orderConditions, itemConditions := partitionConditions(fee.Conditions)

	if len(orderConditions) > 0 {
		orderGroup := NewConditionGroup(orderConditions, fee.ConditionOperator)
		ok, err := orderGroup.Evaluate(order)
		if err != nil {
			return false, fmt.Errorf("fee %s: order conditions: %w", fee.ID, err)
		}
		if !ok {
			return false, nil
		}
	}

	itemGroup := NewConditionGroup(itemConditions, fee.ConditionOperator)
	for _, item := range order.Items {
		ok, err := itemGroup.Evaluate(item)
		if err != nil {
			return false, fmt.Errorf("fee %s: item %s conditions: %w", fee.ID, item.ID, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
