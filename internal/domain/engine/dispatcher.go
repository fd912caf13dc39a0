package engine

import (
	"fmt"

	"github.com/Victor-armando18/service-fees/internal/domain"
)

// Apply runs the fee's plugin against order. It trusts that Available and Applies
// already passed and does not check them again.
//
// Item plugins only adjust items that satisfy every item condition: the group is
// always AND here, whatever the fee's operator. Under OR this can adjust fewer items
// than Applies matched, including none.
func Apply(fee *FeeDefinition, order *domain.Order) error {
	if fee.Plugin == nil {
		return fmt.Errorf("fee %s: %w", fee.ID, ErrMissingPlugin)
	}
	switch target := fee.Plugin.TargetType(); target {
	case TargetOrder:
		if err := fee.Plugin.Apply(order, fee); err != nil {
			return fmt.Errorf("fee %s: apply to order %s: %w", fee.ID, order.ID, err)
		}
		return nil
	case TargetOrderItem:
		_, itemConditions := partitionConditions(fee.Conditions)
		group := NewConditionGroup(itemConditions, OperatorAND)
		for _, item := range order.Items {
			ok, err := group.Evaluate(item)
			if err != nil {
				return fmt.Errorf("fee %s: item %s conditions: %w", fee.ID, item.ID, err)
			}
			if !ok {
				continue
			}
			if err := fee.Plugin.Apply(item, fee); err != nil {
				return fmt.Errorf("fee %s: apply to item %s: %w", fee.ID, item.ID, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("fee %s: %w: %q", fee.ID, ErrUnknownTarget, target)
	}
}
