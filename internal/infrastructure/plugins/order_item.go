package plugins

import (
	"fmt"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/shopspring/decimal"
)

// OrderItemPercentage adds a percentage of the item total to the item.
type OrderItemPercentage struct {
	Percentage decimal.Decimal
}

func NewOrderItemPercentage(config map[string]any) (engine.FeePlugin, error) {
	percentage, err := decimalSetting(config, "percentage")
	if err != nil {
		return nil, err
	}
	return &OrderItemPercentage{Percentage: percentage}, nil
}

func (p *OrderItemPercentage) TargetType() engine.TargetType { return engine.TargetOrderItem }

func (p *OrderItemPercentage) Apply(target any, fee *engine.FeeDefinition) error {
	item, ok := target.(*domain.OrderItem)
	if !ok {
		return fmt.Errorf("%w: %s wants an order item, got %T", ErrUnexpectedTarget, OrderItemPercentageID, target)
	}
	item.AddAdjustment(newAdjustment(fee, item.TotalPrice().Mul(p.Percentage)))
	return nil
}

// OrderItemFixedAmount charges a flat amount per unit of the item.
type OrderItemFixedAmount struct {
	Amount decimal.Decimal
}

func NewOrderItemFixedAmount(config map[string]any) (engine.FeePlugin, error) {
	amount, err := decimalSetting(config, "amount")
	if err != nil {
		return nil, err
	}
	return &OrderItemFixedAmount{Amount: amount}, nil
}

func (p *OrderItemFixedAmount) TargetType() engine.TargetType { return engine.TargetOrderItem }

func (p *OrderItemFixedAmount) Apply(target any, fee *engine.FeeDefinition) error {
	item, ok := target.(*domain.OrderItem)
	if !ok {
		return fmt.Errorf("%w: %s wants an order item, got %T", ErrUnexpectedTarget, OrderItemFixedAmountID, target)
	}
	item.AddAdjustment(newAdjustment(fee, p.Amount.Mul(item.Quantity)))
	return nil
}
