package conditions

import (
	"slices"

	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/shopspring/decimal"
)

// OrderItemQuantity compares an item's quantity against a threshold.
type OrderItemQuantity struct {
	Operator comparison
	Quantity decimal.Decimal
}

func NewOrderItemQuantity(config map[string]any) (engine.Condition, error) {
	op, err := comparisonSetting(config)
	if err != nil {
		return nil, err
	}
	quantity, err := decimalSetting(config, "quantity")
	if err != nil {
		return nil, err
	}
	return &OrderItemQuantity{Operator: op, Quantity: quantity}, nil
}

func (c *OrderItemQuantity) TargetType() engine.TargetType { return engine.TargetOrderItem }

func (c *OrderItemQuantity) Evaluate(subject any) (bool, error) {
	item, err := asOrderItem(subject, OrderItemQuantityID)
	if err != nil {
		return false, err
	}
	return c.Operator.compare(item.Quantity, c.Quantity), nil
}

// OrderItemSKU matches items whose SKU is listed.
type OrderItemSKU struct {
	SKUs []string
}

func NewOrderItemSKU(config map[string]any) (engine.Condition, error) {
	skus, err := stringListSetting(config, "skus")
	if err != nil {
		return nil, err
	}
	return &OrderItemSKU{SKUs: skus}, nil
}

func (c *OrderItemSKU) TargetType() engine.TargetType { return engine.TargetOrderItem }

func (c *OrderItemSKU) Evaluate(subject any) (bool, error) {
	item, err := asOrderItem(subject, OrderItemSKUID)
	if err != nil {
		return false, err
	}
	return slices.Contains(c.SKUs, item.SKU), nil
}
