package conditions

import (
	"slices"

	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/shopspring/decimal"
)

// OrderTotalPrice compares the order subtotal against a threshold.
type OrderTotalPrice struct {
	Operator comparison
	Amount   decimal.Decimal
}

func NewOrderTotalPrice(config map[string]any) (engine.Condition, error) {
	op, err := comparisonSetting(config)
	if err != nil {
		return nil, err
	}
	amount, err := decimalSetting(config, "amount")
	if err != nil {
		return nil, err
	}
	return &OrderTotalPrice{Operator: op, Amount: amount}, nil
}

func (c *OrderTotalPrice) TargetType() engine.TargetType { return engine.TargetOrder }

func (c *OrderTotalPrice) Evaluate(subject any) (bool, error) {
	order, err := asOrder(subject, OrderTotalPriceID)
	if err != nil {
		return false, err
	}
	return c.Operator.compare(order.Subtotal(), c.Amount), nil
}

// OrderCurrency matches orders priced in one of the listed currencies.
type OrderCurrency struct {
	Currencies []string
}

func NewOrderCurrency(config map[string]any) (engine.Condition, error) {
	currencies, err := stringListSetting(config, "currencies")
	if err != nil {
		return nil, err
	}
	return &OrderCurrency{Currencies: currencies}, nil
}

func (c *OrderCurrency) TargetType() engine.TargetType { return engine.TargetOrder }

func (c *OrderCurrency) Evaluate(subject any) (bool, error) {
	order, err := asOrder(subject, OrderCurrencyID)
	if err != nil {
		return false, err
	}
	return slices.Contains(c.Currencies, order.Currency), nil
}
