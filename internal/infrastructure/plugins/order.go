package plugins

import (
	"fmt"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/shopspring/decimal"
)

// OrderPercentage adds a percentage of the order subtotal as one order adjustment.
type OrderPercentage struct {
	Percentage decimal.Decimal
}

func NewOrderPercentage(config map[string]any) (engine.FeePlugin, error) {
	percentage, err := decimalSetting(config, "percentage")
	if err != nil {
		return nil, err
	}
	return &OrderPercentage{Percentage: percentage}, nil
}

func (p *OrderPercentage) TargetType() engine.TargetType { return engine.TargetOrder }

func (p *OrderPercentage) Apply(target any, fee *engine.FeeDefinition) error {
	order, ok := target.(*domain.Order)
	if !ok {
		return fmt.Errorf("%w: %s wants an order, got %T", ErrUnexpectedTarget, OrderPercentageID, target)
	}
	order.AddAdjustment(newAdjustment(fee, order.Subtotal().Mul(p.Percentage)))
	return nil
}

// OrderFixedAmount adds a flat amount to the order. A configured currency that does
// not match the order's leaves the order untouched.
type OrderFixedAmount struct {
	Amount       decimal.Decimal
	CurrencyCode string
}

func NewOrderFixedAmount(config map[string]any) (engine.FeePlugin, error) {
	amount, err := decimalSetting(config, "amount")
	if err != nil {
		return nil, err
	}
	currency, err := currencySetting(config)
	if err != nil {
		return nil, err
	}
	return &OrderFixedAmount{Amount: amount, CurrencyCode: currency}, nil
}

func (p *OrderFixedAmount) TargetType() engine.TargetType { return engine.TargetOrder }

func (p *OrderFixedAmount) Apply(target any, fee *engine.FeeDefinition) error {
	order, ok := target.(*domain.Order)
	if !ok {
		return fmt.Errorf("%w: %s wants an order, got %T", ErrUnexpectedTarget, OrderFixedAmountID, target)
	}
	if p.CurrencyCode != "" && p.CurrencyCode != order.Currency {
		return nil
	}
	order.AddAdjustment(newAdjustment(fee, p.Amount))
	return nil
}
