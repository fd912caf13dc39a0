// Package plugins holds the fee calculation capabilities shipped with the service.
package plugins

import (
	"errors"
	"fmt"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/shopspring/decimal"
)

const (
	OrderPercentageID      = "order_percentage"
	OrderFixedAmountID     = "order_fixed_amount"
	OrderItemPercentageID  = "order_item_percentage"
	OrderItemFixedAmountID = "order_item_fixed_amount"
)

var (
	ErrInvalidConfiguration = errors.New("invalid plugin configuration")
	ErrUnexpectedTarget     = errors.New("unexpected plugin target")
)

// Factory builds a configured plugin.
type Factory func(config map[string]any) (engine.FeePlugin, error)

// Factories lists the built-in plugins by identifier.
func Factories() map[string]Factory {
	return map[string]Factory{
		OrderPercentageID:      NewOrderPercentage,
		OrderFixedAmountID:     NewOrderFixedAmount,
		OrderItemPercentageID:  NewOrderItemPercentage,
		OrderItemFixedAmountID: NewOrderItemFixedAmount,
	}
}

func newAdjustment(fee *engine.FeeDefinition, amount decimal.Decimal) domain.Adjustment {
	return domain.Adjustment{
		Type:     domain.AdjustmentTypeFee,
		Label:    fee.Label(),
		Amount:   amount.Round(2),
		SourceID: fee.ID,
	}
}

// decimalSetting reads a positive decimal given as a JSON/YAML number or string.
func decimalSetting(config map[string]any, key string) (decimal.Decimal, error) {
	raw, ok := config[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: missing %q", ErrInvalidConfiguration, key)
	}
	var (
		value decimal.Decimal
		err   error
	)
	switch v := raw.(type) {
	case string:
		value, err = decimal.NewFromString(v)
	case float64:
		value = decimal.NewFromFloat(v)
	case int:
		value = decimal.NewFromInt(int64(v))
	case int64:
		value = decimal.NewFromInt(v)
	default:
		err = fmt.Errorf("unsupported type %T", raw)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrInvalidConfiguration, key, err)
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q must be positive", ErrInvalidConfiguration, key)
	}
	return value, nil
}

func currencySetting(config map[string]any) (string, error) {
	raw, ok := config["currency_code"]
	if !ok {
		return "", nil
	}
	code, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: currency_code must be a string", ErrInvalidConfiguration)
	}
	return code, nil
}
