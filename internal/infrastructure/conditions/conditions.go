// Package conditions holds the condition capabilities fees can be configured with.
package conditions

import (
	"errors"
	"fmt"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/Victor-armando18/service-fees/internal/interfaces"
	"github.com/shopspring/decimal"
)

const (
	OrderTotalPriceID   = "order_total_price"
	OrderCurrencyID     = "order_currency"
	OrderItemQuantityID = "order_item_quantity"
	OrderItemSKUID      = "order_item_sku"
	JsonLogicID         = "jsonlogic"
)

var (
	ErrInvalidConfiguration = errors.New("invalid condition configuration")
	ErrUnexpectedSubject    = errors.New("unexpected condition subject")
	ErrNonBooleanResult     = errors.New("condition expression did not return a boolean")
)

type Factory func(config map[string]any) (engine.Condition, error)

// Factories lists the built-in conditions by identifier.
func Factories(executor interfaces.RuleExecutor) map[string]Factory {
	return map[string]Factory{
		OrderTotalPriceID:   NewOrderTotalPrice,
		OrderCurrencyID:     NewOrderCurrency,
		OrderItemQuantityID: NewOrderItemQuantity,
		OrderItemSKUID:      NewOrderItemSKU,
		JsonLogicID:         NewJsonLogicFactory(executor),
	}
}

func asOrder(subject any, id string) (*domain.Order, error) {
	order, ok := subject.(*domain.Order)
	if !ok {
		return nil, fmt.Errorf("%w: %s wants an order, got %T", ErrUnexpectedSubject, id, subject)
	}
	return order, nil
}

func asOrderItem(subject any, id string) (*domain.OrderItem, error) {
	item, ok := subject.(*domain.OrderItem)
	if !ok {
		return nil, fmt.Errorf("%w: %s wants an order item, got %T", ErrUnexpectedSubject, id, subject)
	}
	return item, nil
}

// comparison is a numeric operator as configured on threshold conditions.
type comparison string

func comparisonSetting(config map[string]any) (comparison, error) {
	raw, ok := config["operator"]
	if !ok {
		return ">=", nil
	}
	op, _ := raw.(string)
	switch comparison(op) {
	case ">", ">=", "<", "<=", "==":
		return comparison(op), nil
	}
	return "", fmt.Errorf("%w: unsupported operator %v", ErrInvalidConfiguration, raw)
}

func (c comparison) compare(value, threshold decimal.Decimal) bool {
	switch c {
	case ">":
		return value.GreaterThan(threshold)
	case ">=":
		return value.GreaterThanOrEqual(threshold)
	case "<":
		return value.LessThan(threshold)
	case "<=":
		return value.LessThanOrEqual(threshold)
	default:
		return value.Equal(threshold)
	}
}

func decimalSetting(config map[string]any, key string) (decimal.Decimal, error) {
	switch v := config[key].(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrInvalidConfiguration, key, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case nil:
		return decimal.Zero, fmt.Errorf("%w: missing %q", ErrInvalidConfiguration, key)
	default:
		return decimal.Zero, fmt.Errorf("%w: %q has type %T", ErrInvalidConfiguration, key, v)
	}
}

func stringListSetting(config map[string]any, key string) ([]string, error) {
	var out []string
	switch v := config[key].(type) {
	case []string:
		out = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %q must hold strings", ErrInvalidConfiguration, key)
			}
			out = append(out, s)
		}
	case string:
		out = []string{v}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q must not be empty", ErrInvalidConfiguration, key)
	}
	return out, nil
}
