package plugins

import (
	"testing"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID: "ORD-1", TypeID: "default", StoreID: "S1", Currency: "USD",
		Items: []*domain.OrderItem{
			{ID: "1", SKU: "A", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.RequireFromString("3.33")},
			{ID: "2", SKU: "B", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("0.01")},
		},
	}
}

var fee = &engine.FeeDefinition{ID: "fee-1", Name: "Service fee"}

func TestOrderPercentage(t *testing.T) {
	p, err := NewOrderPercentage(map[string]any{"percentage": "0.10"})
	require.NoError(t, err)
	assert.Equal(t, engine.TargetOrder, p.TargetType())

	order := testOrder()
	require.NoError(t, p.Apply(order, fee))
	require.Len(t, order.Adjustments, 1)

	adj := order.Adjustments[0]
	assert.Equal(t, domain.AdjustmentTypeFee, adj.Type)
	assert.Equal(t, "Service fee", adj.Label)
	assert.Equal(t, "fee-1", adj.SourceID)
	// 10.00 * 0.10
	assert.Equal(t, "1", adj.Amount.String())

	assert.ErrorIs(t, p.Apply(order.Items[0], fee), ErrUnexpectedTarget)
}

func TestOrderFixedAmount(t *testing.T) {
	p, err := NewOrderFixedAmount(map[string]any{"amount": 2.5, "currency_code": "USD"})
	require.NoError(t, err)

	order := testOrder()
	require.NoError(t, p.Apply(order, fee))
	require.Len(t, order.Adjustments, 1)
	assert.True(t, order.Adjustments[0].Amount.Equal(decimal.RequireFromString("2.50")))

	euro := testOrder()
	euro.Currency = "EUR"
	require.NoError(t, p.Apply(euro, fee))
	assert.Empty(t, euro.Adjustments)
}

func TestOrderItemPercentage(t *testing.T) {
	p, err := NewOrderItemPercentage(map[string]any{"percentage": 0.15})
	require.NoError(t, err)
	assert.Equal(t, engine.TargetOrderItem, p.TargetType())

	order := testOrder()
	require.NoError(t, p.Apply(order.Items[0], fee))
	require.Len(t, order.Items[0].Adjustments, 1)
	// 9.99 * 0.15 = 1.4985
	assert.Equal(t, "1.5", order.Items[0].Adjustments[0].Amount.String())

	assert.ErrorIs(t, p.Apply(order, fee), ErrUnexpectedTarget)
}

func TestOrderItemFixedAmount(t *testing.T) {
	p, err := NewOrderItemFixedAmount(map[string]any{"amount": "0.75"})
	require.NoError(t, err)

	order := testOrder()
	require.NoError(t, p.Apply(order.Items[0], fee))
	assert.True(t, order.Items[0].Adjustments[0].Amount.Equal(decimal.RequireFromString("2.25")))
}

func TestConfigurationValidation(t *testing.T) {
	cases := map[string]map[string]any{
		"missing":  {},
		"zero":     {"percentage": "0"},
		"negative": {"percentage": -0.1},
		"garbage":  {"percentage": "ten"},
		"bool":     {"percentage": true},
	}
	for name, config := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewOrderPercentage(config)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}

	_, err := NewOrderFixedAmount(map[string]any{"amount": "1", "currency_code": 840})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestFactories(t *testing.T) {
	factories := Factories()
	assert.Len(t, factories, 4)
	for id, factory := range factories {
		_, err := factory(map[string]any{"percentage": "0.1", "amount": "1"})
		assert.NoError(t, err, id)
	}
}
