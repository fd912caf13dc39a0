package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Victor-armando18/service-fees/internal/clock"
	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/Victor-armando18/service-fees/internal/infrastructure"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/conditions"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/registry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type staticLoader struct {
	fees []domain.FeeRecord
	err  error
}

func (l *staticLoader) Load(context.Context) ([]domain.FeeRecord, error) {
	if l.err != nil {
		return nil, l.err
	}
	return append([]domain.FeeRecord(nil), l.fees...), nil
}

func newTestService(t *testing.T, loader *staticLoader) *FeeService {
	t.Helper()
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	return NewFeeService(FeeServiceParams{
		Loader:   loader,
		Resolver: registry.NewDefaultResolver(infrastructure.NewJsonLogicExecutor()),
		Engine:   engine.New(clock.NewFakeClock(now)),
		Log:      zaptest.NewLogger(t),
	})
}

func percentageFee(id string, percentage string) domain.FeeRecord {
	return domain.FeeRecord{
		ID:                id,
		Name:              "Service fee " + id,
		OrderTypes:        []string{"default"},
		Stores:            []string{"S"},
		Plugin:            domain.PluginConfig{ID: "order_percentage", Configuration: map[string]any{"percentage": percentage}},
		ConditionOperator: "AND",
		StartDate:         domain.NewDate(2024, time.January, 1),
		Status:            true,
	}
}

func item(id, sku, price string) *domain.OrderItem {
	return &domain.OrderItem{
		ID:        id,
		SKU:       sku,
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.RequireFromString(price),
	}
}

func defaultOrder() domain.Order {
	return domain.Order{
		ID:       "1",
		TypeID:   "default",
		StoreID:  "S",
		Currency: "USD",
		Items:    []*domain.OrderItem{item("i1", "A", "10.00")},
	}
}

func TestRefresh_AppliesAndRemovesOrderPercentageFee(t *testing.T) {
	loader := &staticLoader{fees: []domain.FeeRecord{percentageFee("f1", "0.10")}}
	svc := newTestService(t, loader)

	result, err := svc.Refresh(context.Background(), defaultOrder())
	require.NoError(t, err)
	require.Len(t, result.Adjustments, 1)
	assert.Equal(t, domain.AdjustmentTypeFee, result.Adjustments[0].Type)
	assert.Equal(t, "f1", result.Adjustments[0].SourceID)
	assert.True(t, decimal.RequireFromString("1.00").Equal(result.Adjustments[0].Amount))
	assert.True(t, decimal.RequireFromString("11.00").Equal(result.TotalPrice))
	assert.True(t, result.ServerDelta)

	// Refreshing the refreshed order after disabling the fee drops its adjustment.
	loader.fees[0].Status = false
	result, err = svc.Refresh(context.Background(), result.Order)
	require.NoError(t, err)
	assert.Empty(t, result.Adjustments)
	assert.True(t, decimal.RequireFromString("10.00").Equal(result.TotalPrice))
	require.Len(t, result.ExecutionLog, 1)
	assert.Equal(t, domain.StepUnavailable, result.ExecutionLog[0].Outcome)
}

func TestRefresh_DoesNotMutateInput(t *testing.T) {
	svc := newTestService(t, &staticLoader{fees: []domain.FeeRecord{percentageFee("f1", "0.10")}})
	order := defaultOrder()
	order.AddAdjustment(domain.Adjustment{Type: domain.AdjustmentTypeFee, Label: "stale", Amount: decimal.NewFromInt(5)})
	order.AddAdjustment(domain.Adjustment{Type: "promotion", Label: "Spring", Amount: decimal.NewFromInt(-2)})

	result, err := svc.Refresh(context.Background(), order)
	require.NoError(t, err)

	assert.Len(t, order.Adjustments, 2)
	require.Len(t, result.Order.Adjustments, 2)
	assert.Equal(t, "promotion", result.Order.Adjustments[0].Type)
	assert.Equal(t, "f1", result.Order.Adjustments[1].SourceID)
	assert.True(t, decimal.RequireFromString("9.00").Equal(result.TotalPrice))
}

func TestRefresh_ItemScopedOrFeeOnlyAdjustsMatchingItems(t *testing.T) {
	fee := domain.FeeRecord{
		ID:         "sku-a",
		Name:       "A surcharge",
		OrderTypes: []string{"default"},
		Stores:     []string{"S"},
		Plugin:     domain.PluginConfig{ID: "order_item_fixed_amount", Configuration: map[string]any{"amount": "2.50"}},
		Conditions: []domain.ConditionConfig{
			{ID: "order_item_sku", Configuration: map[string]any{"skus": []any{"A"}}},
		},
		ConditionOperator: "OR",
		StartDate:         domain.NewDate(2024, time.January, 1),
		Status:            true,
	}
	svc := newTestService(t, &staticLoader{fees: []domain.FeeRecord{fee}})

	order := defaultOrder()
	order.Items = append(order.Items, item("i2", "B", "4.00"))

	result, err := svc.Refresh(context.Background(), order)
	require.NoError(t, err)

	require.Len(t, result.Order.Items[0].Adjustments, 1)
	assert.Empty(t, result.Order.Items[1].Adjustments)
	assert.Empty(t, result.Order.Adjustments)
	assert.True(t, decimal.RequireFromString("16.50").Equal(result.TotalPrice))
	assert.Equal(t, domain.StepApplied, result.ExecutionLog[0].Outcome)
}

func TestRefresh_ExecutionLogFollowsWeightThenID(t *testing.T) {
	heavy := percentageFee("a", "0.01")
	heavy.Weight = 10
	light := percentageFee("c", "0.01")
	tie := percentageFee("b", "0.01")
	outOfStore := percentageFee("d", "0.01")
	outOfStore.Stores = []string{"other"}
	outOfStore.Weight = -1

	svc := newTestService(t, &staticLoader{fees: []domain.FeeRecord{heavy, light, tie, outOfStore}})
	result, err := svc.Refresh(context.Background(), defaultOrder())
	require.NoError(t, err)

	var ids, outcomes []string
	for _, step := range result.ExecutionLog {
		ids = append(ids, step.FeeID)
		outcomes = append(outcomes, step.Outcome)
	}
	assert.Equal(t, []string{"d", "b", "c", "a"}, ids)
	assert.Equal(t, []string{domain.StepUnavailable, domain.StepApplied, domain.StepApplied, domain.StepApplied}, outcomes)
}

func TestRefresh_NotApplicableWhenOrderConditionFails(t *testing.T) {
	fee := percentageFee("min", "0.10")
	fee.Conditions = []domain.ConditionConfig{
		{ID: "order_total_price", Configuration: map[string]any{"operator": ">=", "amount": "50"}},
	}
	svc := newTestService(t, &staticLoader{fees: []domain.FeeRecord{fee}})

	result, err := svc.Refresh(context.Background(), defaultOrder())
	require.NoError(t, err)
	assert.Empty(t, result.Adjustments)
	assert.False(t, result.ServerDelta)
	assert.Equal(t, domain.StepNotApplicable, result.ExecutionLog[0].Outcome)
}

func TestRefresh_Errors(t *testing.T) {
	t.Run("invalid order", func(t *testing.T) {
		svc := newTestService(t, &staticLoader{})
		order := defaultOrder()
		order.StoreID = ""
		_, err := svc.Refresh(context.Background(), order)
		assert.ErrorIs(t, err, domain.ErrInvalidOrder)
	})

	t.Run("loader failure", func(t *testing.T) {
		boom := errors.New("boom")
		svc := newTestService(t, &staticLoader{err: boom})
		_, err := svc.Refresh(context.Background(), defaultOrder())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unknown plugin", func(t *testing.T) {
		fee := percentageFee("f1", "0.10")
		fee.Plugin.ID = "does_not_exist"
		svc := newTestService(t, &staticLoader{fees: []domain.FeeRecord{fee}})
		_, err := svc.Refresh(context.Background(), defaultOrder())
		assert.ErrorIs(t, err, domain.ErrFeeResolutionFailed)
		assert.ErrorIs(t, err, registry.ErrUnknownIdentifier)
	})

	t.Run("condition failure", func(t *testing.T) {
		fee := percentageFee("f1", "0.10")
		fee.Conditions = []domain.ConditionConfig{
			{ID: "jsonlogic", Configuration: map[string]any{
				"target": "commerce_order",
				"logic":  map[string]any{"var": "order.currency"},
			}},
		}
		svc := newTestService(t, &staticLoader{fees: []domain.FeeRecord{fee}})
		_, err := svc.Refresh(context.Background(), defaultOrder())
		assert.ErrorIs(t, err, conditions.ErrNonBooleanResult)
		assert.Contains(t, err.Error(), "fee f1")
	})
}

func TestSortFees(t *testing.T) {
	records := []domain.FeeRecord{{ID: "b", Weight: 1}, {ID: "a", Weight: 1}, {ID: "z", Weight: -5}}
	SortFees(records)
	assert.Equal(t, "z", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
	assert.Equal(t, "b", records[2].ID)
}
