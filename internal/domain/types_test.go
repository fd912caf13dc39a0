package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleOrder() *Order {
	return &Order{
		ID: "ORD-1", TypeID: "default", StoreID: "S1", Currency: "USD",
		Items: []*OrderItem{
			{ID: "1", SKU: "A", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("5.00")},
			{ID: "2", SKU: "B", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("3.50")},
		},
	}
}

func TestOrder_Totals(t *testing.T) {
	order := sampleOrder()
	assert.True(t, order.Subtotal().Equal(decimal.RequireFromString("13.50")))

	order.AddAdjustment(Adjustment{Type: AdjustmentTypeFee, Amount: decimal.RequireFromString("1.35")})
	order.Items[1].AddAdjustment(Adjustment{Type: AdjustmentTypeFee, Amount: decimal.RequireFromString("0.50")})
	order.Items[0].AddAdjustment(Adjustment{Type: "tax", Amount: decimal.RequireFromString("2.00"), Included: true})

	assert.True(t, order.TotalPrice().Equal(decimal.RequireFromString("15.35")))
	assert.Len(t, order.CollectAdjustments(), 3)
}

func TestOrder_ClearAdjustments(t *testing.T) {
	order := sampleOrder()
	order.AddAdjustment(Adjustment{Type: AdjustmentTypeFee, Amount: decimal.NewFromInt(1)})
	order.AddAdjustment(Adjustment{Type: "promotion", Amount: decimal.NewFromInt(-1)})
	order.Items[0].AddAdjustment(Adjustment{Type: AdjustmentTypeFee, Amount: decimal.NewFromInt(1)})

	order.ClearAdjustments(AdjustmentTypeFee)

	assert.Len(t, order.Adjustments, 1)
	assert.Equal(t, "promotion", order.Adjustments[0].Type)
	assert.Empty(t, order.Items[0].Adjustments)
}

func TestOrder_Validate(t *testing.T) {
	assert.NoError(t, sampleOrder().Validate())

	missingStore := sampleOrder()
	missingStore.StoreID = ""
	assert.True(t, errors.Is(missingStore.Validate(), ErrInvalidOrder))

	negative := sampleOrder()
	negative.Items[0].Quantity = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negative.Validate(), ErrInvalidOrder)
}

func TestFeeRecord_Validate(t *testing.T) {
	valid := FeeRecord{
		ID: "f1", Name: "Fee", OrderTypes: []string{"default"}, Stores: []string{"S1"},
		Plugin:            PluginConfig{ID: "order_percentage"},
		ConditionOperator: "AND",
		StartDate:         NewDate(2017, time.January, 1),
	}
	assert.NoError(t, valid.Validate())

	endBeforeStart := valid
	end := NewDate(2016, time.January, 1)
	endBeforeStart.EndDate = &end
	assert.NoError(t, endBeforeStart.Validate())

	broken := valid
	broken.Stores = nil
	broken.ConditionOperator = "XOR"
	broken.StartDate = Date{}
	err := broken.Validate()
	assert.ErrorIs(t, err, ErrInvalidFee)
	assert.Contains(t, err.Error(), "store")
	assert.Contains(t, err.Error(), "XOR")
	assert.Contains(t, err.Error(), "start date")
}
