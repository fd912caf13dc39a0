package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// --- Input/output structures ---

// AdjustmentTypeFee tags adjustments produced by fee plugins.
const AdjustmentTypeFee = "fee"

// Order is the aggregate fees are evaluated against.
type Order struct {
	ID          string       `json:"id"`
	TypeID      string       `json:"typeId"`
	StoreID     string       `json:"storeId"`
	Currency    string       `json:"currency"`
	Items       []*OrderItem `json:"items"`
	Adjustments []Adjustment `json:"adjustments,omitempty"`
}

type OrderItem struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Title       string          `json:"title,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Adjustments []Adjustment    `json:"adjustments,omitempty"`
}

// Adjustment is a monetary delta attached to an order or an order item.
type Adjustment struct {
	Type     string          `json:"type"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	SourceID string          `json:"sourceId,omitempty"`
	// Included marks amounts already contained in the price (never added to totals).
	Included bool `json:"included,omitempty"`
}

// TotalPrice is unit price times quantity, before adjustments.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(i.Quantity)
}

// AdjustedTotalPrice adds the item's non-included adjustments to its total price.
func (i *OrderItem) AdjustedTotalPrice() decimal.Decimal {
	return i.TotalPrice().Add(sumAdjustments(i.Adjustments))
}

func (i *OrderItem) AddAdjustment(a Adjustment) {
	i.Adjustments = append(i.Adjustments, a)
}

func (o *Order) AddAdjustment(a Adjustment) {
	o.Adjustments = append(o.Adjustments, a)
}

// Subtotal is the sum of item totals before any adjustment.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// TotalPrice sums adjusted item totals and order-level adjustments.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.AdjustedTotalPrice())
	}
	return total.Add(sumAdjustments(o.Adjustments))
}

// CollectAdjustments returns order adjustments followed by item adjustments, in item order.
func (o *Order) CollectAdjustments() []Adjustment {
	out := append([]Adjustment{}, o.Adjustments...)
	for _, item := range o.Items {
		out = append(out, item.Adjustments...)
	}
	return out
}

// Clone copies the order deeply enough that adjusting the copy leaves o untouched.
func (o Order) Clone() Order {
	out := o
	out.Adjustments = append([]Adjustment(nil), o.Adjustments...)
	out.Items = make([]*OrderItem, len(o.Items))
	for i, item := range o.Items {
		if item == nil {
			continue
		}
		copied := *item
		copied.Adjustments = append([]Adjustment(nil), item.Adjustments...)
		out.Items[i] = &copied
	}
	return out
}

// ClearAdjustments drops adjustments of the given type from the order and its items.
func (o *Order) ClearAdjustments(adjustmentType string) {
	o.Adjustments = withoutType(o.Adjustments, adjustmentType)
	for _, item := range o.Items {
		item.Adjustments = withoutType(item.Adjustments, adjustmentType)
	}
}

// Validate checks the fields the fee engine reads.
func (o *Order) Validate() error {
	if o.TypeID == "" {
		return errors.Join(ErrInvalidOrder, errors.New("missing order type"))
	}
	if o.StoreID == "" {
		return errors.Join(ErrInvalidOrder, errors.New("missing store"))
	}
	for _, item := range o.Items {
		if item == nil {
			return errors.Join(ErrInvalidOrder, errors.New("nil order item"))
		}
		if item.Quantity.IsNegative() {
			return errors.Join(ErrInvalidOrder, errors.New("negative quantity on item "+item.ID))
		}
	}
	return nil
}

// ToMap exposes the order as plain values for expression evaluation.
func (o *Order) ToMap() map[string]any {
	items := make([]any, len(o.Items))
	skus := make([]any, len(o.Items))
	for i, item := range o.Items {
		items[i] = item.ToMap()
		skus[i] = item.SKU
	}
	return map[string]any{
		"id":         o.ID,
		"typeId":     o.TypeID,
		"storeId":    o.StoreID,
		"currency":   o.Currency,
		"subtotal":   o.Subtotal().InexactFloat64(),
		"totalItems": len(o.Items),
		"skus":       skus,
		"items":      items,
	}
}

func (i *OrderItem) ToMap() map[string]any {
	return map[string]any{
		"id":         i.ID,
		"sku":        i.SKU,
		"title":      i.Title,
		"quantity":   i.Quantity.InexactFloat64(),
		"unitPrice":  i.UnitPrice.InexactFloat64(),
		"totalPrice": i.TotalPrice().InexactFloat64(),
	}
}

func sumAdjustments(adjustments []Adjustment) decimal.Decimal {
	total := decimal.Zero
	for _, a := range adjustments {
		if a.Included {
			continue
		}
		total = total.Add(a.Amount)
	}
	return total
}

func withoutType(adjustments []Adjustment, adjustmentType string) []Adjustment {
	var kept []Adjustment
	for _, a := range adjustments {
		if a.Type != adjustmentType {
			kept = append(kept, a)
		}
	}
	return kept
}

// --- Constants and errors ---
var (
	ErrInvalidOrder        = errors.New("invalid order")
	ErrInvalidFee          = errors.New("invalid fee")
	ErrFeeNotFound         = errors.New("fee not found")
	ErrFeeResolutionFailed = errors.New("fee resolution failed")
	ErrRuleExecutionFailed = errors.New("rule execution failed")
)
