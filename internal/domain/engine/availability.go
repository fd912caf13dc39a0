package engine

import (
	"slices"
	"time"

	"github.com/Victor-armando18/service-fees/internal/domain"
)

// Available reports whether fee may be considered for order at now, ignoring conditions.
// The start date is inclusive and the end date exclusive, both at day granularity.
func Available(fee *FeeDefinition, order *domain.Order, now time.Time) bool {
	if !fee.Enabled {
		return false
	}
	if !slices.Contains(fee.OrderTypeIDs, order.TypeID) {
		return false
	}
	if !slices.Contains(fee.StoreIDs, order.StoreID) {
		return false
	}
	today := domain.DateOf(now)
	if fee.StartDate.After(today) {
		return false
	}
	if fee.EndDate != nil && !today.Before(*fee.EndDate) {
		return false
	}
	return true
}
