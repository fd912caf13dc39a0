package engine

import "github.com/Victor-armando18/service-fees/internal/domain"

// FeeDefinition is a resolved, read-only snapshot of a fee for one evaluation.
type FeeDefinition struct {
	ID                string
	Name              string
	Description       string
	OrderTypeIDs      []string
	StoreIDs          []string
	Plugin            FeePlugin
	Conditions        []Condition
	ConditionOperator ConditionOperator
	StartDate         domain.Date
	EndDate           *domain.Date
	Enabled           bool
}

// Label is the text shown on adjustments produced by this fee.
func (f *FeeDefinition) Label() string {
	switch {
	case f.Name != "":
		return f.Name
	case f.Description != "":
		return f.Description
	default:
		return "Fee"
	}
}

// partitionConditions splits conditions by target. Conditions of any other target are dropped.
func partitionConditions(conditions []Condition) (orderConditions, itemConditions []Condition) {
	for _, c := range conditions {
		switch c.TargetType() {
		case TargetOrder:
			orderConditions = append(orderConditions, c)
		case TargetOrderItem:
			itemConditions = append(itemConditions, c)
		}
	}
	return orderConditions, itemConditions
}
