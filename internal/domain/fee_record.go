package domain

import (
	"errors"
	"fmt"
)

// FeeRecord is the persisted shape of a fee, before its plugin and conditions are resolved.
type FeeRecord struct {
	ID                string            `json:"id" yaml:"id"`
	Name              string            `json:"name" yaml:"name"`
	Description       string            `json:"description,omitempty" yaml:"description,omitempty"`
	OrderTypes        []string          `json:"order_types" yaml:"order_types"`
	Stores            []string          `json:"stores" yaml:"stores"`
	Plugin            PluginConfig      `json:"plugin" yaml:"plugin"`
	Conditions        []ConditionConfig `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	ConditionOperator string            `json:"condition_operator" yaml:"condition_operator"`
	StartDate         Date              `json:"start_date" yaml:"start_date"`
	EndDate           *Date             `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Status            bool              `json:"status" yaml:"status"`
	Weight            int               `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// PluginConfig names a fee calculation plugin and its configuration.
type PluginConfig struct {
	ID            string         `json:"target_plugin_id" yaml:"target_plugin_id"`
	Configuration map[string]any `json:"target_plugin_configuration,omitempty" yaml:"target_plugin_configuration,omitempty"`
}

// ConditionConfig names a condition plugin and its configuration.
type ConditionConfig struct {
	ID            string         `json:"target_plugin_id" yaml:"target_plugin_id"`
	Configuration map[string]any `json:"target_plugin_configuration,omitempty" yaml:"target_plugin_configuration,omitempty"`
}

// FeePack groups fee records in a single file.
type FeePack struct {
	Version     string      `json:"version" yaml:"version"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Fees        []FeeRecord `json:"fees" yaml:"fees"`
}

// Validate enforces the record invariants. Start and end dates are not cross-checked.
func (r *FeeRecord) Validate() error {
	var errs []error
	if r.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(r.OrderTypes) == 0 {
		errs = append(errs, errors.New("at least one order type is required"))
	}
	if len(r.Stores) == 0 {
		errs = append(errs, errors.New("at least one store is required"))
	}
	if r.Plugin.ID == "" {
		errs = append(errs, errors.New("plugin is required"))
	}
	if r.ConditionOperator != "AND" && r.ConditionOperator != "OR" {
		errs = append(errs, fmt.Errorf("condition operator must be AND or OR, got %q", r.ConditionOperator))
	}
	if r.StartDate.IsZero() {
		errs = append(errs, errors.New("start date is required"))
	}
	for i, c := range r.Conditions {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("condition %d: plugin id is required", i))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidFee, r.ID, errors.Join(errs...))
}
