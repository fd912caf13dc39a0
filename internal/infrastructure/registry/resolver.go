package registry

import (
	"fmt"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/conditions"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/plugins"
	"github.com/Victor-armando18/service-fees/internal/interfaces"
)

type Resolver struct {
	Plugins    *Registry[engine.FeePlugin]
	Conditions *Registry[engine.Condition]
}

func NewResolver(pluginRegistry *Registry[engine.FeePlugin], conditionRegistry *Registry[engine.Condition]) *Resolver {
	return &Resolver{Plugins: pluginRegistry, Conditions: conditionRegistry}
}

// NewDefaultResolver registers every built-in plugin and condition.
func NewDefaultResolver(executor interfaces.RuleExecutor) *Resolver {
	pluginRegistry := New[engine.FeePlugin]("fee plugin")
	for id, factory := range plugins.Factories() {
		pluginRegistry.Register(id, Factory[engine.FeePlugin](factory))
	}
	conditionRegistry := New[engine.Condition]("condition")
	for id, factory := range conditions.Factories(executor) {
		conditionRegistry.Register(id, Factory[engine.Condition](factory))
	}
	return NewResolver(pluginRegistry, conditionRegistry)
}

func (r *Resolver) Resolve(record domain.FeeRecord) (*engine.FeeDefinition, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	plugin, err := r.Plugins.Create(record.Plugin.ID, record.Plugin.Configuration)
	if err != nil {
		return nil, fmt.Errorf("%w: fee %s: %w", domain.ErrFeeResolutionFailed, record.ID, err)
	}

	resolved := make([]engine.Condition, 0, len(record.Conditions))
	for i, c := range record.Conditions {
		condition, err := r.Conditions.Create(c.ID, c.Configuration)
		if err != nil {
			return nil, fmt.Errorf("%w: fee %s: condition %d: %w", domain.ErrFeeResolutionFailed, record.ID, i, err)
		}
		resolved = append(resolved, condition)
	}

	return &engine.FeeDefinition{
		ID:                record.ID,
		Name:              record.Name,
		Description:       record.Description,
		OrderTypeIDs:      append([]string(nil), record.OrderTypes...),
		StoreIDs:          append([]string(nil), record.Stores...),
		Plugin:            plugin,
		Conditions:        resolved,
		ConditionOperator: engine.ConditionOperator(record.ConditionOperator),
		StartDate:         record.StartDate,
		EndDate:           record.EndDate,
		Enabled:           record.Status,
	}, nil
}
