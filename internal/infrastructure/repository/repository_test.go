package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepository(t *testing.T) domain.FeeRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return NewFeeRepository(db, node)
}

func newRecord(name string, weight int) *domain.FeeRecord {
	return &domain.FeeRecord{
		Name:       name,
		OrderTypes: []string{"default"},
		Stores:     []string{"S1", "S2"},
		Plugin: domain.PluginConfig{
			ID:            "order_percentage",
			Configuration: map[string]any{"percentage": "0.10"},
		},
		Conditions: []domain.ConditionConfig{
			{ID: "order_item_sku", Configuration: map[string]any{"skus": []any{"A"}}},
		},
		ConditionOperator: "AND",
		StartDate:         domain.NewDate(2017, time.January, 1),
		Status:            true,
		Weight:            weight,
	}
}

func TestRepository_CreateAndFind(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	fee := newRecord("Handling", 0)
	end := domain.NewDate(2031, time.June, 30)
	fee.EndDate = &end
	require.NoError(t, repo.Create(ctx, fee))
	assert.NotEmpty(t, fee.ID)

	got, err := repo.FindByID(ctx, fee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Handling", got.Name)
	assert.Equal(t, []string{"S1", "S2"}, got.Stores)
	assert.Equal(t, "0.10", got.Plugin.Configuration["percentage"])
	require.Len(t, got.Conditions, 1)
	assert.Equal(t, "order_item_sku", got.Conditions[0].ID)
	assert.Equal(t, domain.NewDate(2017, time.January, 1), got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, end, *got.EndDate)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrFeeNotFound)
}

func TestRepository_RejectsInvalidRecords(t *testing.T) {
	repo := setupRepository(t)
	fee := newRecord("Broken", 0)
	fee.Stores = nil
	assert.ErrorIs(t, repo.Create(context.Background(), fee), domain.ErrInvalidFee)
}

func TestRepository_ListOrdersByWeight(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newRecord("second", 10)))
	require.NoError(t, repo.Create(ctx, newRecord("first", -5)))
	disabled := newRecord("off", 0)
	disabled.Status = false
	require.NoError(t, repo.Create(ctx, disabled))

	all, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Name)
	assert.Equal(t, "off", all[1].Name)
	assert.Equal(t, "second", all[2].Name)

	enabled := true
	active, err := repo.List(ctx, domain.FeeListFilter{Enabled: &enabled})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	named, err := repo.List(ctx, domain.FeeListFilter{Name: "off"})
	require.NoError(t, err)
	require.Len(t, named, 1)
	assert.False(t, named[0].Status)
}

func TestRepository_UpdateToggleDelete(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	fee := newRecord("Handling", 0)
	require.NoError(t, repo.Create(ctx, fee))

	fee.ConditionOperator = "OR"
	fee.Plugin = domain.PluginConfig{ID: "order_fixed_amount", Configuration: map[string]any{"amount": "2.00"}}
	require.NoError(t, repo.Update(ctx, fee))

	got, err := repo.FindByID(ctx, fee.ID)
	require.NoError(t, err)
	assert.Equal(t, "OR", got.ConditionOperator)
	assert.Equal(t, "order_fixed_amount", got.Plugin.ID)

	require.NoError(t, repo.SetEnabled(ctx, fee.ID, false))
	got, err = repo.FindByID(ctx, fee.ID)
	require.NoError(t, err)
	assert.False(t, got.Status)

	assert.ErrorIs(t, repo.SetEnabled(ctx, "missing", true), domain.ErrFeeNotFound)

	require.NoError(t, repo.Delete(ctx, fee.ID))
	assert.ErrorIs(t, repo.Delete(ctx, fee.ID), domain.ErrFeeNotFound)
}
