package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repository struct {
	db    *gorm.DB
	genID *snowflake.Node
}

func NewFeeRepository(db *gorm.DB, genID *snowflake.Node) domain.FeeRepository {
	return &repository{db: db, genID: genID}
}

// AutoMigrate creates or updates the commerce_fees table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&feeRow{})
}

func (r *repository) Create(ctx context.Context, fee *domain.FeeRecord) error {
	if fee.ID == "" {
		fee.ID = r.genID.Generate().String()
	}
	if err := fee.Validate(); err != nil {
		return err
	}
	row, err := toRow(fee)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	row.CreatedAt, row.UpdatedAt = now, now
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*domain.FeeRecord, error) {
	var row feeRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFeeNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	fee, err := row.toRecord()
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *repository) List(ctx context.Context, filter domain.FeeListFilter) ([]domain.FeeRecord, error) {
	stmt := r.db.WithContext(ctx).Model(&feeRow{})
	if filter.Name != "" {
		stmt = stmt.Where("name = ?", filter.Name)
	}
	if filter.Enabled != nil {
		stmt = stmt.Where("status = ?", *filter.Enabled)
	}

	var rows []feeRow
	if err := stmt.Order("weight ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	fees := make([]domain.FeeRecord, 0, len(rows))
	for i := range rows {
		fee, err := rows[i].toRecord()
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

func (r *repository) Update(ctx context.Context, fee *domain.FeeRecord) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	row, err := toRow(fee)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&feeRow{}).Where("id = ?", fee.ID).Updates(map[string]any{
		"name":                 row.Name,
		"description":          row.Description,
		"order_types":          row.OrderTypes,
		"stores":               row.Stores,
		"plugin_id":            row.PluginID,
		"plugin_configuration": row.PluginConfiguration,
		"conditions":           row.Conditions,
		"condition_operator":   row.ConditionOperator,
		"start_date":           row.StartDate,
		"end_date":             row.EndDate,
		"status":               row.Status,
		"weight":               row.Weight,
		"updated_at":           time.Now().UTC(),
	})
	return notFoundIfUntouched(res, fee.ID)
}

func (r *repository) SetEnabled(ctx context.Context, id string, enabled bool) error {
	res := r.db.WithContext(ctx).Model(&feeRow{}).Where("id = ?", id).Updates(map[string]any{
		"status":     enabled,
		"updated_at": time.Now().UTC(),
	})
	return notFoundIfUntouched(res, id)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&feeRow{})
	return notFoundIfUntouched(res, id)
}

// Load returns every fee; availability is decided by the engine, not the query.
func (r *repository) Load(ctx context.Context) ([]domain.FeeRecord, error) {
	return r.List(ctx, domain.FeeListFilter{})
}

func notFoundIfUntouched(res *gorm.DB, id string) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrFeeNotFound, id)
	}
	return nil
}
