package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"gorm.io/datatypes"
)

type feeRow struct {
	ID                  string         `gorm:"primaryKey;type:text"`
	Name                string         `gorm:"type:text;not null"`
	Description         string         `gorm:"type:text"`
	OrderTypes          datatypes.JSON `gorm:"column:order_types;not null"`
	Stores              datatypes.JSON `gorm:"column:stores;not null"`
	PluginID            string         `gorm:"column:plugin_id;type:text;not null"`
	PluginConfiguration datatypes.JSON `gorm:"column:plugin_configuration"`
	Conditions          datatypes.JSON `gorm:"column:conditions"`
	ConditionOperator   string         `gorm:"column:condition_operator;type:text;not null;default:AND"`
	StartDate           domain.Date    `gorm:"column:start_date;type:text;not null"`
	EndDate             *domain.Date   `gorm:"column:end_date;type:text"`
	Status              bool           `gorm:"column:status;not null;index"`
	Weight              int            `gorm:"column:weight;not null;default:0"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
}

func (feeRow) TableName() string { return "commerce_fees" }

func toRow(fee *domain.FeeRecord) (*feeRow, error) {
	orderTypes, err := json.Marshal(fee.OrderTypes)
	if err != nil {
		return nil, fmt.Errorf("encode order types: %w", err)
	}
	stores, err := json.Marshal(fee.Stores)
	if err != nil {
		return nil, fmt.Errorf("encode stores: %w", err)
	}
	pluginConfig, err := json.Marshal(fee.Plugin.Configuration)
	if err != nil {
		return nil, fmt.Errorf("encode plugin configuration: %w", err)
	}
	conditions, err := json.Marshal(fee.Conditions)
	if err != nil {
		return nil, fmt.Errorf("encode conditions: %w", err)
	}
	return &feeRow{
		ID:                  fee.ID,
		Name:                fee.Name,
		Description:         fee.Description,
		OrderTypes:          datatypes.JSON(orderTypes),
		Stores:              datatypes.JSON(stores),
		PluginID:            fee.Plugin.ID,
		PluginConfiguration: datatypes.JSON(pluginConfig),
		Conditions:          datatypes.JSON(conditions),
		ConditionOperator:   fee.ConditionOperator,
		StartDate:           fee.StartDate,
		EndDate:             fee.EndDate,
		Status:              fee.Status,
		Weight:              fee.Weight,
	}, nil
}

func (r *feeRow) toRecord() (domain.FeeRecord, error) {
	fee := domain.FeeRecord{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		Plugin:            domain.PluginConfig{ID: r.PluginID},
		ConditionOperator: r.ConditionOperator,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Status:            r.Status,
		Weight:            r.Weight,
	}
	if err := unmarshalColumn(r.OrderTypes, &fee.OrderTypes); err != nil {
		return fee, fmt.Errorf("fee %s: order_types: %w", r.ID, err)
	}
	if err := unmarshalColumn(r.Stores, &fee.Stores); err != nil {
		return fee, fmt.Errorf("fee %s: stores: %w", r.ID, err)
	}
	if err := unmarshalColumn(r.PluginConfiguration, &fee.Plugin.Configuration); err != nil {
		return fee, fmt.Errorf("fee %s: plugin_configuration: %w", r.ID, err)
	}
	if err := unmarshalColumn(r.Conditions, &fee.Conditions); err != nil {
		return fee, fmt.Errorf("fee %s: conditions: %w", r.ID, err)
	}
	return fee, nil
}

func unmarshalColumn(raw datatypes.JSON, out any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
