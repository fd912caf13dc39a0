package repository

import (
	"fmt"
	"strings"

	"github.com/Victor-armando18/service-fees/internal/config"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var Module = fx.Module("fee.repository",
	fx.Provide(NewDB),
	fx.Provide(NewSnowflake),
	fx.Provide(NewFeeRepository),
)

// NewDB opens the configured database and migrates the fee table.
func NewDB(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Database.Type) {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Database.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Database.Type, err)
	}
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate fee table: %w", err)
	}
	log.Info("fee database ready", zap.String("type", cfg.Database.Type))
	return db, nil
}

func NewSnowflake(cfg config.Config) (*snowflake.Node, error) {
	return snowflake.NewNode(cfg.NodeID)
}
