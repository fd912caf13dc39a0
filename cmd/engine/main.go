package main

import (
	"fmt"
	"os"

	"github.com/Victor-armando18/service-fees/internal/clock"
	"github.com/Victor-armando18/service-fees/internal/config"
	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/infrastructure"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/repository"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/yaml"
	"github.com/Victor-armando18/service-fees/internal/interfaces"
	"github.com/Victor-armando18/service-fees/internal/observability/logger"
	"github.com/Victor-armando18/service-fees/internal/observability/metrics"
	"github.com/Victor-armando18/service-fees/internal/server"
	"github.com/Victor-armando18/service-fees/internal/usecase"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	app := fx.New(
		fx.Supply(cfg),
		logger.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		clock.Module,
		metrics.Module,
		feeSource(cfg),
		usecase.Module,
		server.Module,
	)
	app.Run()
}

// feeSource provides the FeeLoader for the configured fee source.
func feeSource(cfg config.Config) fx.Option {
	switch cfg.Fees.Source {
	case config.SourceYAML:
		return fx.Provide(func() interfaces.FeeLoader { return yaml.NewFeePackLoader(cfg.Fees.Path) })
	case config.SourceDatabase:
		return fx.Options(
			repository.Module,
			fx.Provide(func(repo domain.FeeRepository) interfaces.FeeLoader { return repo }),
		)
	default:
		return fx.Provide(func() interfaces.FeeLoader { return infrastructure.NewFileFeeLoader(cfg.Fees.Path) })
	}
}
