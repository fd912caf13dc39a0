package usecase

import (
	"github.com/Victor-armando18/service-fees/internal/clock"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/Victor-armando18/service-fees/internal/infrastructure"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/registry"
	"github.com/Victor-armando18/service-fees/internal/interfaces"
	"go.uber.org/fx"
)

var Module = fx.Module("fee.usecase",
	fx.Provide(func() interfaces.RuleExecutor { return infrastructure.NewJsonLogicExecutor() }),
	fx.Provide(func(executor interfaces.RuleExecutor) interfaces.FeeResolver {
		return registry.NewDefaultResolver(executor)
	}),
	fx.Provide(func(c clock.Clock) *engine.Engine { return engine.New(c) }),
	fx.Provide(
		NewFeeService,
		func(s *FeeService) interfaces.FeeFacade { return s },
	),
)
