// Package fee exposes the fee engine to programs embedding it outside this module.
package fee

import (
	"github.com/Victor-armando18/service-fees/internal/clock"
	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/Victor-armando18/service-fees/internal/infrastructure"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/registry"
	"github.com/Victor-armando18/service-fees/internal/interfaces"
	"github.com/Victor-armando18/service-fees/internal/usecase"
	"go.uber.org/zap"
)

type (
	Order         = domain.Order
	OrderItem     = domain.OrderItem
	Adjustment    = domain.Adjustment
	Record        = domain.FeeRecord
	Date          = domain.Date
	RefreshResult = domain.RefreshResult
	ExecutionStep = domain.ExecutionStep

	Loader  = interfaces.FeeLoader
	Service = interfaces.FeeFacade
	Clock   = engine.Clock
)

type Option func(*options)

type options struct {
	clock Clock
	log   *zap.Logger
}

func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// NewService wires the built-in plugins and conditions to loader.
func NewService(loader Loader, opts ...Option) Service {
	o := options{clock: clock.System{}, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return usecase.NewFeeService(usecase.FeeServiceParams{
		Loader:   loader,
		Resolver: registry.NewDefaultResolver(infrastructure.NewJsonLogicExecutor()),
		Engine:   engine.New(o.clock),
		Log:      o.log,
	})
}

// FileLoader reads fees from a JSON or YAML file, chosen by extension.
func FileLoader(path string) Loader {
	return infrastructure.NewPathFeeLoader(path)
}
