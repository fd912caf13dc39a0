package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/Victor-armando18/service-fees/internal/domain"
	"github.com/Victor-armando18/service-fees/internal/domain/engine"
	"github.com/Victor-armando18/service-fees/internal/infrastructure/diff"
	"github.com/Victor-armando18/service-fees/internal/interfaces"
	"github.com/Victor-armando18/service-fees/internal/observability/logger"
	"github.com/Victor-armando18/service-fees/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type FeeServiceParams struct {
	fx.In

	Loader   interfaces.FeeLoader
	Resolver interfaces.FeeResolver
	Engine   *engine.Engine
	Log      *zap.Logger
	Metrics  *metrics.FeeMetrics `optional:"true"`
}

type FeeService struct {
	loader   interfaces.FeeLoader
	resolver interfaces.FeeResolver
	engine   *engine.Engine
	differ   *diff.Differ
	log      *zap.Logger
	metrics  *metrics.FeeMetrics
}

func NewFeeService(p FeeServiceParams) *FeeService {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &FeeService{
		loader:   p.Loader,
		resolver: p.Resolver,
		engine:   p.Engine,
		differ:   &diff.Differ{},
		log:      log,
		metrics:  p.Metrics,
	}
}

// Refresh recomputes fee adjustments on a copy of order from a clean slate: earlier
// fee adjustments are dropped, then every fee is run in weight order.
func (s *FeeService) Refresh(ctx context.Context, order domain.Order) (*domain.RefreshResult, error) {
	result, err := s.refresh(ctx, order)
	if err != nil {
		s.metrics.ObserveRefreshError()
		logger.WithOrder(s.log, order.ID, order.StoreID, order.TypeID).Error("fee refresh failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *FeeService) refresh(ctx context.Context, order domain.Order) (*domain.RefreshResult, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	records, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fees: %w", err)
	}
	SortFees(records)

	working := order.Clone()
	working.ClearAdjustments(domain.AdjustmentTypeFee)
	log := logger.WithOrder(s.log, order.ID, order.StoreID, order.TypeID)

	executionLog := make([]domain.ExecutionStep, 0, len(records))
	for _, record := range records {
		fee, err := s.resolver.Resolve(record)
		if err != nil {
			return nil, err
		}

		outcome, err := s.engine.Process(fee, &working)
		if err != nil {
			return nil, fmt.Errorf("fee %s: %w", fee.ID, err)
		}
		s.metrics.ObserveOutcome(string(outcome))
		log.Debug("fee evaluated", zap.String("fee_id", fee.ID), zap.String("outcome", string(outcome)))

		executionLog = append(executionLog, domain.ExecutionStep{
			FeeID:   fee.ID,
			FeeName: fee.Name,
			Outcome: string(outcome),
			Message: stepMessage(outcome, fee),
		})
	}

	delta, err := s.differ.Diff(order, working)
	if err != nil {
		return nil, fmt.Errorf("diff order: %w", err)
	}

	log.Info("order fees refreshed",
		zap.Int("fees", len(records)),
		zap.String("total", working.TotalPrice().StringFixed(2)),
	)

	return &domain.RefreshResult{
		Order:        working,
		Subtotal:     working.Subtotal(),
		TotalPrice:   working.TotalPrice(),
		Adjustments:  working.CollectAdjustments(),
		ExecutionLog: executionLog,
		Delta:        delta,
		ServerDelta:  delta != nil,
	}, nil
}

// SortFees orders records by weight, then id.
func SortFees(records []domain.FeeRecord) {
	slices.SortStableFunc(records, func(a, b domain.FeeRecord) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func stepMessage(outcome engine.Outcome, fee *engine.FeeDefinition) string {
	switch outcome {
	case engine.OutcomeUnavailable:
		return "fee is disabled, out of its date window, or not offered for this store or order type"
	case engine.OutcomeNotApplicable:
		return "fee conditions are not met"
	default:
		return fmt.Sprintf("applied %s", fee.Label())
	}
}
