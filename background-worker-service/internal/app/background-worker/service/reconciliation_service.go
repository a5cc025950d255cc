package service

import (
	"context"
	"fmt"
	"time"

	"campuscoffee/background-worker-service/internal/app/background-worker/repository"
	"campuscoffee/pkg/logger"
	"campuscoffee/pkg/metrics"
)

type reconciliationService struct {
	aggregator repository.ReviewAggregator
	statsRepo  repository.StatsRepository
}

// NewReconciliationService создаёт сервис ночной сверки. Инкрементальные
// счётчики из Kafka со временем могут разойтись с первичными данными
// (пропущенные события, передоставка), сверка возвращает их к истине.
func NewReconciliationService(aggregator repository.ReviewAggregator, statsRepo repository.StatsRepository) ReconciliationServiceInterface {
	return &reconciliationService{
		aggregator: aggregator,
		statsRepo:  statsRepo,
	}
}

// Reconcile пересчитывает статистику по всем точкам продаж
func (s *reconciliationService) Reconcile(ctx context.Context) error {
	start := time.Now()

	stats, err := s.aggregator.AggregateByPos(ctx)
	if err != nil {
		metrics.WorkerReconciliations.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	if err := s.statsRepo.ReplaceAll(ctx, stats); err != nil {
		metrics.WorkerReconciliations.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to replace stats: %w", err)
	}

	metrics.WorkerReconciliations.WithLabelValues("success").Inc()

	logger.Info().
		Int("pos_count", len(stats)).
		Dur("duration", time.Since(start)).
		Msg("Review stats reconciliation completed")

	return nil
}
