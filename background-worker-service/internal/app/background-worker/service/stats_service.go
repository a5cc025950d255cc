package service

import (
	"context"
	"errors"
	"fmt"

	"campuscoffee/background-worker-service/internal/app/background-worker/entity"
	"campuscoffee/background-worker-service/internal/app/background-worker/repository"
	"campuscoffee/pkg/logger"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService создаёт сервис инкрементального обновления статистики
func NewStatsService(statsRepo repository.StatsRepository) StatsServiceInterface {
	return &statsService{statsRepo: statsRepo}
}

// ProcessReviewEvent обновляет счётчики точки продаж по событию отзыва.
// REVIEW_APPROVAL_ADDED не меняет счётчики: одобрения ниже порога
// статистику не затрагивают.
func (s *statsService) ProcessReviewEvent(ctx context.Context, event *entity.ReviewEvent) error {
	switch event.EventType {
	case entity.EventReviewCreated:
		return s.increment(ctx, event.PosID, 1, 0)

	case entity.EventReviewApproved:
		return s.increment(ctx, event.PosID, 0, 1)

	case entity.EventReviewApprovalAdded:
		logger.Debug().
			Str("review_id", event.ReviewID).
			Str("pos_id", event.PosID).
			Int("approval_count", event.ApprovalCount).
			Msg("Approval added, counters unchanged")
		return nil

	default:
		// Неизвестные типы пропускаем, чтобы не блокировать партицию
		logger.Warn().
			Str("event_type", event.EventType).
			Str("review_id", event.ReviewID).
			Msg("Unknown review event type, skipping")
		return nil
	}
}

func (s *statsService) increment(ctx context.Context, posID string, totalDelta, approvedDelta int) error {
	if posID == "" {
		return fmt.Errorf("event has empty pos_id")
	}

	stats, err := s.statsRepo.GetByPosID(ctx, posID)
	if err != nil {
		if !errors.Is(err, repository.ErrStatsNotFound) {
			return fmt.Errorf("failed to load stats for pos %s: %w", posID, err)
		}
		stats = &entity.PosReviewStats{PosID: posID}
	}

	stats.TotalReviews += totalDelta
	stats.ApprovedReviews += approvedDelta

	if err := s.statsRepo.Save(ctx, stats); err != nil {
		return fmt.Errorf("failed to save stats for pos %s: %w", posID, err)
	}

	logger.Info().
		Str("pos_id", posID).
		Int("total_reviews", stats.TotalReviews).
		Int("approved_reviews", stats.ApprovedReviews).
		Msg("Pos review stats updated")

	return nil
}
