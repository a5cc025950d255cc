package repository

import (
	"context"
	"errors"

	"campuscoffee/background-worker-service/internal/app/background-worker/entity"
)

var ErrStatsNotFound = errors.New("stats not found")

// StatsRepository - хранилище статистики отзывов в PostgreSQL
type StatsRepository interface {
	GetByPosID(ctx context.Context, posID string) (*entity.PosReviewStats, error)
	GetAll(ctx context.Context) ([]entity.PosReviewStats, error)
	Save(ctx context.Context, stats *entity.PosReviewStats) error
	ReplaceAll(ctx context.Context, stats []entity.PosReviewStats) error
}

// ReviewAggregator отдаёт первичную статистику из хранилища Reviews Service
type ReviewAggregator interface {
	AggregateByPos(ctx context.Context) ([]entity.PosReviewStats, error)
}
