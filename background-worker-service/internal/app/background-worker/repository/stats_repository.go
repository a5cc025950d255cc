package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campuscoffee/background-worker-service/internal/app/background-worker/entity"
	"campuscoffee/pkg/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const serviceName = "background-worker-service"

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository создаёт PostgreSQL-репозиторий статистики отзывов
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetByPosID(ctx context.Context, posID string) (*entity.PosReviewStats, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pos_review_stats")
	defer timer.ObserveDuration()

	var stats entity.PosReviewStats
	if err := r.db.WithContext(ctx).First(&stats, "pos_id = ?", posID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatsNotFound
		}
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &stats, nil
}

func (r *statsRepository) GetAll(ctx context.Context) ([]entity.PosReviewStats, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pos_review_stats")
	defer timer.ObserveDuration()

	var stats []entity.PosReviewStats
	if err := r.db.WithContext(ctx).Order("pos_id").Find(&stats).Error; err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get all stats: %w", err)
	}

	return stats, nil
}

// Save выполняет upsert по pos_id
func (r *statsRepository) Save(ctx context.Context, stats *entity.PosReviewStats) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpInsert, "pos_review_stats")
	defer timer.ObserveDuration()

	stats.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pos_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_reviews", "approved_reviews", "updated_at"}),
	}).Create(stats).Error
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpInsert)
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}

// ReplaceAll атомарно заменяет всю таблицу результатами сверки
func (r *statsRepository) ReplaceAll(ctx context.Context, stats []entity.PosReviewStats) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpUpdate, "pos_review_stats")
	defer timer.ObserveDuration()

	now := time.Now()
	for i := range stats {
		stats[i].UpdatedAt = now
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.PosReviewStats{}).Error; err != nil {
			return err
		}
		if len(stats) == 0 {
			return nil
		}
		return tx.Create(&stats).Error
	})
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpUpdate)
		return fmt.Errorf("failed to replace stats: %w", err)
	}

	return nil
}
