package repository

import (
	"context"
	"errors"
	"fmt"

	"campuscoffee/pkg/metrics"
	"campuscoffee/pos-service/internal/app/pos/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const serviceName = "pos-service"

type posRepository struct {
	db *gorm.DB
}

// NewPosRepository создает новый репозиторий точек продаж
func NewPosRepository(db *gorm.DB) PosRepository {
	return &posRepository{db: db}
}

// Create создает новую точку продаж
func (r *posRepository) Create(ctx context.Context, pos *entity.Pos) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpInsert, "pos")
	defer timer.ObserveDuration()

	result := r.db.WithContext(ctx).Create(pos)
	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpInsert)
		return fmt.Errorf("failed to create pos: %w", result.Error)
	}

	return nil
}

// GetByID получает точку продаж по ID
func (r *posRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Pos, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pos")
	defer timer.ObserveDuration()

	var pos entity.Pos
	result := r.db.WithContext(ctx).First(&pos, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPosNotFound
		}
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get pos: %w", result.Error)
	}

	return &pos, nil
}

// GetAll получает все точки продаж
func (r *posRepository) GetAll(ctx context.Context) ([]entity.Pos, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pos")
	defer timer.ObserveDuration()

	var pos []entity.Pos
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&pos)

	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get pos list: %w", result.Error)
	}

	return pos, nil
}

// Update обновляет точку продаж
func (r *posRepository) Update(ctx context.Context, pos *entity.Pos) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpUpdate, "pos")
	defer timer.ObserveDuration()

	result := r.db.WithContext(ctx).Model(pos).Where("id = ?", pos.ID).Updates(map[string]interface{}{
		"name":        pos.Name,
		"description": pos.Description,
		"campus":      pos.Campus,
		"type":        pos.Type,
		"address":     pos.Address,
	})

	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpUpdate)
		return fmt.Errorf("failed to update pos: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrPosNotFound
	}

	return nil
}

// Delete удаляет точку продаж
func (r *posRepository) Delete(ctx context.Context, id uuid.UUID) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpDelete, "pos")
	defer timer.ObserveDuration()

	result := r.db.WithContext(ctx).Delete(&entity.Pos{}, "id = ?", id)

	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpDelete)
		return fmt.Errorf("failed to delete pos: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrPosNotFound
	}

	return nil
}
