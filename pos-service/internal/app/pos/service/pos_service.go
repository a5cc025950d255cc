package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campuscoffee/pkg/logger"
	"campuscoffee/pkg/metrics"
	"campuscoffee/pos-service/internal/app/pos/entity"
	"campuscoffee/pos-service/internal/app/pos/repository"
	"campuscoffee/pos-service/internal/app/pos/util"

	"github.com/google/uuid"
)

// Время жизни кеша списка точек продаж
const posListCacheTTL = time.Hour

// PosService бизнес-логика каталога точек продаж.
// Координирует PostgreSQL, Redis кеш и отправку событий в Kafka
type PosService struct {
	posRepo       repository.PosRepository
	cache         util.PosCache
	kafkaProducer util.MessagePublisher
}

// NewPosService создает новый сервис точек продаж
func NewPosService(
	posRepo repository.PosRepository,
	cache util.PosCache,
	kafkaProducer util.MessagePublisher,
) *PosService {
	return &PosService{
		posRepo:       posRepo,
		cache:         cache,
		kafkaProducer: kafkaProducer,
	}
}

// CreatePos создает новую точку продаж, инвалидирует кеш списка
// и отправляет событие POS_CREATED
func (s *PosService) CreatePos(ctx context.Context, req *entity.CreatePosRequest) (*entity.Pos, error) {
	pos := &entity.Pos{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Campus:      req.Campus,
		Type:        req.Type,
		Address:     req.Address,
		CreatedAt:   time.Now(),
	}

	if err := s.posRepo.Create(ctx, pos); err != nil {
		return nil, fmt.Errorf("failed to create pos: %w", err)
	}

	metrics.PosCreated.Inc()

	// Ошибка кеша не прерывает операцию - точка уже сохранена
	if err := s.cache.DeletePosList(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate pos list cache")
	}

	s.publishPosEvent(ctx, entity.EventPosCreated, pos)

	return pos, nil
}

// GetPos получает точку продаж по ID.
// Этим эндпоинтом пользуется Reviews Service для проверки существования точки
func (s *PosService) GetPos(ctx context.Context, id uuid.UUID) (*entity.Pos, error) {
	pos, err := s.posRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPosNotFound) {
			return nil, ErrPosNotFound
		}
		return nil, fmt.Errorf("failed to get pos: %w", err)
	}

	return pos, nil
}

// GetAllPos получает все точки продаж.
// Сначала проверяет Redis кеш, при промахе читает из PostgreSQL
// и кеширует результат на час
func (s *PosService) GetAllPos(ctx context.Context) ([]entity.Pos, error) {
	cached, err := s.cache.GetPosList(ctx)
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read pos list from cache")
	}

	pos, err := s.posRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pos list: %w", err)
	}

	if err := s.cache.SetPosList(ctx, pos, posListCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("failed to cache pos list")
	}

	return pos, nil
}

// UpdatePos обновляет точку продаж. Непустые поля запроса перекрывают
// текущие значения. Инвалидирует кеш и отправляет событие POS_UPDATED
func (s *PosService) UpdatePos(ctx context.Context, id uuid.UUID, req *entity.UpdatePosRequest) (*entity.Pos, error) {
	pos, err := s.posRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPosNotFound) {
			return nil, ErrPosNotFound
		}
		return nil, fmt.Errorf("failed to get pos: %w", err)
	}

	if req.Name != "" {
		pos.Name = req.Name
	}
	if req.Description != "" {
		pos.Description = req.Description
	}
	if req.Campus != "" {
		pos.Campus = req.Campus
	}
	if req.Type != "" {
		pos.Type = req.Type
	}
	if req.Address != "" {
		pos.Address = req.Address
	}

	if err := s.posRepo.Update(ctx, pos); err != nil {
		if errors.Is(err, repository.ErrPosNotFound) {
			return nil, ErrPosNotFound
		}
		return nil, fmt.Errorf("failed to update pos: %w", err)
	}

	if err := s.cache.DeletePosList(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate pos list cache")
	}

	s.publishPosEvent(ctx, entity.EventPosUpdated, pos)

	return pos, nil
}

// DeletePos удаляет точку продаж, инвалидирует кеш
// и отправляет событие POS_DELETED
func (s *PosService) DeletePos(ctx context.Context, id uuid.UUID) error {
	pos, err := s.posRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPosNotFound) {
			return ErrPosNotFound
		}
		return fmt.Errorf("failed to get pos: %w", err)
	}

	if err := s.posRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPosNotFound) {
			return ErrPosNotFound
		}
		return fmt.Errorf("failed to delete pos: %w", err)
	}

	if err := s.cache.DeletePosList(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate pos list cache")
	}

	s.publishPosEvent(ctx, entity.EventPosDeleted, pos)

	return nil
}

// publishPosEvent отправляет событие о точке продаж в Kafka.
// Ошибки Kafka логируются, но не прерывают операцию
func (s *PosService) publishPosEvent(ctx context.Context, eventType string, pos *entity.Pos) {
	event := entity.PosEvent{
		EventType: eventType,
		PosID:     pos.ID,
		Name:      pos.Name,
		Campus:    pos.Campus,
		Type:      pos.Type,
		Timestamp: time.Now(),
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal pos event")
		return
	}

	// Ключ = PosID для партиционирования событий одной точки
	if err := s.kafkaProducer.PublishMessage(ctx, event.PosID.String(), eventData); err != nil {
		logger.Error().
			Err(err).
			Str("event_type", eventType).
			Str("pos_id", event.PosID.String()).
			Msg("failed to publish pos event")
	}
}
