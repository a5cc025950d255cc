package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campuscoffee/pkg/logger"
	"campuscoffee/pkg/metrics"
	"campuscoffee/reviews-service/internal/app/reviews/entity"
	"campuscoffee/reviews-service/internal/app/reviews/infrastructure"
	"campuscoffee/reviews-service/internal/app/reviews/repository"
)

// ReviewService обрабатывает жизненный цикл отзывов и правила одобрения.
// Единственное место, где меняются approval_count и approved.
// Сервис stateless: всё состояние в хранилище, конфликтующие записи
// по одному отзыву сериализует хранилище.
type ReviewService struct {
	reviewRepo    repository.ReviewRepository
	userClient    infrastructure.UserServiceClient
	posClient     infrastructure.PosServiceClient
	kafkaProducer infrastructure.MessagePublisher
	minApprovals  int // Порог одобрений, неизменяемый на время жизни сервиса
}

// NewReviewService создает новый сервис отзывов с внедрением зависимостей
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	userClient infrastructure.UserServiceClient,
	posClient infrastructure.PosServiceClient,
	kafkaProducer infrastructure.MessagePublisher,
	minApprovals int,
) *ReviewService {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		userClient:    userClient,
		posClient:     posClient,
		kafkaProducer: kafkaProducer,
		minApprovals:  minApprovals,
	}
}

// Upsert сохраняет отзыв.
// 1. Проверяет существование точки продаж в POS Service
// 2. Для нового отзыва (нулевой ID) проверяет, что автор ещё не писал
//    отзыв об этой точке
// 3. Сохраняет в MongoDB и отправляет событие REVIEW_CREATED в Kafka
func (s *ReviewService) Upsert(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if _, err := s.posClient.GetPos(ctx, review.PosID); err != nil {
		if errors.Is(err, infrastructure.ErrPosNotFound) {
			return nil, ErrPosNotFound
		}
		return nil, fmt.Errorf("failed to check pos: %w", err)
	}

	isNew := review.ID.IsZero()

	if isNew {
		existing, err := s.reviewRepo.FilterByPosAuthor(ctx, review.PosID, review.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing reviews: %w", err)
		}
		if len(existing) > 0 {
			return nil, ErrAlreadyReviewed
		}
	}

	saved, err := s.reviewRepo.Upsert(ctx, review)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to upsert review: %w", err)
	}

	if isNew {
		metrics.ReviewsCreated.Inc()
		s.publishReviewEvent(ctx, entity.EventReviewCreated, saved)
	}

	return saved, nil
}

// Approve засчитывает одобрение отзыва от пользователя approverID.
// Счётчик и флаг одобрения берутся из заново прочитанной канонической копии,
// а не из аргумента - устаревшее состояние вызывающей стороны не влияет
// на результат. Автор не может одобрить собственный отзыв.
func (s *ReviewService) Approve(ctx context.Context, review *entity.Review, approverID string) (*entity.Review, error) {
	approver, err := s.userClient.GetUser(ctx, approverID)
	if err != nil {
		if errors.Is(err, infrastructure.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get approver: %w", err)
	}

	persisted, err := s.reviewRepo.GetByID(ctx, review.ID.Hex())
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	// Проверка до любых мутаций
	if approver.ID == persisted.AuthorID {
		return nil, ErrSelfApproval
	}

	wasApproved := persisted.Approved

	persisted.ApprovalCount++
	*persisted = s.UpdateApprovalStatus(*persisted)

	saved, err := s.reviewRepo.Upsert(ctx, persisted)
	if err != nil {
		return nil, fmt.Errorf("failed to persist approval: %w", err)
	}

	metrics.ReviewApprovals.Inc()
	s.publishReviewEvent(ctx, entity.EventReviewApprovalAdded, saved)

	if !wasApproved && saved.Approved {
		metrics.ReviewsApproved.Inc()
		s.publishReviewEvent(ctx, entity.EventReviewApproved, saved)
	}

	return saved, nil
}

// Filter получает отзывы точки продаж с заданным статусом одобрения.
// Результат репозитория возвращается без изменений
func (s *ReviewService) Filter(ctx context.Context, posID string, approved bool) ([]entity.Review, error) {
	if _, err := s.posClient.GetPos(ctx, posID); err != nil {
		if errors.Is(err, infrastructure.ErrPosNotFound) {
			return nil, ErrPosNotFound
		}
		return nil, fmt.Errorf("failed to check pos: %w", err)
	}

	reviews, err := s.reviewRepo.FilterByPos(ctx, posID, approved)
	if err != nil {
		return nil, fmt.Errorf("failed to filter reviews: %w", err)
	}

	return reviews, nil
}

// GetReview получает отзыв по ID
func (s *ReviewService) GetReview(ctx context.Context, reviewID string) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// UpdateApprovalStatus пересчитывает флаг approved из approval_count.
// Чистая функция без обращений к хранилищу, идемпотентна.
// Единственный источник правила approved = (approval_count >= minApprovals)
func (s *ReviewService) UpdateApprovalStatus(review entity.Review) entity.Review {
	review.Approved = review.ApprovalCount >= s.minApprovals
	return review
}

// publishReviewEvent отправляет событие об отзыве в Kafka.
// Ошибки Kafka логируются, но не прерывают операцию - отзыв уже сохранён
func (s *ReviewService) publishReviewEvent(ctx context.Context, eventType string, review *entity.Review) {
	event := entity.ReviewEvent{
		EventType:     eventType,
		ReviewID:      review.ID.Hex(),
		PosID:         review.PosID,
		AuthorID:      review.AuthorID,
		ApprovalCount: review.ApprovalCount,
		Approved:      review.Approved,
		Timestamp:     time.Now(),
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal review event")
		return
	}

	// Ключ = ReviewID для партиционирования событий одного отзыва
	if err := s.kafkaProducer.PublishMessage(ctx, event.ReviewID, eventData); err != nil {
		logger.Error().
			Err(err).
			Str("event_type", eventType).
			Str("review_id", event.ReviewID).
			Msg("failed to publish review event")
	}
}
