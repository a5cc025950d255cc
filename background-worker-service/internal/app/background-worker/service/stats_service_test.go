package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"campuscoffee/background-worker-service/internal/app/background-worker/entity"
	"campuscoffee/background-worker-service/internal/app/background-worker/repository"
	"campuscoffee/background-worker-service/internal/app/background-worker/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReviewEvent(eventType, posID string) *entity.ReviewEvent {
	return &entity.ReviewEvent{
		EventType: eventType,
		ReviewID:  "68b1c2d3e4f5a6b7c8d9e0f1",
		PosID:     posID,
		AuthorID:  uuid.NewString(),
		Timestamp: time.Now(),
	}
}

func TestProcessReviewEvent_Created_NewPos(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewStatsService(mockRepo)
	posID := uuid.NewString()

	// Статистики по точке ещё нет - счёт начинается с нуля
	mockRepo.On("GetByPosID", mock.Anything, posID).Return(nil, repository.ErrStatsNotFound)
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *entity.PosReviewStats) bool {
		return s.PosID == posID && s.TotalReviews == 1 && s.ApprovedReviews == 0
	})).Return(nil)

	// Act
	err := svc.ProcessReviewEvent(context.Background(), newReviewEvent(entity.EventReviewCreated, posID))

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProcessReviewEvent_Created_ExistingPos(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewStatsService(mockRepo)
	posID := uuid.NewString()

	mockRepo.On("GetByPosID", mock.Anything, posID).Return(&entity.PosReviewStats{
		PosID:           posID,
		TotalReviews:    3,
		ApprovedReviews: 1,
	}, nil)
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *entity.PosReviewStats) bool {
		return s.TotalReviews == 4 && s.ApprovedReviews == 1
	})).Return(nil)

	// Act
	err := svc.ProcessReviewEvent(context.Background(), newReviewEvent(entity.EventReviewCreated, posID))

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProcessReviewEvent_Approved(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewStatsService(mockRepo)
	posID := uuid.NewString()

	mockRepo.On("GetByPosID", mock.Anything, posID).Return(&entity.PosReviewStats{
		PosID:           posID,
		TotalReviews:    5,
		ApprovedReviews: 2,
	}, nil)
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *entity.PosReviewStats) bool {
		return s.TotalReviews == 5 && s.ApprovedReviews == 3
	})).Return(nil)

	// Act
	err := svc.ProcessReviewEvent(context.Background(), newReviewEvent(entity.EventReviewApproved, posID))

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProcessReviewEvent_ApprovalAdded_NoChanges(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewStatsService(mockRepo)

	// Одобрение ниже порога не меняет счётчики
	err := svc.ProcessReviewEvent(context.Background(), newReviewEvent(entity.EventReviewApprovalAdded, uuid.NewString()))

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "GetByPosID", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessReviewEvent_UnknownType_Skipped(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewStatsService(mockRepo)

	// Неизвестный тип не должен блокировать обработку партиции
	err := svc.ProcessReviewEvent(context.Background(), newReviewEvent("REVIEW_EXPLODED", uuid.NewString()))

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessReviewEvent_EmptyPosID(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewStatsService(mockRepo)

	err := svc.ProcessReviewEvent(context.Background(), newReviewEvent(entity.EventReviewCreated, ""))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty pos_id")
	mockRepo.AssertNotCalled(t, "GetByPosID", mock.Anything, mock.Anything)
}

func TestProcessReviewEvent_RepoError(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewStatsService(mockRepo)
	posID := uuid.NewString()

	mockRepo.On("GetByPosID", mock.Anything, posID).Return(nil, errors.New("connection refused"))

	// Act
	err := svc.ProcessReviewEvent(context.Background(), newReviewEvent(entity.EventReviewCreated, posID))

	// Assert
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessReviewEvent_SaveError(t *testing.T) {
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewStatsService(mockRepo)
	posID := uuid.NewString()

	mockRepo.On("GetByPosID", mock.Anything, posID).Return(nil, repository.ErrStatsNotFound)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	// Act
	err := svc.ProcessReviewEvent(context.Background(), newReviewEvent(entity.EventReviewCreated, posID))

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save stats")
}
