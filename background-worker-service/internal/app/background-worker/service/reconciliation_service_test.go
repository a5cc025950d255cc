package service

import (
	"context"
	"errors"
	"testing"

	"campuscoffee/background-worker-service/internal/app/background-worker/entity"
	"campuscoffee/background-worker-service/internal/app/background-worker/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReconcile_Success(t *testing.T) {
	mockAggregator := new(mocks.MockReviewAggregator)
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewReconciliationService(mockAggregator, mockRepo)

	aggregated := []entity.PosReviewStats{
		{PosID: uuid.NewString(), TotalReviews: 7, ApprovedReviews: 2},
		{PosID: uuid.NewString(), TotalReviews: 1, ApprovedReviews: 0},
	}

	mockAggregator.On("AggregateByPos", mock.Anything).Return(aggregated, nil)
	mockRepo.On("ReplaceAll", mock.Anything, aggregated).Return(nil)

	// Act
	err := svc.Reconcile(context.Background())

	// Assert
	assert.NoError(t, err)
	mockAggregator.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestReconcile_EmptySource(t *testing.T) {
	mockAggregator := new(mocks.MockReviewAggregator)
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewReconciliationService(mockAggregator, mockRepo)

	// Отзывов нет - таблица статистики очищается
	mockAggregator.On("AggregateByPos", mock.Anything).Return([]entity.PosReviewStats{}, nil)
	mockRepo.On("ReplaceAll", mock.Anything, []entity.PosReviewStats{}).Return(nil)

	// Act
	err := svc.Reconcile(context.Background())

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestReconcile_AggregationError(t *testing.T) {
	mockAggregator := new(mocks.MockReviewAggregator)
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewReconciliationService(mockAggregator, mockRepo)

	mockAggregator.On("AggregateByPos", mock.Anything).Return(nil, errors.New("mongo unavailable"))

	// Act
	err := svc.Reconcile(context.Background())

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to aggregate reviews")
	mockRepo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestReconcile_ReplaceError(t *testing.T) {
	mockAggregator := new(mocks.MockReviewAggregator)
	mockRepo := new(mocks.MockStatsRepository)
	svc := NewReconciliationService(mockAggregator, mockRepo)

	aggregated := []entity.PosReviewStats{
		{PosID: uuid.NewString(), TotalReviews: 7, ApprovedReviews: 2},
	}

	mockAggregator.On("AggregateByPos", mock.Anything).Return(aggregated, nil)
	mockRepo.On("ReplaceAll", mock.Anything, aggregated).Return(errors.New("connection refused"))

	// Act
	err := svc.Reconcile(context.Background())

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to replace stats")
}
