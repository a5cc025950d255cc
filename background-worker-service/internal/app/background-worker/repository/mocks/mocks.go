package mocks

import (
	"context"

	"campuscoffee/background-worker-service/internal/app/background-worker/entity"

	"github.com/stretchr/testify/mock"
)

// MockStatsRepository - mock для StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetByPosID(ctx context.Context, posID string) (*entity.PosReviewStats, error) {
	args := m.Called(ctx, posID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PosReviewStats), args.Error(1)
}

func (m *MockStatsRepository) GetAll(ctx context.Context) ([]entity.PosReviewStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PosReviewStats), args.Error(1)
}

func (m *MockStatsRepository) Save(ctx context.Context, stats *entity.PosReviewStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockStatsRepository) ReplaceAll(ctx context.Context, stats []entity.PosReviewStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// MockReviewAggregator - mock для ReviewAggregator
type MockReviewAggregator struct {
	mock.Mock
}

func (m *MockReviewAggregator) AggregateByPos(ctx context.Context) ([]entity.PosReviewStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PosReviewStats), args.Error(1)
}
