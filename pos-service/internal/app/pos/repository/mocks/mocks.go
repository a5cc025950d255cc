package mocks

import (
	"context"
	"time"

	"campuscoffee/pos-service/internal/app/pos/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPosRepository мок репозитория точек продаж для unit тестов
type MockPosRepository struct {
	mock.Mock
}

func (m *MockPosRepository) Create(ctx context.Context, pos *entity.Pos) error {
	args := m.Called(ctx, pos)
	return args.Error(0)
}

func (m *MockPosRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Pos, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pos), args.Error(1)
}

func (m *MockPosRepository) GetAll(ctx context.Context) ([]entity.Pos, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Pos), args.Error(1)
}

func (m *MockPosRepository) Update(ctx context.Context, pos *entity.Pos) error {
	args := m.Called(ctx, pos)
	return args.Error(0)
}

func (m *MockPosRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPosCache мок Redis кеша
type MockPosCache struct {
	mock.Mock
}

func (m *MockPosCache) SetPosList(ctx context.Context, pos []entity.Pos, ttl time.Duration) error {
	args := m.Called(ctx, pos, ttl)
	return args.Error(0)
}

func (m *MockPosCache) GetPosList(ctx context.Context) ([]entity.Pos, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Pos), args.Error(1)
}

func (m *MockPosCache) DeletePosList(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPosCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockMessagePublisher мок Kafka producer
type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
