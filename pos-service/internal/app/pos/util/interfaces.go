package util

import (
	"context"
	"time"

	"campuscoffee/pos-service/internal/app/pos/entity"
)

// PosCache интерфейс для работы с Redis кешем списка точек продаж
// Используется для dependency injection и упрощения тестирования
type PosCache interface {
	SetPosList(ctx context.Context, pos []entity.Pos, ttl time.Duration) error
	GetPosList(ctx context.Context) ([]entity.Pos, error)
	DeletePosList(ctx context.Context) error
	Close() error
}

// MessagePublisher интерфейс для отправки сообщений в очередь (Kafka)
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}
