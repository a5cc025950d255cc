package infrastructure

import (
	"context"
	"errors"

	"campuscoffee/reviews-service/internal/app/reviews/entity"
)

var (
	// Ошибки клиентов внешних сервисов для обработки в service layer
	ErrUserNotFound = errors.New("user not found")
	ErrPosNotFound  = errors.New("pos not found")
)

// MessagePublisher интерфейс для отправки сообщений в очередь (Kafka)
// Используется для dependency injection и упрощения тестирования
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}

// UserServiceClient - доступ к пользователям через Auth Service
type UserServiceClient interface {
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

// PosServiceClient - доступ к точкам продаж через POS Service
type PosServiceClient interface {
	GetPos(ctx context.Context, posID string) (*entity.Pos, error)
}
