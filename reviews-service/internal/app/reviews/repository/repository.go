package repository

import (
	"context"
	"errors"

	"campuscoffee/reviews-service/internal/app/reviews/entity"
)

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewRepository определяет методы для работы с отзывами в MongoDB.
// Upsert назначает идентификатор при вставке; конфликтующие записи по одному
// _id сериализуются на уровне документа MongoDB.
type ReviewRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	Upsert(ctx context.Context, review *entity.Review) (*entity.Review, error)
	FilterByPos(ctx context.Context, posID string, approved bool) ([]entity.Review, error)
	FilterByPosAuthor(ctx context.Context, posID string, authorID string) ([]entity.Review, error)
}
