package repository

import (
	"context"
	"errors"

	"campuscoffee/pos-service/internal/app/pos/entity"

	"github.com/google/uuid"
)

var (
	ErrPosNotFound = errors.New("pos not found")
)

type PosRepository interface {
	Create(ctx context.Context, pos *entity.Pos) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Pos, error)
	GetAll(ctx context.Context) ([]entity.Pos, error)
	Update(ctx context.Context, pos *entity.Pos) error
	Delete(ctx context.Context, id uuid.UUID) error
}
