package service

import (
	"context"

	"campuscoffee/pos-service/internal/app/pos/entity"

	"github.com/google/uuid"
)

// PosServiceInterface интерфейс бизнес-логики точек продаж
type PosServiceInterface interface {
	CreatePos(ctx context.Context, req *entity.CreatePosRequest) (*entity.Pos, error)
	GetPos(ctx context.Context, id uuid.UUID) (*entity.Pos, error)
	GetAllPos(ctx context.Context) ([]entity.Pos, error)
	UpdatePos(ctx context.Context, id uuid.UUID, req *entity.UpdatePosRequest) (*entity.Pos, error)
	DeletePos(ctx context.Context, id uuid.UUID) error
}
