package service

import (
	"context"

	"campuscoffee/reviews-service/internal/app/reviews/entity"
)

type ReviewServiceInterface interface {
	Upsert(ctx context.Context, review *entity.Review) (*entity.Review, error)
	Approve(ctx context.Context, review *entity.Review, approverID string) (*entity.Review, error)
	Filter(ctx context.Context, posID string, approved bool) ([]entity.Review, error)
	GetReview(ctx context.Context, reviewID string) (*entity.Review, error)
	UpdateApprovalStatus(review entity.Review) entity.Review
}
