package service

import (
	"context"

	"campuscoffee/background-worker-service/internal/app/background-worker/entity"
)

// StatsServiceInterface обрабатывает события отзывов из Kafka
type StatsServiceInterface interface {
	ProcessReviewEvent(ctx context.Context, event *entity.ReviewEvent) error
}

// ReconciliationServiceInterface пересчитывает статистику по первичным данным
type ReconciliationServiceInterface interface {
	Reconcile(ctx context.Context) error
}
