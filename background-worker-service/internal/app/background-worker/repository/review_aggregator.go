package repository

import (
	"context"
	"fmt"

	"campuscoffee/background-worker-service/internal/app/background-worker/entity"
	"campuscoffee/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoReviewAggregator struct {
	collection *mongo.Collection
}

// NewMongoReviewAggregator читает первичные данные отзывов напрямую
// из коллекции Reviews Service. Worker подключается read-only:
// никаких записей в чужое хранилище.
func NewMongoReviewAggregator(db *mongo.Database, collectionName string) ReviewAggregator {
	return &mongoReviewAggregator{
		collection: db.Collection(collectionName),
	}
}

type posAggregateRow struct {
	PosID           string `bson:"_id"`
	TotalReviews    int    `bson:"total_reviews"`
	ApprovedReviews int    `bson:"approved_reviews"`
}

// AggregateByPos группирует отзывы по pos_id и считает общее число
// и число одобренных
func (a *mongoReviewAggregator) AggregateByPos(ctx context.Context) ([]entity.PosReviewStats, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "reviews")
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$pos_id"},
			{Key: "total_reviews", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "approved_reviews", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$approved", 1, 0}},
			}}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := a.collection.Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []posAggregateRow
	if err := cursor.All(ctx, &rows); err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to decode aggregation result: %w", err)
	}

	stats := make([]entity.PosReviewStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.PosReviewStats{
			PosID:           row.PosID,
			TotalReviews:    row.TotalReviews,
			ApprovedReviews: row.ApprovedReviews,
		})
	}

	return stats, nil
}
