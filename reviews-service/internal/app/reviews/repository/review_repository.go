package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campuscoffee/pkg/logger"
	"campuscoffee/reviews-service/internal/app/reviews/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository создает новый репозиторий отзывов.
// Создает уникальный составной индекс (pos_id, author_id) - страховка
// инварианта "один отзыв автора на точку продаж" на уровне хранилища,
// и индекс по pos_id для выборок.
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	collection := db.Collection("reviews")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uniquePairIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "pos_id", Value: 1},
			{Key: "author_id", Value: 1},
		},
		Options: options.Index().SetName("pos_author_unique_idx").SetUnique(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, uniquePairIndex); err != nil {
		// Индекс может уже существовать - не прерываем работу
		logger.Warn().Err(err).Msg("failed to create unique index on (pos_id, author_id)")
	}

	posIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "pos_id", Value: 1},
			{Key: "approved", Value: 1},
		},
		Options: options.Index().SetName("pos_approved_idx"),
	}

	if _, err := collection.Indexes().CreateOne(ctx, posIndex); err != nil {
		logger.Warn().Err(err).Msg("failed to create index on (pos_id, approved)")
	}

	return &reviewRepository{
		collection: collection,
	}
}

// GetByID получает отзыв по ID
func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID: %w", err)
	}

	filter := bson.M{"_id": objectID}

	var review entity.Review
	err = r.collection.FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &review, nil
}

// Upsert сохраняет отзыв: вставка с назначением ID при нулевом ObjectID,
// полная перезапись документа при существующем ID
func (r *reviewRepository) Upsert(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	now := time.Now()
	review.UpdatedAt = now

	if review.ID.IsZero() {
		review.CreatedAt = now

		result, err := r.collection.InsertOne(ctx, review)
		if err != nil {
			return nil, fmt.Errorf("failed to insert review: %w", err)
		}

		// Устанавливаем ID из результата вставки
		if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
			review.ID = oid
		}

		return review, nil
	}

	filter := bson.M{"_id": review.ID}

	result, err := r.collection.ReplaceOne(ctx, filter, review)
	if err != nil {
		return nil, fmt.Errorf("failed to replace review: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, ErrReviewNotFound
	}

	return review, nil
}

// FilterByPos получает отзывы точки продаж с заданным статусом одобрения.
// Использует индекс pos_approved_idx
func (r *reviewRepository) FilterByPos(ctx context.Context, posID string, approved bool) ([]entity.Review, error) {
	filter := bson.M{"pos_id": posID, "approved": approved}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []entity.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}

// FilterByPosAuthor получает отзывы автора о конкретной точке продаж.
// Используется сервисом для проверки дубликатов перед созданием
func (r *reviewRepository) FilterByPosAuthor(ctx context.Context, posID string, authorID string) ([]entity.Review, error) {
	filter := bson.M{"pos_id": posID, "author_id": authorID}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []entity.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}
