package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campuscoffee/pkg/metrics"
	"campuscoffee/pos-service/internal/app/pos/entity"

	"github.com/redis/go-redis/v9"
)

const (
	serviceName     = "pos-service"
	posListCacheKey = "pos:all"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

// NewRedisClientFromExisting оборачивает уже созданное соединение (для тестов)
func NewRedisClientFromExisting(client *redis.Client) *RedisClient {
	return &RedisClient{client: client}
}

func (r *RedisClient) SetPosList(ctx context.Context, pos []entity.Pos, ttl time.Duration) error {
	data, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("failed to marshal pos list: %w", err)
	}

	if err := r.client.Set(ctx, posListCacheKey, data, ttl).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpSet)
		return fmt.Errorf("failed to set pos list in cache: %w", err)
	}

	return nil
}

func (r *RedisClient) GetPosList(ctx context.Context) ([]entity.Pos, error) {
	data, err := r.client.Get(ctx, posListCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.RecordCacheMiss(serviceName, "pos")
			return nil, nil
		}
		metrics.RecordRedisError(serviceName, metrics.RedisOpGet)
		return nil, fmt.Errorf("failed to get pos list from cache: %w", err)
	}

	var pos []entity.Pos
	if err := json.Unmarshal(data, &pos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pos list: %w", err)
	}

	metrics.RecordCacheHit(serviceName, "pos")

	return pos, nil
}

func (r *RedisClient) DeletePosList(ctx context.Context) error {
	if err := r.client.Del(ctx, posListCacheKey).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpDel)
		return fmt.Errorf("failed to delete pos list from cache: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
