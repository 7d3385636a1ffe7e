package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"glucomate/internal/models"

	"github.com/redis/go-redis/v9"
)

const summaryTTL = 5 * time.Minute

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func summaryKey(userID uint, day string) string {
	return fmt.Sprintf("summary:%d:%s", userID, day)
}

// StoreDailySummary caches one user's nutrition totals for a calendar
// day. Short TTL: the cache only smooths repeated dashboard reads.
func (r *RedisClient) StoreDailySummary(userID uint, day string, summary *models.NutritionSummary) error {
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	return r.client.Set(r.ctx, summaryKey(userID, day), jsonData, summaryTTL).Err()
}

// GetDailySummary returns the cached totals, or (nil, nil) on a miss.
func (r *RedisClient) GetDailySummary(userID uint, day string) (*models.NutritionSummary, error) {
	jsonData, err := r.client.Get(r.ctx, summaryKey(userID, day)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	var summary models.NutritionSummary
	if err := json.Unmarshal([]byte(jsonData), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &summary, nil
}

// InvalidateDailySummary drops the cached totals after a meal write.
func (r *RedisClient) InvalidateDailySummary(userID uint, day string) error {
	return r.client.Del(r.ctx, summaryKey(userID, day)).Err()
}
