package storage

import (
	"context"
	"time"

	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	allTimeKey   = "dishes:alltime"
	dailyKeyBase = "dishes:daily:"
	dailyTTL     = 7 * 24 * time.Hour
)

type RedisStats struct {
	Client *redis.Client
}

func NewRedisStats(client *redis.Client) *RedisStats {
	return &RedisStats{Client: client}
}

func DailyKey(day time.Time) string {
	return dailyKeyBase + day.Format("2006-01-02")
}

// RecordOrder adds one point per ordered item to the daily and all-time boards.
func (s *RedisStats) RecordOrder(ctx context.Context, items []string, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	dailyKey := DailyKey(at)

	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, name := range items {
			pipe.ZIncrBy(ctx, dailyKey, 1, name)
			pipe.ZIncrBy(ctx, allTimeKey, 1, name)
		}
		pipe.Expire(ctx, dailyKey, dailyTTL)
		return nil
	})
	return errors.Wrap(err, "record dish popularity")
}

func (s *RedisStats) TopDishes(ctx context.Context, limit int) ([]domain.DishPopularity, error) {
	return s.top(ctx, allTimeKey, limit)
}

func (s *RedisStats) TopDishesOn(ctx context.Context, day time.Time, limit int) ([]domain.DishPopularity, error) {
	return s.top(ctx, DailyKey(day), limit)
}

func (s *RedisStats) top(ctx context.Context, key string, limit int) ([]domain.DishPopularity, error) {
	if limit <= 0 {
		return []domain.DishPopularity{}, nil
	}
	results, err := s.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}

	top := make([]domain.DishPopularity, 0, len(results))
	for _, result := range results {
		name, ok := result.Member.(string)
		if !ok {
			continue
		}
		top = append(top, domain.DishPopularity{Name: name, Score: result.Score})
	}
	return top, nil
}
