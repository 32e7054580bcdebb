package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const searchKeyPrefix = "minimax:"

type SearchCache interface {
	GetByKey(ctx context.Context, key string) (*entity.Result, error)
	Save(ctx context.Context, key string, result *entity.Result) error
	DeleteByKey(ctx context.Context, key string) error
}

type dbSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache - Redis-backed search results. A zero ttl keeps entries forever.
func NewSearchCache(client *redis.Client, ttl time.Duration) SearchCache {
	return &dbSearchCache{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSearchCache) Save(ctx context.Context, key string, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal search result: %w", err)
	}

	err = that.client.Set(ctx, searchKeyPrefix+key, resultJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set search result: %w", err)
	}

	return nil
}

func (that *dbSearchCache) GetByKey(ctx context.Context, key string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, searchKeyPrefix+key).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrCacheMiss
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get search result: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search result: %w", err)
	}

	return &result, nil
}

func (that *dbSearchCache) DeleteByKey(ctx context.Context, key string) error {
	deleted, err := that.client.Del(ctx, searchKeyPrefix+key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete search result: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrCacheMiss
	}

	return nil
}
