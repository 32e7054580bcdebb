package repository

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type memorySearchCache struct {
	results *lru.Cache[string, entity.Result]
}

// NewMemorySearchCache - in-process cache holding at most size results.
func NewMemorySearchCache(size int) (SearchCache, error) {
	results, err := lru.New[string, entity.Result](size)
	if err != nil {
		return nil, fmt.Errorf("could not create lru cache: %w", err)
	}

	return &memorySearchCache{results: results}, nil
}

func (that *memorySearchCache) Save(_ context.Context, key string, result *entity.Result) error {
	that.results.Add(key, copyResult(result))

	return nil
}

func (that *memorySearchCache) GetByKey(_ context.Context, key string) (*entity.Result, error) {
	result, ok := that.results.Get(key)
	if !ok {
		return nil, apperror.ErrCacheMiss
	}

	copied := copyResult(&result)

	return &copied, nil
}

func (that *memorySearchCache) DeleteByKey(_ context.Context, key string) error {
	if !that.results.Remove(key) {
		return apperror.ErrCacheMiss
	}

	return nil
}

// callers must not be able to change a cached move through the returned pointer.
func copyResult(result *entity.Result) entity.Result {
	copied := entity.Result{Score: result.Score}
	if result.Move != nil {
		move := *result.Move
		copied.Move = &move
	}

	return copied
}
