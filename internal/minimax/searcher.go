package minimax

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type resultCache interface {
	GetByKey(ctx context.Context, key string) (*entity.Result, error)
	Save(ctx context.Context, key string, result *entity.Result) error
}

// Stats - cache counters of a Searcher.
type Stats struct {
	Hits   int
	Misses int
	Errors int
}

// Searcher runs full-depth searches and memoizes root results in an optional cache.
type Searcher struct {
	logger *slog.Logger
	cache  resultCache
	stats  Stats
}

// NewSearcher - cache may be nil, in which case every call runs the full search.
func NewSearcher(logger *slog.Logger, cache resultCache) *Searcher {
	return &Searcher{
		logger: logger.With("component", "minimax"),
		cache:  cache,
	}
}

// BestMove - searches to the end of the game for player's optimal move.
func (that *Searcher) BestMove(ctx context.Context, board entity.Board, player entity.Cell) (entity.Result, error) {
	log := that.logger.With("method", "BestMove", "board", board.Key(), "player", player.String())

	depth := len(board.EmptyCells())
	if depth == 0 || board.IsGameOver() {
		return entity.Result{}, apperror.ErrNoMoves
	}

	key := CacheKey(board, depth, player)

	if cached, ok := that.lookup(ctx, log, key); ok {
		return *cached, nil
	}

	result := Minimax(board, depth, player)
	if result.IsLeaf() {
		return entity.Result{}, fmt.Errorf("%w: depth %d", apperror.ErrNoMoves, depth)
	}

	log.Debug("search finished", "row", result.Move.Row, "col", result.Move.Col, "score", int(result.Score))

	if that.cache != nil {
		if err := that.cache.Save(ctx, key, &result); err != nil {
			that.stats.Errors++
			log.Warn("failed to cache search result", "error", err)
		}
	}

	return result, nil
}

// Stats - returns the counters collected so far.
func (that *Searcher) Stats() Stats {
	return that.stats
}

func (that *Searcher) lookup(ctx context.Context, log *slog.Logger, key string) (*entity.Result, bool) {
	if that.cache == nil {
		return nil, false
	}

	cached, err := that.cache.GetByKey(ctx, key)
	switch {
	case err == nil && cached != nil && !cached.IsLeaf():
		that.stats.Hits++
		log.Debug("search result served from cache")

		return cached, true
	case err == nil, errors.Is(err, apperror.ErrCacheMiss):
		that.stats.Misses++
	default:
		that.stats.Errors++
		log.Warn("failed to read search cache, searching instead", "error", err)
	}

	return nil, false
}

// CacheKey - identifies a search by position, depth and side to move.
func CacheKey(board entity.Board, depth int, player entity.Cell) string {
	return fmt.Sprintf("%s:%d:%s", board.Key(), depth, player)
}
