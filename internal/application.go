package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

var ErrAddrNotFound = errors.New("redis host is empty")

const farewell = "Bye"

// RunApp - runs one game on the process's terminal. SIGINT and SIGTERM end it like end of input does.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return RunGame(ctx, logger, conf, os.Stdin, os.Stdout)
}

// RunGame - wires the search cache, the console and the controller, and plays a single game.
func RunGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	logger = logger.With("session", uuid.NewString())
	log := logger.With("component", "app")

	cache, closeCache, err := newSearchCache(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeCache()

	searcher := minimax.NewSearcher(logger, cache)
	term := console.New(in, out, !conf.NoClear)
	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // opening move only

	controller := tictactoe.NewGameController(logger, searcher, term, rnd, conf.MoveDelay)

	term.Clear()

	if err = controller.Setup(ctx, conf.HumanMark, conf.HumanFirst); err != nil {
		return farewellOrError(term, err)
	}

	outcome, err := controller.Play(ctx)
	if err != nil {
		return farewellOrError(term, err)
	}

	stats := searcher.Stats()
	log.Debug("session finished", "outcome", outcome.String(),
		"cache_hits", stats.Hits, "cache_misses", stats.Misses, "cache_errors", stats.Errors)

	return nil
}

func farewellOrError(term *console.Console, err error) error {
	if errors.Is(err, apperror.ErrAborted) {
		term.Println()
		term.Println(farewell)

		return nil
	}

	return fmt.Errorf("game failed: %w", err)
}

func newSearchCache(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SearchCache, func(), error) {
	noop := func() {}

	switch conf.Cache.Driver {
	case config.CacheDriverNone:
		return nil, noop, nil
	case config.CacheDriverRedis:
		if conf.Redis.Host == "" {
			return nil, noop, ErrAddrNotFound
		}

		redisAddrString := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		log.Info("using redis search cache", "addr", redisAddrString)

		return repository.NewSearchCache(redisStorage.Connection, conf.Cache.TTL), closeStorage, nil
	default:
		cache, err := repository.NewMemorySearchCache(conf.Cache.Size)
		if err != nil {
			return nil, noop, fmt.Errorf("could not create memory search cache: %w", err)
		}

		return cache, noop, nil
	}
}
