package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	flags := flag.NewFlagSet("tictactoe", flag.ExitOnError)
	configPath := flags.String("config", "config.yml", "path to the config file")

	header := "Play tic-tac-toe against the computer."
	flags.Usage = cleanenv.FUsage(flags.Output(), &config.Config{}, &header, flags.Usage)

	// ExitOnError: parse errors never get here
	_ = flags.Parse(os.Args[1:])

	return config.MustLoad(*configPath)
}

// initialize logger. Logs go to stderr or to the configured file, stdout belongs to the board.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	default:
		level = slog.LevelError
	}

	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
	)

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeFn = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeFn
}
