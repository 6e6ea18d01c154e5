package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-view/internal"
	"github.com/rocketscienceinc/tictactoe-view/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-view/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and opens the field window.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := checkRunErr(logger, app.RunApp(logger, conf)); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// checkRunErr lets a build without window support finish cleanly; every
// other error stays fatal.
func checkRunErr(logger *slog.Logger, err error) error {
	if errors.Is(err, apperror.ErrGUIUnavailable) {
		logger.Warn("Exiting without a window", "hint", "go run -tags ebiten .")
		return nil
	}

	return err
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
