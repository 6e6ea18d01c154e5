package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-view/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-view/internal/config"
	"github.com/rocketscienceinc/tictactoe-view/internal/host"
	"github.com/rocketscienceinc/tictactoe-view/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-view/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-view/internal/view"
)

// RunApp - runs the application.
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

	st, err := conf.Style.Build(conf.View.Density)
	if err != nil {
		return fmt.Errorf("invalid style config: %w", err)
	}

	fieldView := view.New(logger, st, view.Options{
		DesiredCellSize: conf.View.DesiredCellSizePx(),
		MinWidth:        conf.View.MinWidth,
		MinHeight:       conf.View.MinHeight,
		Insets:          conf.View.Padding.Insets(),
	})

	session, err := usecase.NewSession(logger, fieldView, tictactoe.NewTurnController(), usecase.FieldRange{
		Rows:    conf.Field.Rows,
		Columns: conf.Field.Columns,
		Min:     conf.Field.MinSize,
		Max:     conf.Field.MaxSize,
	}, newRand(conf.Field.Seed))
	if err != nil {
		return fmt.Errorf("invalid field config: %w", err)
	}

	if err = session.Start(); err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}

	err = host.Run(ctx, logger, session, fieldView, host.Window{Title: conf.Window.Title})
	if errors.Is(err, apperror.ErrGUIUnavailable) {
		log.Info("Final state", "status", session.Status(), "field", fieldView.Field().String())
		return err
	}

	if err != nil {
		return fmt.Errorf("window error: %w", err)
	}

	log.Info("Window closed, shutting down")

	return nil
}

// newRand seeds from the clock when seed is zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32)))
}
