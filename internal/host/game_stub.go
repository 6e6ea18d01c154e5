//go:build !ebiten

package host

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-view/internal/apperror"
)

// Run reports that this binary was built without window support.
func Run(_ context.Context, logger *slog.Logger, _ session, view fieldView, window Window) error {
	width, height := initialSize(view)
	logger.With("component", "host").Warn("Window support is not compiled in, rebuild with -tags ebiten",
		"title", window.Title, "width", width, "height", height)

	return apperror.ErrGUIUnavailable
}
