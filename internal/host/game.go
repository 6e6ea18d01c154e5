//go:build ebiten

package host

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/tictactoe-view/internal/geometry"
	"github.com/rocketscienceinc/tictactoe-view/internal/style"
)

var backgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

var keyCommands = []struct {
	keys []ebiten.Key
	cmd  Command
}{
	{[]ebiten.Key{ebiten.KeyArrowUp}, CommandFocusUp},
	{[]ebiten.Key{ebiten.KeyArrowDown}, CommandFocusDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft}, CommandFocusLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight}, CommandFocusRight},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, CommandClick},
	{[]ebiten.Key{ebiten.KeyG}, CommandRegenerate},
	{[]ebiten.Key{ebiten.KeyR}, CommandReset},
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, CommandQuit},
}

// game adapts the field view to the ebiten.Game interface.
type game struct {
	ctx        context.Context
	controller *controller
	redraw     *redrawer
	view       fieldView
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, session session, view fieldView, window Window) error {
	g := &game{
		ctx:        ctx,
		controller: newController(logger, session, view),
		redraw:     newRedrawer(session, view),
		view:       view,
	}

	width, height := initialSize(view)

	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	g.controller.logger.Info("Opening window", "width", width, "height", height)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}

	return nil
}

func (that *game) Update() error {
	if that.ctx.Err() != nil {
		return ebiten.Termination
	}

	that.updatePointer()

	for _, binding := range keyCommands {
		if !anyJustPressed(binding.keys) {
			continue
		}

		if that.controller.apply(binding.cmd) {
			return ebiten.Termination
		}
	}

	return nil
}

func (that *game) updatePointer() {
	x, y := ebiten.CursorPosition()

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		that.view.PointerDown(float64(x), float64(y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		that.view.PointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		that.view.PointerMove(float64(x), float64(y))
	}
}

func (that *game) Draw(screen *ebiten.Image) {
	status, stale := that.redraw.next()
	if !stale {
		return
	}

	screen.Fill(backgroundColor)
	that.view.Draw(&canvas{dst: screen})
	text.Draw(screen, status, basicfont.Face7x13, 4, 13, color.Black)
}

func (that *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	that.controller.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}

	return false
}

// canvas paints view output onto an ebiten image.
type canvas struct {
	dst *ebiten.Image
}

func (that *canvas) DrawLine(x0, y0, x1, y1 float64, stroke style.Stroke) {
	vector.StrokeLine(that.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(stroke.Width), stroke.Color, true)
}

func (that *canvas) DrawCircle(cx, cy, radius float64, stroke style.Stroke) {
	vector.StrokeCircle(that.dst, float32(cx), float32(cy), float32(radius), float32(stroke.Width), stroke.Color, true)
}

func (that *canvas) FillRect(rect geometry.Rect, fill color.RGBA) {
	vector.DrawFilledRect(that.dst, float32(rect.Left), float32(rect.Top), float32(rect.Width()), float32(rect.Height()), fill, true)
}
