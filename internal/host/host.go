// Package host runs the field view inside a desktop window. The window itself
// needs the ebiten build tag; command dispatch is shared by both builds.
package host

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-view/internal/geometry"
	"github.com/rocketscienceinc/tictactoe-view/internal/view"
)

type Window struct {
	Title string
}

//go:generate mockery --name session --with-expecter --output ../../mocks/host --outpkg host --filename mock_session.go --structname Mocksession
type session interface {
	Regenerate() error
	Reset() error
	Status() string
}

type fieldView interface {
	Measure(widthSpec, heightSpec geometry.MeasureSpec) (int, int)
	Resize(width, height int)
	Size() (int, int)
	Dirty() bool
	Draw(canvas view.Canvas)
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp() bool
	MoveFocus(dRow, dColumn int)
	PerformClick() bool
}

// Command is a keyboard action understood by the host.
type Command int

const (
	CommandNone Command = iota
	CommandFocusUp
	CommandFocusDown
	CommandFocusLeft
	CommandFocusRight
	CommandClick
	CommandRegenerate
	CommandReset
	CommandQuit
)

func (that Command) String() string {
	switch that {
	case CommandFocusUp:
		return "focus-up"
	case CommandFocusDown:
		return "focus-down"
	case CommandFocusLeft:
		return "focus-left"
	case CommandFocusRight:
		return "focus-right"
	case CommandClick:
		return "click"
	case CommandRegenerate:
		return "regenerate"
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

type controller struct {
	logger  *slog.Logger
	session session
	view    fieldView
}

func newController(logger *slog.Logger, session session, view fieldView) *controller {
	return &controller{
		logger:  logger.With("component", "host"),
		session: session,
		view:    view,
	}
}

// apply executes cmd and reports whether the window should close.
func (that *controller) apply(cmd Command) bool {
	if cmd != CommandNone {
		that.logger.Debug("Command", "command", cmd.String())
	}

	switch cmd {
	case CommandFocusUp:
		that.view.MoveFocus(-1, 0)
	case CommandFocusDown:
		that.view.MoveFocus(1, 0)
	case CommandFocusLeft:
		that.view.MoveFocus(0, -1)
	case CommandFocusRight:
		that.view.MoveFocus(0, 1)
	case CommandClick:
		that.view.PerformClick()
	case CommandRegenerate:
		if err := that.session.Regenerate(); err != nil {
			that.logger.Error("could not regenerate field", "error", err)
		}
	case CommandReset:
		if err := that.session.Reset(); err != nil {
			that.logger.Error("could not reset field", "error", err)
		}
	case CommandQuit:
		that.logger.Info("Quit requested")
		return true
	case CommandNone:
	}

	return false
}

// initialSize is the window size the view asks for when nothing constrains it.
func initialSize(view fieldView) (int, int) {
	return view.Measure(geometry.UnspecifiedSpec(), geometry.UnspecifiedSpec())
}

// redrawer decides when the window contents are stale. The screen is kept
// between frames, so a frame is painted only after the view was invalidated
// or the status line changed.
type redrawer struct {
	session session
	view    fieldView

	status string
	drawn  bool
}

func newRedrawer(session session, view fieldView) *redrawer {
	return &redrawer{session: session, view: view}
}

// next returns the status line to print and whether this frame must be painted.
func (that *redrawer) next() (string, bool) {
	status := that.session.Status()
	if that.drawn && !that.view.Dirty() && status == that.status {
		return status, false
	}

	that.status, that.drawn = status, true

	return status, true
}

// resize forwards the window size to the view, logging actual changes.
func (that *controller) resize(width, height int) {
	if oldWidth, oldHeight := that.view.Size(); oldWidth == width && oldHeight == height {
		return
	}

	that.logger.Debug("Window resized", "width", width, "height", height)
	that.view.Resize(width, height)
}
