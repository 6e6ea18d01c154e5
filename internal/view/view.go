package view

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-view/internal/entity"
	"github.com/rocketscienceinc/tictactoe-view/internal/geometry"
	"github.com/rocketscienceinc/tictactoe-view/internal/style"
)

const noFocus = -1

// CellActionListener is invoked when the user activates an in-range cell.
type CellActionListener func(row, column int, field *entity.Field)

type Options struct {
	DesiredCellSize int
	MinWidth        int
	MinHeight       int
	Insets          geometry.Insets
}

// View renders a Field and turns pointer and key input into cell actions.
// It is not safe for concurrent use; the host drives it from one goroutine.
type View struct {
	logger *slog.Logger
	style  style.Style
	opts   Options

	width, height int
	layout        geometry.Layout

	field    *entity.Field
	listener *entity.ListenerFunc
	attached bool
	dirty    bool

	focusRow, focusColumn int

	cellListener CellActionListener
}

func New(logger *slog.Logger, st style.Style, opts Options) *View {
	that := &View{
		logger:      logger.With("component", "view"),
		style:       st,
		opts:        opts,
		focusRow:    noFocus,
		focusColumn: noFocus,
	}

	// a changed field only needs a redraw
	that.listener = entity.NewListener(func(*entity.Field) {
		that.Invalidate()
	})

	return that
}

func (that *View) Field() *entity.Field {
	return that.field
}

// SetField swaps the displayed field. The view stops listening to the old
// one so it does not keep the view alive after the swap.
func (that *View) SetField(field *entity.Field) {
	if that.field != nil {
		that.field.RemoveListener(that.listener)
	}

	that.field = field

	if that.field != nil {
		if that.attached {
			that.field.AddListener(that.listener)
		}

		rows, columns := field.Dimensions()
		that.logger.Debug("field attached", "rows", rows, "columns", columns)
	}

	that.clearFocus()
	that.updateLayout()
	that.Invalidate()
}

func (that *View) SetCellActionListener(listener CellActionListener) {
	that.cellListener = listener
}

// Attach starts listening to the current field.
func (that *View) Attach() {
	that.attached = true

	if that.field != nil {
		that.field.AddListener(that.listener)
	}

	that.Invalidate()
}

// Detach stops listening to the current field.
func (that *View) Detach() {
	that.attached = false

	if that.field != nil {
		that.field.RemoveListener(that.listener)
	}
}

func (that *View) Attached() bool {
	return that.attached
}

// Measure returns the size the view wants within the host's constraints.
func (that *View) Measure(widthSpec, heightSpec geometry.MeasureSpec) (int, int) {
	minWidth := that.opts.MinWidth + that.opts.Insets.Horizontal()
	minHeight := that.opts.MinHeight + that.opts.Insets.Vertical()

	rows, columns := 0, 0
	if that.field != nil {
		rows, columns = that.field.Dimensions()
	}

	width, height := geometry.PreferredSize(rows, columns, that.opts.DesiredCellSize, minWidth, minHeight, that.opts.Insets)

	return geometry.ResolveSize(width, widthSpec), geometry.ResolveSize(height, heightSpec)
}

// Resize records the viewport granted by the host.
func (that *View) Resize(width, height int) {
	if width == that.width && height == that.height {
		return
	}

	that.width, that.height = width, height
	that.updateLayout()
	that.Invalidate()
}

func (that *View) Size() (int, int) {
	return that.width, that.height
}

func (that *View) Layout() geometry.Layout {
	return that.layout
}

func (that *View) updateLayout() {
	if that.field == nil {
		that.layout = geometry.Layout{}
		return
	}

	rows, columns := that.field.Dimensions()
	that.layout = geometry.NewLayout(that.width, that.height, that.opts.Insets, rows, columns)
}

// Invalidate requests a redraw on the next frame.
func (that *View) Invalidate() {
	that.dirty = true
}

func (that *View) Dirty() bool {
	return that.dirty
}
