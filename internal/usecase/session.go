package usecase

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-view/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-view/internal/entity"
	"github.com/rocketscienceinc/tictactoe-view/internal/view"
)

type fieldView interface {
	Field() *entity.Field
	SetField(field *entity.Field)
	SetCellActionListener(listener view.CellActionListener)
	Attach()
}

type turnController interface {
	Turn() entity.Cell
	Reset()
	MakeTurn(field *entity.Field, row, column int) error
}

// FieldRange holds the initial field size and the bounds used by Regenerate.
type FieldRange struct {
	Rows    int
	Columns int
	Min     int
	Max     int
}

// Session wires a field, the view displaying it and the turn rules together.
type Session struct {
	logger     *slog.Logger
	view       fieldView
	turns      turnController
	fieldRange FieldRange
	rng        *rand.Rand

	moves    int
	listener *entity.ListenerFunc
}

func NewSession(logger *slog.Logger, view fieldView, turns turnController, fieldRange FieldRange, rng *rand.Rand) (*Session, error) {
	if fieldRange.Min < 1 || fieldRange.Max < fieldRange.Min {
		return nil, fmt.Errorf("%w: [%d, %d]", apperror.ErrInvalidFieldRange, fieldRange.Min, fieldRange.Max)
	}

	that := &Session{
		logger:     logger.With("component", "session"),
		view:       view,
		turns:      turns,
		fieldRange: fieldRange,
		rng:        rng,
	}

	that.listener = entity.NewListener(that.onFieldChanged)

	return that, nil
}

// Start shows the initial field and begins handling cell actions.
func (that *Session) Start() error {
	field, err := entity.NewField(that.fieldRange.Rows, that.fieldRange.Columns)
	if err != nil {
		return fmt.Errorf("failed to create initial field: %w", err)
	}

	that.view.SetCellActionListener(that.onCellAction)
	that.replaceField(field)
	that.view.Attach()

	that.logger.Info("Session started", "rows", that.fieldRange.Rows, "columns", that.fieldRange.Columns)

	return nil
}

// Regenerate replaces the field with one of random dimensions.
func (that *Session) Regenerate() error {
	span := that.fieldRange.Max - that.fieldRange.Min + 1
	rows := that.fieldRange.Min + that.rng.IntN(span)
	columns := that.fieldRange.Min + that.rng.IntN(span)

	field, err := entity.NewField(rows, columns)
	if err != nil {
		return fmt.Errorf("failed to regenerate field: %w", err)
	}

	that.replaceField(field)
	that.logger.Info("Field regenerated", "rows", rows, "columns", columns)

	return nil
}

// Reset clears the board, keeping its dimensions.
func (that *Session) Reset() error {
	current := that.view.Field()
	if current == nil {
		return apperror.ErrNoField
	}

	field, err := entity.NewField(current.Dimensions())
	if err != nil {
		return fmt.Errorf("failed to reset field: %w", err)
	}

	that.replaceField(field)
	that.logger.Info("Field reset")

	return nil
}

func (that *Session) Moves() int {
	return that.moves
}

func (that *Session) Status() string {
	field := that.view.Field()
	if field == nil {
		return "no field"
	}

	rows, columns := field.Dimensions()

	return fmt.Sprintf("next: %s  field: %dx%d  moves: %d", that.turns.Turn(), rows, columns, that.moves)
}

// replaceField moves every listener of the old field to the new one before
// handing it to the view, so nothing keeps observing a discarded board.
func (that *Session) replaceField(field *entity.Field) {
	if old := that.view.Field(); old != nil {
		old.MoveListeners(field)
	}

	field.AddListener(that.listener)
	that.view.SetField(field)

	that.turns.Reset()
	that.moves = 0
}

func (that *Session) onCellAction(row, column int, field *entity.Field) {
	if err := that.turns.MakeTurn(field, row, column); err != nil {
		that.logger.Debug("Turn rejected", "row", row, "column", column, "error", err)
	}
}

func (that *Session) onFieldChanged(field *entity.Field) {
	that.moves++
	that.logger.Debug("Field changed", "field", field.String(), "moves", that.moves)
}
