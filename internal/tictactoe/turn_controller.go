package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-view/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-view/internal/entity"
)

// TurnController alternates the two players on a field. It keeps no board
// state of its own; the field is the single source of truth.
type TurnController struct {
	turn entity.Cell
}

func NewTurnController() *TurnController {
	return &TurnController{turn: entity.CellPlayer1}
}

// Turn returns the mark the next move will place.
func (that *TurnController) Turn() entity.Cell {
	return that.turn
}

func (that *TurnController) Reset() {
	that.turn = entity.CellPlayer1
}

// MakeTurn places the current mark at (row, column) and passes the turn.
func (that *TurnController) MakeTurn(field *entity.Field, row, column int) error {
	if err := validateMove(field, row, column); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	field.SetCell(row, column, that.turn)
	that.turn = that.turn.Opponent()

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(field *entity.Field, row, column int) error {
	if field == nil {
		return apperror.ErrNoField
	}

	if !field.Contains(row, column) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, column)
	}

	if field.Cell(row, column) != entity.CellEmpty {
		return apperror.ErrCellOccupied
	}

	return nil
}
