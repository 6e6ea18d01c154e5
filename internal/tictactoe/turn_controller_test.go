package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-view/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-view/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newField(t *testing.T) *entity.Field {
	t.Helper()

	field, err := entity.NewField(3, 3)
	require.NoError(t, err)

	return field
}

func TestTurnController_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new controller and an empty field
		controller := NewTurnController()
		field := newField(t)

		// When: two turns are made
		require.NoError(t, controller.MakeTurn(field, 0, 0))
		require.NoError(t, controller.MakeTurn(field, 1, 1))

		// Then: marks alternate and it is player 1's turn again
		assert.Equal(t, entity.CellPlayer1, field.Cell(0, 0))
		assert.Equal(t, entity.CellPlayer2, field.Cell(1, 1))
		assert.Equal(t, entity.CellPlayer1, controller.Turn())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: player 1 has taken the center
		controller := NewTurnController()
		field := newField(t)
		require.NoError(t, controller.MakeTurn(field, 1, 1))

		// When: player 2 tries the same cell
		err := controller.MakeTurn(field, 1, 1)

		// Then: ErrCellOccupied is returned and the turn does not pass
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.CellPlayer2, controller.Turn())
		assert.Equal(t, entity.CellPlayer1, field.Cell(1, 1))
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		controller := NewTurnController()
		field := newField(t)

		assert.ErrorIs(t, controller.MakeTurn(field, 3, 0), apperror.ErrInvalidCell)
		assert.ErrorIs(t, controller.MakeTurn(field, 0, -1), apperror.ErrInvalidCell)
		assert.Equal(t, entity.CellPlayer1, controller.Turn())
	})

	t.Run("No field", func(t *testing.T) {
		controller := NewTurnController()

		assert.ErrorIs(t, controller.MakeTurn(nil, 0, 0), apperror.ErrNoField)
	})
}

func TestTurnController_Reset(t *testing.T) {
	// Given: a controller after one move
	controller := NewTurnController()
	require.NoError(t, controller.MakeTurn(newField(t), 0, 0))
	require.Equal(t, entity.CellPlayer2, controller.Turn())

	// When: it is reset
	controller.Reset()

	// Then: player 1 moves next
	assert.Equal(t, entity.CellPlayer1, controller.Turn())
}
