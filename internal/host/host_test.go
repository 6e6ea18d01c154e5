package host

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/rocketscienceinc/tictactoe-view/internal/entity"
	"github.com/rocketscienceinc/tictactoe-view/internal/style"
	"github.com/rocketscienceinc/tictactoe-view/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-view/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-view/internal/view"
	"github.com/rocketscienceinc/tictactoe-view/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockedHost "github.com/rocketscienceinc/tictactoe-view/mocks/host"
)

func startedController(st *suite.Suite) (*controller, *usecase.Session, *view.View) {
	st.Helper()

	v := view.New(st.Logger, style.Default(1), view.Options{DesiredCellSize: 60})
	v.Resize(180, 180)

	session, err := usecase.NewSession(st.Logger, v, tictactoe.NewTurnController(),
		usecase.FieldRange{Rows: 3, Columns: 3, Min: 3, Max: 6}, rand.New(rand.NewPCG(7, 7)))
	require.NoError(st, err)
	require.NoError(st, session.Start())

	return newController(st.Logger, session, v), session, v
}

func TestController_Apply(t *testing.T) {
	t.Run("Keyboard moves focus and places marks", func(t *testing.T) {
		st := suite.New(t)
		ctrl, session, v := startedController(st)

		// When: focus starts, moves right and down, then clicks
		for _, cmd := range []Command{CommandFocusRight, CommandFocusRight, CommandFocusDown, CommandClick} {
			assert.False(t, ctrl.apply(cmd))
		}

		// Then: the first press focused (0, 0) and the mark landed at (1, 1)
		row, column := v.Focus()
		assert.Equal(t, 1, row)
		assert.Equal(t, 1, column)
		assert.Equal(t, entity.CellPlayer1, v.Field().Cell(1, 1))
		assert.Equal(t, 1, session.Moves())
	})

	t.Run("Focus stays inside the field", func(t *testing.T) {
		st := suite.New(t)
		ctrl, _, v := startedController(st)

		for range 5 {
			ctrl.apply(CommandFocusUp)
			ctrl.apply(CommandFocusLeft)
		}

		row, column := v.Focus()
		assert.Equal(t, 0, row)
		assert.Equal(t, 0, column)
	})

	t.Run("Reset and regenerate replace the field", func(t *testing.T) {
		st := suite.New(t)
		ctrl, session, v := startedController(st)
		ctrl.apply(CommandFocusDown)
		ctrl.apply(CommandClick)
		first := v.Field()

		// When: the board is reset
		assert.False(t, ctrl.apply(CommandReset))

		// Then: it is empty and counts no moves
		require.NotSame(t, first, v.Field())
		assert.Equal(t, 0, session.Moves())

		// When: a new field is generated
		reset := v.Field()
		assert.False(t, ctrl.apply(CommandRegenerate))

		// Then: the view shows yet another field
		assert.NotSame(t, reset, v.Field())
	})

	t.Run("Quit closes the window", func(t *testing.T) {
		st := suite.New(t)
		ctrl, _, _ := startedController(st)

		assert.True(t, ctrl.apply(CommandQuit))
		assert.False(t, ctrl.apply(CommandNone))
	})

	t.Run("Session errors are logged, not fatal", func(t *testing.T) {
		// Given: a session whose field operations fail
		st := suite.New(t)
		mockSession := mockedHost.NewMocksession(t)
		mockSession.EXPECT().Regenerate().Return(errBroken).Once()
		mockSession.EXPECT().Reset().Return(errBroken).Once()

		v := view.New(st.Logger, style.Default(1), view.Options{})
		ctrl := newController(st.Logger, mockSession, v)

		// When: both commands are applied
		// Then: the window stays open
		assert.False(t, ctrl.apply(CommandRegenerate))
		assert.False(t, ctrl.apply(CommandReset))
	})
}

func TestInitialSize(t *testing.T) {
	st := suite.New(t)
	_, _, v := startedController(st)

	width, height := initialSize(v)

	assert.Equal(t, 180, width)
	assert.Equal(t, 180, height)
}

func TestRedrawer_Next(t *testing.T) {
	t.Run("Paints only after the field or focus changed", func(t *testing.T) {
		// Given: a started session whose first frame was painted
		st := suite.New(t)
		ctrl, session, v := startedController(st)
		redraw := newRedrawer(session, v)

		_, stale := redraw.next()
		require.True(t, stale)
		v.Draw(st.Canvas)

		// Then: an unchanged frame is skipped
		_, stale = redraw.next()
		assert.False(t, stale)

		// When: a mark is placed
		ctrl.apply(CommandFocusDown)
		v.Draw(st.Canvas)
		ctrl.apply(CommandClick)

		// Then: the cell change invalidated the view and the status moved on
		require.True(t, v.Dirty())
		status, stale := redraw.next()
		assert.True(t, stale)
		assert.Equal(t, "next: O  field: 3x3  moves: 1", status)
		v.Draw(st.Canvas)

		_, stale = redraw.next()
		assert.False(t, stale)
	})

	t.Run("A new status line forces a repaint", func(t *testing.T) {
		// Given: a clean view and a status that changes once
		st := suite.New(t)
		mockSession := mockedHost.NewMocksession(t)
		mockSession.EXPECT().Status().Return("next: X").Twice()
		mockSession.EXPECT().Status().Return("next: O").Once()

		v := view.New(st.Logger, style.Default(1), view.Options{})
		redraw := newRedrawer(mockSession, v)

		// When: three frames are requested
		_, first := redraw.next()
		_, second := redraw.next()
		status, third := redraw.next()

		// Then: only the first and the changed one are painted
		assert.True(t, first)
		assert.False(t, second)
		assert.True(t, third)
		assert.Equal(t, "next: O", status)
	})
}

func TestController_Resize(t *testing.T) {
	st := suite.New(t)
	ctrl, _, v := startedController(st)
	v.Draw(st.Canvas)

	// When: the same size is reported again
	ctrl.resize(180, 180)

	// Then: nothing is invalidated
	assert.False(t, v.Dirty())

	// When: the window grows
	ctrl.resize(300, 240)

	// Then: the view adopts the size and relayouts
	width, height := v.Size()
	assert.Equal(t, 300, width)
	assert.Equal(t, 240, height)
	assert.True(t, v.Dirty())
	assert.InDelta(t, 80.0, v.Layout().CellSize, 1e-9)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "regenerate", CommandRegenerate.String())
	assert.Equal(t, "none", Command(99).String())
}

var errBroken = errors.New("broken")
