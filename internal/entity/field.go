package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-view/internal/apperror"
)

// Field is a fixed-size grid of cells plus the listeners watching it.
// Dimensions never change; a differently sized board is a new Field.
type Field struct {
	rows    int
	columns int
	cells   [][]Cell

	listeners listenerSet
}

func NewField(rows, columns int) (*Field, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, rows, columns)
	}

	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, columns)
	}

	return &Field{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}, nil
}

func (that *Field) Dimensions() (int, int) {
	return that.rows, that.columns
}

// Contains reports whether (row, column) addresses a cell of the field.
func (that *Field) Contains(row, column int) bool {
	return row >= 0 && row < that.rows && column >= 0 && column < that.columns
}

// Cell returns the cell at (row, column), or CellEmpty outside the field.
func (that *Field) Cell(row, column int) Cell {
	if !that.Contains(row, column) {
		return CellEmpty
	}

	return that.cells[row][column]
}

// SetCell stores cell at (row, column) and notifies the listeners.
// Out of range coordinates and unchanged values are ignored.
func (that *Field) SetCell(row, column int, cell Cell) {
	if !that.Contains(row, column) {
		return
	}

	if that.cells[row][column] == cell {
		return
	}

	that.cells[row][column] = cell

	for _, listener := range that.listeners.snapshot() {
		listener.OnFieldChanged(that)
	}
}

func (that *Field) AddListener(listener FieldChangeListener) {
	that.listeners.add(listener)
}

func (that *Field) RemoveListener(listener FieldChangeListener) {
	that.listeners.remove(listener)
}

func (that *Field) HasListener(listener FieldChangeListener) bool {
	return that.listeners.contains(listener)
}

// MoveListeners hands every registration over to dst, keeping their order.
func (that *Field) MoveListeners(dst *Field) {
	if dst == nil || dst == that {
		return
	}

	for _, listener := range that.listeners.snapshot() {
		dst.listeners.add(listener)
	}

	that.listeners.clear()
}

// Cells returns a copy of the grid, indexed [row][column].
func (that *Field) Cells() [][]Cell {
	out := make([][]Cell, that.rows)
	for row := range that.cells {
		out[row] = make([]Cell, that.columns)
		copy(out[row], that.cells[row])
	}

	return out
}

func (that *Field) String() string {
	var sb strings.Builder

	for row := range that.cells {
		if row > 0 {
			sb.WriteByte('/')
		}

		for _, cell := range that.cells[row] {
			if cell == CellEmpty {
				sb.WriteByte('.')
				continue
			}

			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}
