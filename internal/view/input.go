package view

// PointerDown focuses the cell under (x, y).
func (that *View) PointerDown(x, y float64) {
	that.updateFocusedCell(x, y)
}

// PointerMove follows the pointer while it is held down.
func (that *View) PointerMove(x, y float64) {
	that.updateFocusedCell(x, y)
}

// PointerUp ends a gesture and activates the focused cell, if any.
func (that *View) PointerUp() bool {
	return that.PerformClick()
}

func (that *View) updateFocusedCell(x, y float64) {
	if that.field == nil {
		return
	}

	row, column := that.layout.PointToCell(x, y)
	if that.layout.Field.Contains(x, y) && that.field.Contains(row, column) {
		that.setFocus(row, column)
		return
	}

	// the pointer left the field
	that.clearFocus()
	that.Invalidate()
}

// MoveFocus shifts the focused cell for keyboard navigation, staying inside
// the field. Without a focused cell it starts at the top left one.
func (that *View) MoveFocus(dRow, dColumn int) {
	if that.field == nil {
		return
	}

	if !that.field.Contains(that.focusRow, that.focusColumn) {
		that.setFocus(0, 0)
		return
	}

	rows, columns := that.field.Dimensions()
	row := clamp(that.focusRow+dRow, 0, rows-1)
	column := clamp(that.focusColumn+dColumn, 0, columns-1)

	that.setFocus(row, column)
}

// PerformClick invokes the cell listener for the focused cell.
func (that *View) PerformClick() bool {
	if that.field == nil || !that.field.Contains(that.focusRow, that.focusColumn) {
		return false
	}

	if that.cellListener != nil {
		that.cellListener(that.focusRow, that.focusColumn, that.field)
	}

	return true
}

// Focus returns the focused cell, or (-1, -1) when none is focused.
func (that *View) Focus() (int, int) {
	return that.focusRow, that.focusColumn
}

func (that *View) setFocus(row, column int) {
	if that.focusRow == row && that.focusColumn == column {
		return
	}

	that.focusRow, that.focusColumn = row, column
	that.Invalidate()
}

func (that *View) clearFocus() {
	that.focusRow, that.focusColumn = noFocus, noFocus
}

func clamp(value, lo, hi int) int {
	return max(lo, min(value, hi))
}
