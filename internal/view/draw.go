package view

import (
	"github.com/rocketscienceinc/tictactoe-view/internal/entity"
)

// Draw paints the field onto canvas: grid, focused cell, then marks.
func (that *View) Draw(canvas Canvas) {
	that.dirty = false

	if that.cannotDraw() {
		return
	}

	that.drawGrid(canvas)
	that.drawFocusedCell(canvas)
	that.drawMarks(canvas)
}

func (that *View) cannotDraw() bool {
	return that.field == nil || !that.layout.Ready()
}

func (that *View) drawGrid(canvas Canvas) {
	rows, columns := that.field.Dimensions()

	for _, line := range that.layout.GridLines(rows, columns) {
		canvas.DrawLine(line.X0, line.Y0, line.X1, line.Y1, that.style.GridLine)
	}
}

func (that *View) drawFocusedCell(canvas Canvas) {
	if !that.field.Contains(that.focusRow, that.focusColumn) {
		return
	}

	rect := that.layout.CellRect(that.focusRow, that.focusColumn).Outset(that.layout.CellPadding)
	canvas.FillRect(rect, that.style.FocusHighlight)
}

func (that *View) drawMarks(canvas Canvas) {
	rows, columns := that.field.Dimensions()

	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			switch that.field.Cell(row, column) {
			case entity.CellPlayer1:
				that.drawPlayer1(canvas, row, column)
			case entity.CellPlayer2:
				that.drawPlayer2(canvas, row, column)
			case entity.CellEmpty:
			}
		}
	}
}

// drawPlayer1 draws a cross.
func (that *View) drawPlayer1(canvas Canvas, row, column int) {
	rect := that.layout.CellRect(row, column)
	stroke := that.style.Player1Glyph

	canvas.DrawLine(rect.Left, rect.Top, rect.Right, rect.Bottom, stroke)
	canvas.DrawLine(rect.Right, rect.Top, rect.Left, rect.Bottom, stroke)
}

// drawPlayer2 draws a circle.
func (that *View) drawPlayer2(canvas Canvas, row, column int) {
	rect := that.layout.CellRect(row, column)

	canvas.DrawCircle(rect.CenterX(), rect.CenterY(), rect.Width()/2, that.style.Player2Glyph)
}
