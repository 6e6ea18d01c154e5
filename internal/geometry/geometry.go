// Package geometry maps a field of rows and columns onto a pixel viewport and
// back. Every function is total: bad input yields a zero or negative size, or
// an out of range cell, never an error.
package geometry

import "math"

// CellPaddingRatio is the share of a cell left blank around its glyph.
const CellPaddingRatio = 0.2

// Insets is the padding between the viewport edge and the drawable area.
type Insets struct {
	Left, Top, Right, Bottom int
}

func (that Insets) Horizontal() int {
	return that.Left + that.Right
}

func (that Insets) Vertical() int {
	return that.Top + that.Bottom
}

type Rect struct {
	Left, Top, Right, Bottom float64
}

func (that Rect) Width() float64 {
	return that.Right - that.Left
}

func (that Rect) Height() float64 {
	return that.Bottom - that.Top
}

func (that Rect) CenterX() float64 {
	return (that.Left + that.Right) / 2
}

func (that Rect) CenterY() float64 {
	return (that.Top + that.Bottom) / 2
}

// Empty reports whether the rect has no positive area.
func (that Rect) Empty() bool {
	return that.Width() <= 0 || that.Height() <= 0
}

// Outset grows the rect by d on every side.
func (that Rect) Outset(d float64) Rect {
	return Rect{
		Left:   that.Left - d,
		Top:    that.Top - d,
		Right:  that.Right + d,
		Bottom: that.Bottom + d,
	}
}

// Contains reports whether (x, y) lies inside the rect, right and bottom edges excluded.
func (that Rect) Contains(x, y float64) bool {
	return x >= that.Left && x < that.Right && y >= that.Top && y < that.Bottom
}

type Line struct {
	X0, Y0, X1, Y1 float64
}

// PreferredSize is the size a view asks for to show every cell at desiredCellSize.
// Columns span the width and rows span the height.
func PreferredSize(rows, columns, desiredCellSize, minWidth, minHeight int, insets Insets) (int, int) {
	width := max(minWidth, columns*desiredCellSize+insets.Horizontal())
	height := max(minHeight, rows*desiredCellSize+insets.Vertical())

	return width, height
}

// Layout is the placement of a field inside a viewport.
type Layout struct {
	CellSize    float64
	CellPadding float64
	Field       Rect
}

// NewLayout fits square cells of rows x columns into the viewport and centers
// the resulting field inside the insets.
func NewLayout(width, height int, insets Insets, rows, columns int) Layout {
	if rows <= 0 || columns <= 0 {
		return Layout{}
	}

	safeWidth := width - insets.Horizontal()
	safeHeight := height - insets.Vertical()

	// whole pixels per cell keep grid lines on pixel boundaries
	cellWidth := float64(safeWidth / columns)
	cellHeight := float64(safeHeight / rows)
	cellSize := min(cellWidth, cellHeight)

	fieldWidth := cellSize * float64(columns)
	fieldHeight := cellSize * float64(rows)

	left := float64(insets.Left) + (float64(safeWidth)-fieldWidth)/2
	top := float64(insets.Top) + (float64(safeHeight)-fieldHeight)/2

	return Layout{
		CellSize:    cellSize,
		CellPadding: cellSize * CellPaddingRatio,
		Field: Rect{
			Left:   left,
			Top:    top,
			Right:  left + fieldWidth,
			Bottom: top + fieldHeight,
		},
	}
}

// Ready reports whether the layout can be drawn and hit-tested.
func (that Layout) Ready() bool {
	return that.CellSize > 0 && !that.Field.Empty()
}

// CellRect is the padded area of a cell where its glyph is drawn.
func (that Layout) CellRect(row, column int) Rect {
	left := that.Field.Left + float64(column)*that.CellSize + that.CellPadding
	top := that.Field.Top + float64(row)*that.CellSize + that.CellPadding

	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + that.CellSize - 2*that.CellPadding,
		Bottom: top + that.CellSize - 2*that.CellPadding,
	}
}

// PointToCell maps a pixel to a (row, column) pair. Points above or left of
// the field give negative indices; callers range-check the result.
func (that Layout) PointToCell(x, y float64) (int, int) {
	if that.CellSize <= 0 {
		return -1, -1
	}

	// floor, not truncation: -0.3 must become -1, not 0
	row := int(math.Floor((y - that.Field.Top) / that.CellSize))
	column := int(math.Floor((x - that.Field.Left) / that.CellSize))

	return row, column
}

// GridLines returns the horizontal separators top to bottom, then the
// vertical ones left to right, outer borders included.
func (that Layout) GridLines(rows, columns int) []Line {
	if rows <= 0 || columns <= 0 {
		return nil
	}

	lines := make([]Line, 0, rows+columns+2)

	for i := 0; i <= rows; i++ {
		y := that.Field.Top + that.CellSize*float64(i)
		lines = append(lines, Line{X0: that.Field.Left, Y0: y, X1: that.Field.Right, Y1: y})
	}

	for i := 0; i <= columns; i++ {
		x := that.Field.Left + that.CellSize*float64(i)
		lines = append(lines, Line{X0: x, Y0: that.Field.Top, X1: x, Y1: that.Field.Bottom})
	}

	return lines
}
