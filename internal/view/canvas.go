package view

import (
	"image/color"

	"github.com/rocketscienceinc/tictactoe-view/internal/geometry"
	"github.com/rocketscienceinc/tictactoe-view/internal/style"
)

// Canvas is the drawing surface supplied by the host.
type Canvas interface {
	DrawLine(x0, y0, x1, y1 float64, stroke style.Stroke)
	DrawCircle(cx, cy, radius float64, stroke style.Stroke)
	FillRect(rect geometry.Rect, fill color.RGBA)
}
