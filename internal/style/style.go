package style

import (
	"fmt"
	"image/color"

	"github.com/rocketscienceinc/tictactoe-view/internal/apperror"
)

const (
	GlyphStrokeDP = 3
	GridStrokeDP  = 1
)

var (
	Player1DefaultColor = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	Player2DefaultColor = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	FocusDefaultColor   = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	GridDefaultColor    = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// Stroke describes how an outline is painted.
type Stroke struct {
	Color color.RGBA
	Width float64
}

// Style holds everything the view needs to paint a field.
type Style struct {
	Player1Glyph   Stroke
	Player2Glyph   Stroke
	GridLine       Stroke
	FocusHighlight color.RGBA
}

// Default returns the stock palette with stroke widths scaled to density.
func Default(density float64) Style {
	if density <= 0 {
		density = 1
	}

	return Style{
		Player1Glyph:   Stroke{Color: Player1DefaultColor, Width: GlyphStrokeDP * density},
		Player2Glyph:   Stroke{Color: Player2DefaultColor, Width: GlyphStrokeDP * density},
		GridLine:       Stroke{Color: GridDefaultColor, Width: GridStrokeDP * density},
		FocusHighlight: FocusDefaultColor,
	}
}

// Builder assembles a Style; Build fails when a part was never provided.
type Builder struct {
	player1 *Stroke
	player2 *Stroke
	grid    *Stroke
	focus   *color.RGBA
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (that *Builder) WithPlayer1Glyph(stroke Stroke) *Builder {
	that.player1 = &stroke
	return that
}

func (that *Builder) WithPlayer2Glyph(stroke Stroke) *Builder {
	that.player2 = &stroke
	return that
}

func (that *Builder) WithGridLine(stroke Stroke) *Builder {
	that.grid = &stroke
	return that
}

func (that *Builder) WithFocusHighlight(c color.RGBA) *Builder {
	that.focus = &c
	return that
}

func (that *Builder) Build() (Style, error) {
	strokes := []struct {
		name   string
		stroke *Stroke
	}{
		{"player1 glyph", that.player1},
		{"player2 glyph", that.player2},
		{"grid line", that.grid},
	}

	for _, part := range strokes {
		if part.stroke == nil {
			return Style{}, fmt.Errorf("%w: %s is not set", apperror.ErrStyleIncomplete, part.name)
		}

		if part.stroke.Width <= 0 {
			return Style{}, fmt.Errorf("%w: %s has width %v", apperror.ErrInvalidStroke, part.name, part.stroke.Width)
		}
	}

	if that.focus == nil {
		return Style{}, fmt.Errorf("%w: focus highlight is not set", apperror.ErrStyleIncomplete)
	}

	return Style{
		Player1Glyph:   *that.player1,
		Player2Glyph:   *that.player2,
		GridLine:       *that.grid,
		FocusHighlight: *that.focus,
	}, nil
}
