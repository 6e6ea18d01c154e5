package style

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/rocketscienceinc/tictactoe-view/internal/apperror"
)

// ParseColor reads "#RRGGBB", "#RRGGBBAA" or an SVG color name such as "lightgray".
func ParseColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(value)

	if !strings.HasPrefix(value, "#") {
		if named, ok := colornames.Map[strings.ToLower(value)]; ok {
			return named, nil
		}

		return color.RGBA{}, fmt.Errorf("%w: unknown color name %q", apperror.ErrInvalidColor, value)
	}

	raw, err := hex.DecodeString(value[1:])
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %w", apperror.ErrInvalidColor, value, err)
	}

	switch len(raw) {
	case 3:
		return color.RGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xff}, nil
	case 4:
		return color.RGBA{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}, nil
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q must have 6 or 8 hex digits", apperror.ErrInvalidColor, value)
	}
}
