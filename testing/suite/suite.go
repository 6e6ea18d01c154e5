package suite

import (
	"image/color"
	"log/slog"
	"os"
	"testing"

	"github.com/rocketscienceinc/tictactoe-view/internal/entity"
	"github.com/rocketscienceinc/tictactoe-view/internal/geometry"
	"github.com/rocketscienceinc/tictactoe-view/internal/style"
)

const (
	OpLine   = "line"
	OpCircle = "circle"
	OpFill   = "fill"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Canvas *Canvas
}

func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return &Suite{
		T:      t,
		Logger: logger,
		Canvas: &Canvas{},
	}
}

// NewField builds a field or fails the test.
func (that *Suite) NewField(rows, columns int) *entity.Field {
	that.Helper()

	field, err := entity.NewField(rows, columns)
	if err != nil {
		that.Fatalf("could not create %dx%d field: %v", rows, columns, err)
	}

	return field
}

// Op is one recorded drawing call.
type Op struct {
	Kind   string
	Line   geometry.Line
	CX, CY float64
	Radius float64
	Rect   geometry.Rect
	Stroke style.Stroke
	Fill   color.RGBA
}

// Canvas records drawing calls instead of painting them.
type Canvas struct {
	Ops []Op
}

func (that *Canvas) DrawLine(x0, y0, x1, y1 float64, stroke style.Stroke) {
	that.Ops = append(that.Ops, Op{
		Kind:   OpLine,
		Line:   geometry.Line{X0: x0, Y0: y0, X1: x1, Y1: y1},
		Stroke: stroke,
	})
}

func (that *Canvas) DrawCircle(cx, cy, radius float64, stroke style.Stroke) {
	that.Ops = append(that.Ops, Op{Kind: OpCircle, CX: cx, CY: cy, Radius: radius, Stroke: stroke})
}

func (that *Canvas) FillRect(rect geometry.Rect, fill color.RGBA) {
	that.Ops = append(that.Ops, Op{Kind: OpFill, Rect: rect, Fill: fill})
}

// Count returns how many recorded calls are of the given kind.
func (that *Canvas) Count(kind string) int {
	n := 0
	for _, op := range that.Ops {
		if op.Kind == kind {
			n++
		}
	}

	return n
}

func (that *Canvas) Reset() {
	that.Ops = nil
}
