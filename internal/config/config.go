package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-view/internal/geometry"
	"github.com/rocketscienceinc/tictactoe-view/internal/style"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Field    Field  `yaml:"field"`
	View     View   `yaml:"view"`
	Style    Style  `yaml:"style"`
	Window   Window `yaml:"window"`
}

type Field struct {
	Rows    int   `yaml:"rows" env:"FIELD_ROWS" env-default:"10"`
	Columns int   `yaml:"columns" env:"FIELD_COLUMNS" env-default:"10"`
	MinSize int   `yaml:"min-size" env-default:"3"`
	MaxSize int   `yaml:"max-size" env-default:"10"`
	Seed    int64 `yaml:"seed" env:"FIELD_SEED" env-default:"0"`
}

type View struct {
	DesiredCellSize int     `yaml:"desired-cell-size" env-default:"60"`
	Density         float64 `yaml:"density" env:"VIEW_DENSITY" env-default:"1"`
	MinWidth        int     `yaml:"min-width" env-default:"0"`
	MinHeight       int     `yaml:"min-height" env-default:"0"`
	Padding         Padding `yaml:"padding"`
}

type Padding struct {
	Left   int `yaml:"left" env-default:"0"`
	Top    int `yaml:"top" env-default:"0"`
	Right  int `yaml:"right" env-default:"0"`
	Bottom int `yaml:"bottom" env-default:"0"`
}

type Style struct {
	Player1Color     string  `yaml:"player1-color" env-default:"#00FF00"`
	Player2Color     string  `yaml:"player2-color" env-default:"#FF0000"`
	GridColor        string  `yaml:"grid-color" env-default:"#888888"`
	FocusColor       string  `yaml:"focus-color" env-default:"#CCCCCC"`
	GlyphStrokeWidth float64 `yaml:"glyph-stroke-width" env-default:"3"`
	GridStrokeWidth  float64 `yaml:"grid-stroke-width" env-default:"1"`
}

type Window struct {
	Title string `yaml:"title" env-default:"Tic-Tac-Toe"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Build resolves the configured colors and widths into a style.Style.
// Stroke widths are given in density independent pixels.
func (that *Style) Build(density float64) (style.Style, error) {
	if density <= 0 {
		density = 1
	}

	player1, err := stroke("player1", that.Player1Color, that.GlyphStrokeWidth*density)
	if err != nil {
		return style.Style{}, err
	}

	player2, err := stroke("player2", that.Player2Color, that.GlyphStrokeWidth*density)
	if err != nil {
		return style.Style{}, err
	}

	grid, err := stroke("grid", that.GridColor, that.GridStrokeWidth*density)
	if err != nil {
		return style.Style{}, err
	}

	focus, err := style.ParseColor(that.FocusColor)
	if err != nil {
		return style.Style{}, fmt.Errorf("focus color: %w", err)
	}

	st, err := style.NewBuilder().
		WithPlayer1Glyph(player1).
		WithPlayer2Glyph(player2).
		WithGridLine(grid).
		WithFocusHighlight(focus).
		Build()
	if err != nil {
		return style.Style{}, fmt.Errorf("failed to build style: %w", err)
	}

	return st, nil
}

func stroke(name, raw string, width float64) (style.Stroke, error) {
	c, err := style.ParseColor(raw)
	if err != nil {
		return style.Stroke{}, fmt.Errorf("%s color: %w", name, err)
	}

	return style.Stroke{Color: c, Width: width}, nil
}

func (that *Padding) Insets() geometry.Insets {
	return geometry.Insets{Left: that.Left, Top: that.Top, Right: that.Right, Bottom: that.Bottom}
}

// DesiredCellSizePx converts the desired cell size to pixels.
func (that *View) DesiredCellSizePx() int {
	density := that.Density
	if density <= 0 {
		density = 1
	}

	return int(float64(that.DesiredCellSize) * density)
}
