package render

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/codebreaker/internal/game"
)

// Peg is the display form of one palette symbol.
type Peg struct {
	// Glyph is the character(s) drawn for the peg.
	Glyph string
	// Color is the ANSI escape sequence for the peg's color.
	Color string
}

// Theme maps every palette symbol to its display form.
//
// Invariant: Pegs has an entry for every symbol in the palette.
type Theme struct {
	Pegs map[game.Symbol]Peg
}

// colorNames maps theme-file color names to ANSI sequences.
var colorNames = map[string]string{
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright_red":     BrightRed,
	"bright_green":   BrightGreen,
	"bright_yellow":  BrightYellow,
	"bright_blue":    BrightBlue,
	"bright_magenta": BrightMagenta,
	"bright_cyan":    BrightCyan,
	"bright_white":   BrightWhite,
}

// DefaultTheme returns the built-in theme: a filled circle per peg in
// the symbol's own bright color.
//
// Postcondition: the returned Theme satisfies the Theme invariant.
func DefaultTheme() Theme {
	colors := map[game.Symbol]string{
		game.Red:     BrightRed,
		game.Green:   BrightGreen,
		game.Blue:    BrightBlue,
		game.Cyan:    BrightCyan,
		game.Magenta: BrightMagenta,
		game.Yellow:  BrightYellow,
	}
	pegs := make(map[game.Symbol]Peg, game.PaletteSize)
	for _, sym := range game.Palette() {
		pegs[sym] = Peg{Glyph: "●", Color: colors[sym]}
	}
	return Theme{Pegs: pegs}
}

// yamlThemeFile is the top-level YAML structure for theme files.
type yamlThemeFile struct {
	Theme yamlTheme `yaml:"theme"`
}

type yamlTheme struct {
	Pegs []yamlPeg `yaml:"pegs"`
}

type yamlPeg struct {
	Symbol string `yaml:"symbol"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
}

// LoadThemeFromFile reads and validates a single theme YAML file.
//
// Precondition: path must point to a valid YAML theme file.
// Postcondition: Returns a validated Theme or a non-nil error.
func LoadThemeFromFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	return LoadThemeFromBytes(data)
}

// LoadThemeFromBytes parses and validates a theme from YAML bytes.
// Every palette symbol must be covered exactly once, each glyph must be
// non-empty, and each color name must be known.
//
// Postcondition: Returns a validated Theme or a non-nil error.
func LoadThemeFromBytes(data []byte) (Theme, error) {
	var file yamlThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	symbolsByName := make(map[string]game.Symbol, game.PaletteSize)
	for _, sym := range game.Palette() {
		symbolsByName[sym.String()] = sym
	}

	pegs := make(map[game.Symbol]Peg, game.PaletteSize)
	for _, yp := range file.Theme.Pegs {
		sym, ok := symbolsByName[strings.ToLower(yp.Symbol)]
		if !ok {
			return Theme{}, fmt.Errorf("theme names unknown symbol %q", yp.Symbol)
		}
		if _, dup := pegs[sym]; dup {
			return Theme{}, fmt.Errorf("theme defines symbol %q twice", yp.Symbol)
		}
		if yp.Glyph == "" {
			return Theme{}, fmt.Errorf("theme symbol %q has an empty glyph", yp.Symbol)
		}
		color, ok := colorNames[strings.ToLower(yp.Color)]
		if !ok {
			return Theme{}, fmt.Errorf("theme symbol %q has unknown color %q", yp.Symbol, yp.Color)
		}
		pegs[sym] = Peg{Glyph: yp.Glyph, Color: color}
	}

	if len(pegs) != game.PaletteSize {
		return Theme{}, fmt.Errorf("theme covers %d of %d palette symbols", len(pegs), game.PaletteSize)
	}
	return Theme{Pegs: pegs}, nil
}
