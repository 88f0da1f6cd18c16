// Package game implements the code-breaking engine: the fixed color
// palette, secret generation, guess scoring, the per-turn input
// collector, and the turn loop that drives a game to its outcome.
package game

import (
	"fmt"
	"strings"
)

// Symbol is one color peg from the palette.
type Symbol int

// The six palette colors, in display order.
const (
	Red Symbol = iota
	Green
	Blue
	Cyan
	Magenta
	Yellow
)

// Game constants. These are rules of the game, not configuration.
const (
	// CodeLength is the number of pegs in a code.
	CodeLength = 4
	// PaletteSize is the number of distinct colors.
	PaletteSize = 6
	// MaxTurns is the number of guesses before the game is lost.
	MaxTurns = 12
)

var symbolNames = [PaletteSize]string{"red", "green", "blue", "cyan", "magenta", "yellow"}

// symbolLetters maps each symbol to its single-letter form used for
// keyboard input and compact code display.
var symbolLetters = [PaletteSize]rune{'R', 'G', 'B', 'C', 'M', 'Y'}

// String returns the lowercase color name, e.g. "magenta".
func (s Symbol) String() string {
	if s < 0 || int(s) >= PaletteSize {
		return fmt.Sprintf("symbol(%d)", int(s))
	}
	return symbolNames[s]
}

// Letter returns the single uppercase letter for the symbol, e.g. 'M'.
//
// Precondition: s must be a valid palette symbol.
func (s Symbol) Letter() rune {
	if s < 0 || int(s) >= PaletteSize {
		panic(fmt.Sprintf("game: Letter called on invalid symbol %d", int(s)))
	}
	return symbolLetters[s]
}

// Palette returns the ordered set of all symbols. The returned slice is
// a fresh copy; callers may not mutate the palette itself.
func Palette() []Symbol {
	p := make([]Symbol, PaletteSize)
	for i := range p {
		p[i] = Symbol(i)
	}
	return p
}

// SymbolFromRune maps a key rune to a palette symbol. Both the color
// letters (r, g, b, c, m, y, case-insensitive) and the numeric aliases
// 1..6 are accepted. The second return value reports whether the rune
// named a symbol at all.
func SymbolFromRune(r rune) (Symbol, bool) {
	if r >= '1' && r <= '6' {
		return Symbol(r - '1'), true
	}
	upper := []rune(strings.ToUpper(string(r)))[0]
	for i, l := range symbolLetters {
		if upper == l {
			return Symbol(i), true
		}
	}
	return 0, false
}

// Code is an ordered sequence of exactly CodeLength symbols. It is used
// for both the secret and player guesses.
type Code []Symbol

// String returns the compact letter form of the code, e.g. "RGBC".
func (c Code) String() string {
	var b strings.Builder
	for _, s := range c {
		b.WriteRune(s.Letter())
	}
	return b.String()
}

// ParseCode converts a string of color letters into a Code.
//
// Precondition: s must contain exactly CodeLength recognized letters or
// digit aliases.
// Postcondition: Returns a valid Code or a non-nil error.
func ParseCode(s string) (Code, error) {
	runes := []rune(s)
	if len(runes) != CodeLength {
		return nil, fmt.Errorf("code must have exactly %d pegs, got %d", CodeLength, len(runes))
	}
	code := make(Code, 0, CodeLength)
	for _, r := range runes {
		sym, ok := SymbolFromRune(r)
		if !ok {
			return nil, fmt.Errorf("unrecognized peg character %q", r)
		}
		code = append(code, sym)
	}
	return code, nil
}
