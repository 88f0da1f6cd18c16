package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/cory-johannsen/codebreaker/internal/game"
)

// Renderer draws the game to a terminal. It implements game.View. In
// raw mode lines end with \r\n and the in-progress guess row is redrawn
// in place; in line mode output is plain line-oriented text.
type Renderer struct {
	out   io.Writer
	theme Theme
	color bool
	raw   bool
}

// NewRenderer creates a Renderer writing to out. color disables all
// ANSI styling when false; raw selects keystroke-mode drawing.
//
// Precondition: out must be non-nil; theme must cover the full palette.
func NewRenderer(out io.Writer, theme Theme, color, raw bool) *Renderer {
	if out == nil {
		panic("render: NewRenderer called with nil writer")
	}
	return &Renderer{out: out, theme: theme, color: color, raw: raw}
}

func (r *Renderer) newline() string {
	if r.raw {
		return "\r\n"
	}
	return "\n"
}

// peg renders a single symbol: the themed glyph in color, or the plain
// letter when color is off.
func (r *Renderer) peg(s game.Symbol) string {
	if !r.color {
		return string(s.Letter())
	}
	p := r.theme.Pegs[s]
	return Colorize(p.Color, p.Glyph)
}

func (r *Renderer) pegs(syms []game.Symbol) string {
	var b strings.Builder
	for i, s := range syms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.peg(s))
	}
	return b.String()
}

// feedback renders the scored pair: one filled marker per exact match,
// one hollow marker per partial match.
func (r *Renderer) feedback(fb game.Feedback) string {
	exact := strings.Repeat("●", fb.Exact)
	partial := strings.Repeat("○", fb.Partial)
	if !r.color {
		return exact + partial
	}
	return Colorize(Bold+BrightWhite, exact) + Colorize(Dim, partial)
}

// Intro prints the banner and key bindings, then a continue prompt.
// This is the startup collaborator; the caller blocks for the continue
// event itself.
func (r *Renderer) Intro() {
	nl := r.newline()
	title := "CODEBREAKER"
	if r.color {
		title = Colorize(Bold+BrightWhite, title)
	}
	fmt.Fprintf(r.out, "%s%s", title, nl)
	fmt.Fprintf(r.out, "Break the secret %d-peg code within %d turns.%s",
		game.CodeLength, game.MaxTurns, nl)

	var names []string
	for _, s := range game.Palette() {
		names = append(names, fmt.Sprintf("%s=%c", s, s.Letter()))
	}
	fmt.Fprintf(r.out, "Colors: %s (or 1-6)%s", strings.Join(names, " "), nl)
	fmt.Fprintf(r.out, "● right color, right place; ○ right color, wrong place.%s", nl)
	if r.raw {
		fmt.Fprintf(r.out, "Keys: backspace deletes, enter submits, esc or q quits.%s", nl)
		fmt.Fprintf(r.out, "Press any key to start.%s", nl)
	} else {
		fmt.Fprintf(r.out, "Type %d pegs per line, enter submits, q quits.%s",
			game.CodeLength, nl)
	}
}

// TurnStart announces the turn. In line mode it also prompts.
func (r *Renderer) TurnStart(turn int) {
	fmt.Fprintf(r.out, "%sTurn %d/%d%s", r.newline(), turn, game.MaxTurns, r.newline())
	if !r.raw {
		fmt.Fprint(r.out, "guess> ")
	}
}

// BufferChanged redraws the guess under construction. Only meaningful
// in raw mode, where the row is rewritten in place; line mode input
// echoes itself.
func (r *Renderer) BufferChanged(pegs []game.Symbol) {
	if !r.raw {
		return
	}
	var b strings.Builder
	b.WriteString("\r  ")
	b.WriteString(r.pegs(pegs))
	for i := len(pegs); i < game.CodeLength; i++ {
		if i > 0 || len(pegs) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("·")
	}
	fmt.Fprint(r.out, b.String())
}

// TurnScored rewrites the turn's row with its guess and feedback.
func (r *Renderer) TurnScored(t game.Turn) {
	lead := ""
	if r.raw {
		lead = "\r"
	}
	fmt.Fprintf(r.out, "%s%2d. %s  %s%s",
		lead, t.Number, r.pegs(t.Guess), r.feedback(t.Feedback), r.newline())
}

// Reprompt asks for a replacement line after a rejected guess. Used
// only in line mode.
func (r *Renderer) Reprompt() {
	fmt.Fprintf(r.out, "need exactly %d pegs from the palette%sguess> ",
		game.CodeLength, r.newline())
}

// GameWon prints the win banner.
func (r *Renderer) GameWon(turns int) {
	msg := fmt.Sprintf("You cracked the code in %d turn(s)!", turns)
	if r.color {
		msg = Colorize(Bold+BrightGreen, msg)
	}
	fmt.Fprintf(r.out, "%s%s%s", r.newline(), msg, r.newline())
}

// GameLost reveals the secret.
func (r *Renderer) GameLost(secret game.Code) {
	msg := "Out of turns."
	if r.color {
		msg = Colorize(Bold+BrightRed, msg)
	}
	fmt.Fprintf(r.out, "%s%s The code was: %s%s",
		r.newline(), msg, r.pegs(secret), r.newline())
}
