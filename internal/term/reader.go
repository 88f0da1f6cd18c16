package term

import (
	"bufio"
	"io"
	"strings"

	"github.com/cory-johannsen/codebreaker/internal/game"
)

// Control bytes recognized in raw mode.
const (
	keyEscape    = 0x1b
	keyCtrlC     = 0x03
	keyBackspace = 0x08
	keyDelete    = 0x7f
)

// DecodeKey maps one raw keystroke byte to a game input event. The
// second return value is false for keys that mean nothing; those are
// silently dropped. ESC and Ctrl-C abort immediately, with no
// confirmation.
func DecodeKey(b byte) (game.Event, bool) {
	switch b {
	case keyEscape, keyCtrlC, 'q', 'Q':
		return game.Event{Kind: game.EventAbort}, true
	case '\r', '\n', ' ':
		return game.Event{Kind: game.EventSubmit}, true
	case keyBackspace, keyDelete:
		return game.Event{Kind: game.EventDelete}, true
	}
	if sym, ok := game.SymbolFromRune(rune(b)); ok {
		return game.PegEvent(sym), true
	}
	return game.Event{}, false
}

// ReadKeys reads single keystrokes from r and emits decoded events on
// the returned channel. The channel is closed on EOF or after an abort
// event has been delivered. This goroutine is the only reader of r, so
// events are strictly sequential.
func ReadKeys(r io.Reader) <-chan game.Event {
	ch := make(chan game.Event)
	go func() {
		defer close(ch)
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				if ev, ok := DecodeKey(buf[0]); ok {
					ch <- ev
					if ev.Kind == game.EventAbort {
						return
					}
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

// ReadLines drives the same event stream from whole lines of text, for
// input devices that cannot enter unbuffered mode. Unrecognized runes
// are stripped from each line; the remainder must hold exactly
// CodeLength pegs or the line is rejected and reprompt is called. A
// line of just "q" aborts. The channel is closed on EOF or after an
// abort event.
func ReadLines(r io.Reader, reprompt func()) <-chan game.Event {
	ch := make(chan game.Event)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if strings.EqualFold(line, "q") {
				ch <- game.Event{Kind: game.EventAbort}
				return
			}
			pegs := make([]game.Symbol, 0, game.CodeLength)
			for _, rn := range line {
				if sym, ok := game.SymbolFromRune(rn); ok {
					pegs = append(pegs, sym)
				}
			}
			if len(pegs) != game.CodeLength {
				if reprompt != nil {
					reprompt()
				}
				continue
			}
			for _, sym := range pegs {
				ch <- game.PegEvent(sym)
			}
			ch <- game.Event{Kind: game.EventSubmit}
		}
	}()
	return ch
}
