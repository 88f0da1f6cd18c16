package game

import "fmt"

// EventKind classifies a single input event fed to the Collector.
type EventKind int

const (
	// EventPeg appends one symbol to the guess under construction.
	EventPeg EventKind = iota
	// EventDelete removes the most recently appended symbol.
	EventDelete
	// EventSubmit submits the guess, honored only when it is full.
	EventSubmit
	// EventAbort ends the whole game regardless of buffer contents.
	EventAbort
)

// Event is one discrete input event. Symbol is meaningful only for
// EventPeg.
type Event struct {
	Kind   EventKind
	Symbol Symbol
}

// PegEvent returns a peg event for the given symbol.
func PegEvent(s Symbol) Event {
	return Event{Kind: EventPeg, Symbol: s}
}

// Disposition is the Collector's verdict after applying one event.
type Disposition int

const (
	// Pending means the guess is still being built.
	Pending Disposition = iota
	// Submitted means a full guess was submitted this event.
	Submitted
	// Aborted means the player asked to end the game.
	Aborted
)

// Collector builds a guess incrementally from discrete input events.
// It is independent of how those events arrive; the same machine is
// driven per-keystroke in raw mode and per-line in fallback mode.
//
// Invariant: the buffer never holds more than CodeLength symbols.
type Collector struct {
	buf []Symbol
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{buf: make([]Symbol, 0, CodeLength)}
}

// Reset empties the buffer. Called at the start of every turn.
func (c *Collector) Reset() {
	c.buf = c.buf[:0]
}

// Apply processes one event and reports the resulting disposition.
// Invalid events for the current state are no-ops: a peg past a full
// buffer, a delete on an empty buffer, and a submit before the buffer
// is full all return Pending with no state change. Abort is honored in
// every state.
func (c *Collector) Apply(ev Event) Disposition {
	switch ev.Kind {
	case EventPeg:
		if len(c.buf) < CodeLength {
			c.buf = append(c.buf, ev.Symbol)
		}
	case EventDelete:
		if len(c.buf) > 0 {
			c.buf = c.buf[:len(c.buf)-1]
		}
	case EventSubmit:
		if len(c.buf) == CodeLength {
			return Submitted
		}
	case EventAbort:
		return Aborted
	}
	return Pending
}

// Buffer returns a copy of the symbols entered so far.
func (c *Collector) Buffer() []Symbol {
	out := make([]Symbol, len(c.buf))
	copy(out, c.buf)
	return out
}

// Full reports whether the buffer holds a complete guess.
func (c *Collector) Full() bool {
	return len(c.buf) == CodeLength
}

// Guess returns the completed guess as a Code.
//
// Precondition: the buffer must be full; calling Guess earlier is a
// programming error and panics.
func (c *Collector) Guess() Code {
	if len(c.buf) != CodeLength {
		panic(fmt.Sprintf("game: Guess called with %d of %d pegs", len(c.buf), CodeLength))
	}
	guess := make(Code, CodeLength)
	copy(guess, c.buf)
	return guess
}
