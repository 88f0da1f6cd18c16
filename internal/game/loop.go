package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the game's position in its lifecycle.
type State int

const (
	// InProgress means more turns remain.
	InProgress State = iota
	// Won means a guess matched the secret exactly.
	Won
	// Lost means MaxTurns elapsed without a win.
	Lost
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Turn is the record of one completed guess-and-feedback cycle.
type Turn struct {
	Number   int
	Guess    Code
	Feedback Feedback
}

// Result is the final outcome of a game.
type Result struct {
	// ID correlates this game's log lines.
	ID uuid.UUID
	// State is Won or Lost for a finished game; InProgress if aborted.
	State State
	// Turns holds every scored turn in order.
	Turns []Turn
	// Secret is the code the player was trying to break.
	Secret Code
	// Aborted is true when the game ended on the abort path instead of
	// reaching a terminal state.
	Aborted bool
}

// View is the rendering collaborator. It receives presentation events
// and must not mutate any engine state.
type View interface {
	// TurnStart announces the beginning of a turn (1-based).
	TurnStart(turn int)
	// BufferChanged redraws the guess under construction.
	BufferChanged(pegs []Symbol)
	// TurnScored presents a completed turn's guess and feedback.
	TurnScored(t Turn)
	// GameWon presents the win banner after the winning turn count.
	GameWon(turns int)
	// GameLost reveals the secret after the final failed turn.
	GameLost(secret Code)
}

// Loop drives a single game from the first turn to a terminal outcome.
// All mutable game state (turn counter, collector, state) lives on the
// Loop; nothing is process-global.
type Loop struct {
	id        uuid.UUID
	secret    Code
	collector *Collector
	events    <-chan Event
	abort     <-chan struct{}
	view      View
	logger    *zap.Logger

	state State
	turn  int
	turns []Turn
}

// NewLoop assembles a game over the given secret. Input arrives on
// events; a close of abort (or an EventAbort on events) ends the game
// immediately. The events channel closing is treated as an abort.
//
// Precondition: secret must have length CodeLength; events, view, and
// logger must be non-nil.
func NewLoop(secret Code, events <-chan Event, abort <-chan struct{}, view View, logger *zap.Logger) *Loop {
	if len(secret) != CodeLength {
		panic("game: NewLoop called with secret of wrong length")
	}
	id := uuid.New()
	return &Loop{
		id:        id,
		secret:    secret,
		collector: NewCollector(),
		events:    events,
		abort:     abort,
		view:      view,
		logger:    logger.With(zap.String("game_id", id.String())),
		state:     InProgress,
		turn:      1,
	}
}

// Play runs turns until the game is Won, Lost, or aborted, and returns
// the Result. Play blocks only while waiting for the next input event;
// that wait also watches the abort channel, so an external interrupt is
// honored even mid-turn.
func (l *Loop) Play() Result {
	l.logger.Info("game started",
		zap.Int("max_turns", MaxTurns),
		zap.Int("code_length", CodeLength),
	)

	for l.state == InProgress {
		l.collector.Reset()
		l.view.TurnStart(l.turn)
		l.view.BufferChanged(l.collector.Buffer())

		if aborted := l.collectGuess(); aborted {
			return l.finishAborted()
		}

		guess := l.collector.Guess()
		fb := Score(l.secret, guess)
		t := Turn{Number: l.turn, Guess: guess, Feedback: fb}
		l.turns = append(l.turns, t)
		l.view.TurnScored(t)
		l.logger.Info("guess scored",
			zap.Int("turn", t.Number),
			zap.String("guess", guess.String()),
			zap.Int("exact", fb.Exact),
			zap.Int("partial", fb.Partial),
		)

		switch {
		case fb.Win():
			l.state = Won
			l.view.GameWon(l.turn)
		case l.turn == MaxTurns:
			l.state = Lost
			l.view.GameLost(l.secret)
		default:
			l.turn++
		}
	}

	l.logger.Info("game over",
		zap.String("state", l.state.String()),
		zap.Int("turns", len(l.turns)),
	)
	return l.result()
}

// collectGuess feeds events into the Collector until a full guess is
// submitted or the game is aborted. Returns true on abort.
func (l *Loop) collectGuess() bool {
	for {
		select {
		case <-l.abort:
			return true
		case ev, ok := <-l.events:
			if !ok {
				return true
			}
			switch l.collector.Apply(ev) {
			case Submitted:
				return false
			case Aborted:
				return true
			case Pending:
				l.view.BufferChanged(l.collector.Buffer())
			}
		}
	}
}

func (l *Loop) finishAborted() Result {
	l.logger.Info("game aborted",
		zap.Int("turn", l.turn),
		zap.Int("turns_completed", len(l.turns)),
	)
	r := l.result()
	r.Aborted = true
	return r
}

func (l *Loop) result() Result {
	return Result{
		ID:     l.id,
		State:  l.state,
		Turns:  l.turns,
		Secret: l.secret,
	}
}
