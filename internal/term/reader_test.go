package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/codebreaker/internal/game"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want game.Event
		ok   bool
	}{
		{"color letter", 'r', game.PegEvent(game.Red), true},
		{"uppercase letter", 'M', game.PegEvent(game.Magenta), true},
		{"numeric alias", '3', game.PegEvent(game.Blue), true},
		{"enter submits", '\r', game.Event{Kind: game.EventSubmit}, true},
		{"newline submits", '\n', game.Event{Kind: game.EventSubmit}, true},
		{"space submits", ' ', game.Event{Kind: game.EventSubmit}, true},
		{"backspace deletes", keyBackspace, game.Event{Kind: game.EventDelete}, true},
		{"del deletes", keyDelete, game.Event{Kind: game.EventDelete}, true},
		{"escape aborts", keyEscape, game.Event{Kind: game.EventAbort}, true},
		{"ctrl-c aborts", keyCtrlC, game.Event{Kind: game.EventAbort}, true},
		{"q aborts", 'q', game.Event{Kind: game.EventAbort}, true},
		{"unknown letter ignored", 'z', game.Event{}, false},
		{"digit out of range ignored", '9', game.Event{}, false},
		{"tab ignored", '\t', game.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeKey(tt.b)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func collect(ch <-chan game.Event) []game.Event {
	var events []game.Event
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

func TestReadKeysEmitsEventsUntilEOF(t *testing.T) {
	events := collect(ReadKeys(strings.NewReader("rg1x\r")))
	assert.Equal(t, []game.Event{
		game.PegEvent(game.Red),
		game.PegEvent(game.Green),
		game.PegEvent(game.Red),
		game.Event{Kind: game.EventSubmit},
	}, events)
}

func TestReadKeysStopsAfterAbort(t *testing.T) {
	events := collect(ReadKeys(strings.NewReader("r\x1bgg")))
	assert.Equal(t, []game.Event{
		game.PegEvent(game.Red),
		game.Event{Kind: game.EventAbort},
	}, events)
}

func TestReadLinesValidLine(t *testing.T) {
	events := collect(ReadLines(strings.NewReader("rgbc\n"), nil))
	require.Len(t, events, game.CodeLength+1)
	assert.Equal(t, game.Event{Kind: game.EventSubmit}, events[game.CodeLength])
}

func TestReadLinesStripsUnrecognizedRunes(t *testing.T) {
	events := collect(ReadLines(strings.NewReader("r-g b!c\n"), nil))
	assert.Equal(t, []game.Event{
		game.PegEvent(game.Red),
		game.PegEvent(game.Green),
		game.PegEvent(game.Blue),
		game.PegEvent(game.Cyan),
		game.Event{Kind: game.EventSubmit},
	}, events)
}

func TestReadLinesRepromptsOnWrongPegCount(t *testing.T) {
	reprompts := 0
	events := collect(ReadLines(strings.NewReader("rgb\nrgbcm\nrgbc\n"), func() { reprompts++ }))
	assert.Equal(t, 2, reprompts)
	require.Len(t, events, game.CodeLength+1)
}

func TestReadLinesQuitAborts(t *testing.T) {
	events := collect(ReadLines(strings.NewReader("Q\nrgbc\n"), nil))
	assert.Equal(t, []game.Event{{Kind: game.EventAbort}}, events)
}

func TestReadLinesClosesOnEOF(t *testing.T) {
	events := collect(ReadLines(strings.NewReader(""), nil))
	assert.Empty(t, events)
}
