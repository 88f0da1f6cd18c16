package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/codebreaker/internal/game"
)

func plainRenderer(raw bool) (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(&buf, DefaultTheme(), false, raw), &buf
}

func TestIntroMentionsRules(t *testing.T) {
	r, buf := plainRenderer(false)
	r.Intro()
	out := buf.String()
	assert.Contains(t, out, "CODEBREAKER")
	assert.Contains(t, out, "4-peg")
	assert.Contains(t, out, "12 turns")
}

func TestIntroRawModeListsKeys(t *testing.T) {
	r, buf := plainRenderer(true)
	r.Intro()
	out := buf.String()
	assert.Contains(t, out, "backspace")
	assert.Contains(t, out, "Press any key")
	assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\n",
		"raw mode must not emit bare newlines")
}

func TestTurnScoredShowsGuessAndFeedback(t *testing.T) {
	r, buf := plainRenderer(false)
	guess, err := game.ParseCode("RGBC")
	require.NoError(t, err)
	r.TurnScored(game.Turn{
		Number:   3,
		Guess:    guess,
		Feedback: game.Feedback{Exact: 2, Partial: 1},
	})
	out := buf.String()
	assert.Contains(t, out, " 3. R G B C")
	assert.Equal(t, 2, strings.Count(out, "●"))
	assert.Equal(t, 1, strings.Count(out, "○"))
}

func TestBufferChangedRedrawsInPlace(t *testing.T) {
	r, buf := plainRenderer(true)
	r.BufferChanged([]game.Symbol{game.Red, game.Yellow})
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\r"))
	assert.Contains(t, out, "R Y")
	assert.Equal(t, 2, strings.Count(out, "·"), "two placeholders remain")
}

func TestBufferChangedNoOpInLineMode(t *testing.T) {
	r, buf := plainRenderer(false)
	r.BufferChanged([]game.Symbol{game.Red})
	assert.Empty(t, buf.String())
}

func TestGameLostRevealsSecret(t *testing.T) {
	r, buf := plainRenderer(false)
	secret, err := game.ParseCode("MYCB")
	require.NoError(t, err)
	r.GameLost(secret)
	assert.Contains(t, buf.String(), "M Y C B")
}

func TestGameWonReportsTurns(t *testing.T) {
	r, buf := plainRenderer(false)
	r.GameWon(5)
	assert.Contains(t, buf.String(), "5 turn(s)")
}

func TestColorOutputWrapsPegs(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, DefaultTheme(), true, false)
	guess, err := game.ParseCode("RGBC")
	require.NoError(t, err)
	r.TurnScored(game.Turn{Number: 1, Guess: guess, Feedback: game.Feedback{Exact: 4}})

	out := buf.String()
	assert.Contains(t, out, BrightRed)
	assert.Contains(t, out, Reset)
	assert.NotContains(t, StripANSI(out), "\033")
}

func TestRepromptAsksAgain(t *testing.T) {
	r, buf := plainRenderer(false)
	r.Reprompt()
	assert.Contains(t, buf.String(), "exactly 4 pegs")
	assert.Contains(t, buf.String(), "guess>")
}
