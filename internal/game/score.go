package game

import "fmt"

// Feedback is the per-turn result of comparing a guess against the
// secret: Exact counts pegs of the right color in the right position,
// Partial counts right-color wrong-position pegs among the remainder.
//
// Invariant: 0 <= Exact <= CodeLength and 0 <= Partial <= CodeLength-Exact.
type Feedback struct {
	Exact   int
	Partial int
}

// Win reports whether the feedback represents a fully matched code.
func (f Feedback) Win() bool {
	return f.Exact == CodeLength
}

// String returns a compact audit form, e.g. "[exact=2 partial=1]".
func (f Feedback) String() string {
	return fmt.Sprintf("[exact=%d partial=%d]", f.Exact, f.Partial)
}

// Score compares a guess against the secret and returns the Feedback.
//
// The comparison runs in two passes. The first pass counts exact
// matches and marks those positions consumed in both codes. The second
// pass tallies the remaining positions per symbol on each side and
// credits min(secretCount, guessCount) partials per symbol. The exact
// pass must complete before the partial pass so that a peg scoring
// exact never also feeds a partial for a duplicate elsewhere.
//
// Precondition: both codes must have length CodeLength; a mismatch is a
// programming error and panics.
// Postcondition: result satisfies the Feedback invariant, is symmetric
// in its arguments, and equals (CodeLength, 0) iff secret == guess.
func Score(secret, guess Code) Feedback {
	if len(secret) != CodeLength || len(guess) != CodeLength {
		panic(fmt.Sprintf("game: Score called with code lengths %d and %d, want %d",
			len(secret), len(guess), CodeLength))
	}

	var fb Feedback
	var consumed [CodeLength]bool
	for i := 0; i < CodeLength; i++ {
		if secret[i] == guess[i] {
			fb.Exact++
			consumed[i] = true
		}
	}

	var secretCount, guessCount [PaletteSize]int
	for i := 0; i < CodeLength; i++ {
		if consumed[i] {
			continue
		}
		secretCount[secret[i]]++
		guessCount[guess[i]]++
	}
	for s := 0; s < PaletteSize; s++ {
		if secretCount[s] < guessCount[s] {
			fb.Partial += secretCount[s]
		} else {
			fb.Partial += guessCount[s]
		}
	}
	return fb
}
