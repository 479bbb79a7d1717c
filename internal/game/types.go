// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Verdict: result of one move against another (win/lose/draw).
//   - Result: everything revealed once the player has moved.
//   - Signal: how a session ended, handed back to the caller.

package game

// Verdict is the outcome of a move from the perspective of the first
// (user or row) move.
//   - "win":  the move beats its opponent.
//   - "lose": the opponent beats the move.
//   - "draw": both sides played the same move.
type Verdict string

const (
	Win  Verdict = "win"
	Lose Verdict = "lose"
	Draw Verdict = "draw"
)

// Invert returns the verdict from the opponent's side.
func (v Verdict) Invert() Verdict {
	switch v {
	case Win:
		return Lose
	case Lose:
		return Win
	}
	return v
}

// Result is returned by Session.Play once the player's move is locked.
type Result struct {
	UserMove string  // Name of the player's move.
	BotMove  string  // Name of the computer's secret move.
	Verdict  Verdict // Player's verdict.
	MAC      string  // Digest shown before the player moved.
	Key      string  // Secret key, revealed for verification.
}

// SignalKind names the ways a session can end.
type SignalKind string

const (
	SignalValidationFailed SignalKind = "validation_failed"
	SignalUserExit         SignalKind = "user_exit"
	SignalSessionComplete  SignalKind = "session_complete"
)

// Signal reports a terminal session state to the driver, which decides how
// the process exits. Err is set for validation failures; Result for
// completed sessions.
type Signal struct {
	Kind   SignalKind
	Err    error
	Result *Result
}

// ValidationFailed wraps a move-set validation error.
func ValidationFailed(err error) Signal { return Signal{Kind: SignalValidationFailed, Err: err} }

// UserRequestedExit reports that the player quit before moving.
func UserRequestedExit() Signal { return Signal{Kind: SignalUserExit} }

// SessionComplete carries the final result.
func SessionComplete(r Result) Signal { return Signal{Kind: SignalSessionComplete, Result: &r} }
