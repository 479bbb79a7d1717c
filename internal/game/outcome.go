package game

import "fmt"

// DetermineWinner resolves user against opponent on a cycle of total moves.
//
// Each move beats the half moves that precede it in the list (wrapping
// around) and loses to the half moves that follow it. The circular distance
// is folded into [-half, +half]: zero is a draw, positive means the user
// wins, negative means the opponent wins.
//
// It panics if total is not an odd number >= 3 or an index is out of range.
func DetermineWinner(user, opponent, total int) Verdict {
	if total < 3 || total%2 == 0 {
		panic(fmt.Sprintf("game: invalid move total %d", total))
	}
	if user < 0 || user >= total || opponent < 0 || opponent >= total {
		panic(fmt.Sprintf("game: move index out of range (%d, %d of %d)", user, opponent, total))
	}

	half := total / 2
	offset := (user-opponent+half+total)%total - half
	switch {
	case offset > 0:
		return Win
	case offset < 0:
		return Lose
	default:
		return Draw
	}
}
