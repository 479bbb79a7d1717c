// internal/moves/moves.go
//
// Move set management for the game.
//
// Responsibilities:
//   - Validate a user-supplied list of move names (odd count >= 3, no repeats).
//   - Hold the validated names in an immutable, ordered MoveSet.
//   - Provide lookups by index.
//
// Moves are identified by their position in the set; the cyclic
// win/lose relationship is derived from those positions by the game package.
//
// Constraints:
//   • Names are compared case-sensitively and exactly (no trimming).
//   • A MoveSet never changes after New returns it.

package moves

// MinMoves is the smallest playable move count.
const MinMoves = 3

// MoveSet is an ordered, validated collection of unique move names.
// The zero value is an empty set and is not playable.
type MoveSet struct {
	names []string
}

// New validates names and returns a MoveSet holding a private copy of them.
func New(names []string) (MoveSet, error) {
	if err := Validate(names); err != nil {
		return MoveSet{}, err
	}
	cp := append([]string(nil), names...)
	return MoveSet{names: cp}, nil
}

// Len returns the number of moves.
func (s MoveSet) Len() int { return len(s.names) }

// Name returns the move name at index i. It panics if i is out of range.
func (s MoveSet) Name(i int) string { return s.names[i] }

// Names returns a copy of the move names in order.
func (s MoveSet) Names() []string {
	return append([]string(nil), s.names...)
}
