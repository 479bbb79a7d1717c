package moves

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidMoveCount reports a move list that is too short or even-sized.
	ErrInvalidMoveCount = errors.New("invalid move count")
	// ErrDuplicateMoves reports a move list with repeated names.
	ErrDuplicateMoves = errors.New("duplicate moves")
)

// CountError carries the required and actual move counts.
type CountError struct {
	Required int
	Actual   int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("at least %d moves and an odd number of them are required, got %d", e.Required, e.Actual)
}

func (e *CountError) Is(target error) bool { return target == ErrInvalidMoveCount }

// DuplicateError lists every name that appears more than once.
type DuplicateError struct {
	Names []string
}

func (e *DuplicateError) Error() string {
	return "duplicate moves found: " + strings.Join(e.Names, ", ")
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicateMoves }

// Validate checks a move list. The count rule is checked before duplicates,
// so an even-sized list with repeats reports ErrInvalidMoveCount.
func Validate(names []string) error {
	if n := len(names); n < MinMoves || n%2 == 0 {
		return &CountError{Required: MinMoves, Actual: n}
	}
	if dups := findDuplicates(names); len(dups) > 0 {
		return &DuplicateError{Names: dups}
	}
	return nil
}

// findDuplicates returns each repeated name once, in order of first repetition.
func findDuplicates(names []string) []string {
	seen := make(map[string]int, len(names))
	var out []string
	for _, w := range names {
		seen[w]++
		if seen[w] == 2 {
			out = append(out, w)
		}
	}
	return out
}
