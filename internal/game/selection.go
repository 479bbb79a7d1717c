package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSelection reports menu input that is neither a move number nor
// a help or exit request.
var ErrInvalidSelection = errors.New("invalid selection")

// SelectionError carries the rejected input and the highest valid number.
type SelectionError struct {
	Input string
	Max   int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid move %q, enter a number from 1 to %d", e.Input, e.Max)
}

func (e *SelectionError) Is(target error) bool { return target == ErrInvalidSelection }

// SelectionKind says what the player asked for.
type SelectionKind int

const (
	SelectMove SelectionKind = iota
	SelectExit
	SelectHelp
)

// Selection is a parsed menu entry. Index is zero-based and only set for
// SelectMove.
type Selection struct {
	Kind  SelectionKind
	Index int
}

// Menu sentinels.
const (
	ExitInput = "0"
	HelpInput = "?"
)

// ParseSelection interprets one line of menu input for a set of total
// moves: "0" exits, "?" asks for help, 1..total picks a move.
func ParseSelection(input string, total int) (Selection, error) {
	s := strings.TrimSpace(input)
	switch s {
	case ExitInput:
		return Selection{Kind: SelectExit}, nil
	case HelpInput:
		return Selection{Kind: SelectHelp}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > total {
		return Selection{}, &SelectionError{Input: s, Max: total}
	}
	return Selection{Kind: SelectMove, Index: n - 1}, nil
}
