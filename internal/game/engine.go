// internal/game/engine.go
//
// Core game engine for a single session against the computer.
// Responsibilities:
//   - Validate the move set before anything secret exists.
//   - Pick the computer's move from an injected random source.
//   - Commit to that move (HMAC) before the player chooses.
//   - Resolve the player's move and reveal the key afterwards.
//
// Notes:
//   - A session is played exactly once; Play after completion is an error.
//   - The key never leaves the session except inside the Result of Play.
package game

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/freer4an/rpc-game-nodejs/internal/fairness"
	"github.com/freer4an/rpc-game-nodejs/internal/moves"
)

// ErrSessionFinished is returned when Play is called on a completed session.
var ErrSessionFinished = errors.New("session finished")

// Session holds the state of one game.
type Session struct {
	set      moves.MoveSet
	table    Table
	botMove  int
	commit   *fairness.Commitment
	finished bool
}

// PickSecretMove returns a uniformly random index into set, read from r.
// A nil reader means crypto/rand.
func PickSecretMove(set moves.MoveSet, r io.Reader) (int, error) {
	if set.Len() == 0 {
		return 0, errors.New("empty move set")
	}
	if r == nil {
		r = rand.Reader
	}
	n, err := rand.Int(r, big.NewInt(int64(set.Len())))
	if err != nil {
		return 0, fmt.Errorf("pick move: %w", err)
	}
	return int(n.Int64()), nil
}

// NewSession validates names, picks the computer's move and commits to it.
// On a validation error no move is picked and no key is generated; the
// returned error matches moves.ErrInvalidMoveCount or moves.ErrDuplicateMoves.
// A zero keySize means fairness.DefaultKeyBytes.
func NewSession(names []string, r io.Reader, keySize int) (*Session, error) {
	set, err := moves.New(names)
	if err != nil {
		return nil, err
	}
	if keySize == 0 {
		keySize = fairness.DefaultKeyBytes
	}
	bot, err := PickSecretMove(set, r)
	if err != nil {
		return nil, err
	}
	c, err := fairness.Commit(r, set.Name(bot), keySize)
	if err != nil {
		return nil, fmt.Errorf("commit move: %w", err)
	}
	return &Session{
		set:     set,
		table:   BuildTable(set),
		botMove: bot,
		commit:  c,
	}, nil
}

// MAC is the commitment to show before the player moves.
func (s *Session) MAC() string { return s.commit.MAC }

// Moves returns the validated move set.
func (s *Session) Moves() moves.MoveSet { return s.set }

// Table returns the relation table for the help display.
func (s *Session) Table() Table { return s.table }

// Play locks in the player's move (a zero-based index), resolves it against
// the computer's move and reveals the key.
// An out of range index returns a *SelectionError and leaves the session
// untouched.
func (s *Session) Play(user int) (Result, error) {
	if s.finished {
		return Result{}, ErrSessionFinished
	}
	if user < 0 || user >= s.set.Len() {
		return Result{}, &SelectionError{Input: fmt.Sprint(user + 1), Max: s.set.Len()}
	}
	s.finished = true
	return Result{
		UserMove: s.set.Name(user),
		BotMove:  s.set.Name(s.botMove),
		Verdict:  DetermineWinner(user, s.botMove, s.set.Len()),
		MAC:      s.commit.MAC,
		Key:      s.commit.Key(),
	}, nil
}
