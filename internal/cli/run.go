package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/freer4an/rpc-game-nodejs/internal/game"
	"github.com/freer4an/rpc-game-nodejs/internal/moves"
)

// Run plays one session. It prints the commitment, reads selections from in
// until the player moves or quits, and returns the terminal signal.
// rnd is the random source for the secret move and key (nil means
// crypto/rand). A non-nil error means the session could not run at all.
func Run(opts Options, in io.Reader, out io.Writer, rnd io.Reader) (game.Signal, error) {
	s, err := game.NewSession(opts.Moves, rnd, opts.KeyBytes)
	if err != nil {
		if errors.Is(err, moves.ErrInvalidMoveCount) || errors.Is(err, moves.ErrDuplicateMoves) {
			log.Warn().Err(err).Int("moves", len(opts.Moves)).Msg("move set rejected")
			fmt.Fprintln(out, err)
			return game.ValidationFailed(err), nil
		}
		return game.Signal{}, fmt.Errorf("new session: %w", err)
	}
	log.Debug().Int("moves", s.Moves().Len()).Msg("session created")

	fmt.Fprintf(out, "HMAC: %s\n", s.MAC())
	printMenu(out, s.Moves())

	br := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Your move: ")
		line, tooLong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			log.Debug().Msg("input closed")
			return game.UserRequestedExit(), nil
		}
		if err != nil {
			return game.Signal{}, fmt.Errorf("read move: %w", err)
		}
		if tooLong {
			log.Debug().Msg("selection line too long")
			fmt.Fprintf(out, "Invalid move. Please enter a number from 1 to %d\n", s.Moves().Len())
			continue
		}

		sel, err := game.ParseSelection(line, s.Moves().Len())
		if err != nil {
			log.Debug().Err(err).Msg("invalid selection")
			fmt.Fprintf(out, "Invalid move. Please enter a number from 1 to %d\n", s.Moves().Len())
			continue
		}

		switch sel.Kind {
		case game.SelectHelp:
			if err := printTable(out, s.Table()); err != nil {
				log.Warn().Err(err).Msg("render help table")
			}
		case game.SelectExit:
			log.Debug().Msg("player quit")
			return game.UserRequestedExit(), nil
		case game.SelectMove:
			res, err := s.Play(sel.Index)
			if err != nil {
				return game.Signal{}, err
			}
			printResult(out, res)
			log.Info().Str("verdict", string(res.Verdict)).Msg("session complete")
			return game.SessionComplete(res), nil
		}
	}
}

// maxLineBytes bounds one line of menu input. Longer lines are consumed up
// to their newline and reported as too long.
const maxLineBytes = 4096

// readLine returns the next line from r without its line terminator. A
// final line without a newline is returned as is; io.EOF is only returned
// when nothing was left to read.
func readLine(r *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
		read    bool
	)
	for {
		chunk, err := r.ReadSlice('\n')
		read = read || len(chunk) > 0
		if !tooLong && len(buf)+len(chunk) <= maxLineBytes {
			buf = append(buf, chunk...)
		} else {
			tooLong, buf = true, nil
		}
		switch {
		case err == nil:
			return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && read:
			return strings.TrimRight(string(buf), "\r"), tooLong, nil
		default:
			return "", false, err
		}
	}
}
