package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freer4an/rpc-game-nodejs/internal/config"
	"github.com/freer4an/rpc-game-nodejs/internal/fairness"
	"github.com/freer4an/rpc-game-nodejs/internal/game"
)

// ExitError is a usage error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed command line.
type Options struct {
	Moves    []string
	KeyBytes int
	LogLevel string
}

// Parse processes command-line arguments on top of cfg. It returns the
// options, a boolean indicating if the program should exit cleanly (help
// was requested), or an *ExitError.
func Parse(args []string, output io.Writer, cfg config.Config) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("rps", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
rps - provably fair rock-paper-scissors with any odd number of moves.

Usage:
  rps [options] MOVE MOVE MOVE [MOVE...]

The computer picks its move first and prints an HMAC of it. After you move,
the HMAC key is revealed so you can check the computer did not cheat
(see rps-verify). Use "--" before move names that start with "-".

Options:
`)
		flagSet.PrintDefaults()
	}

	keyBytes := flagSet.Int("key-bytes", cfg.KeyBytes, "Number of random bytes in the HMAC key (minimum 32).")
	logLevel := flagSet.String("log-level", cfg.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *keyBytes < fairness.MinKeyBytes {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid key-bytes: must be at least %d", fairness.MinKeyBytes)}
	}
	level := strings.ToLower(*logLevel)
	if _, err := zerolog.ParseLevel(level); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: " + err.Error()}
	}

	opts := &Options{
		Moves:    flagSet.Args(),
		KeyBytes: *keyBytes,
		LogLevel: level,
	}
	log.Debug().Int("moves", len(opts.Moves)).Int("keyBytes", opts.KeyBytes).Msg("arguments parsed")
	return opts, false, nil
}

// ExitCode maps a terminal signal to a process exit code.
func ExitCode(sig game.Signal) int {
	if sig.Kind == game.SignalValidationFailed {
		return 1
	}
	return 0
}
