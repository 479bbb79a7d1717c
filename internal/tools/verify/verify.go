// Package verify recomputes a game commitment from its revealed key.
package verify

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/freer4an/rpc-game-nodejs/internal/fairness"
)

// ErrMismatch is returned when the HMAC does not match the key and move.
var ErrMismatch = errors.New("hmac mismatch")

// Config holds the values to check.
type Config struct {
	Key  string
	MAC  string
	Move string
}

// ParseConfig parses flags into a Config. The move is the single
// positional argument.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Key, "key", "", "revealed HMAC key")
	fs.StringVar(&cfg.MAC, "hmac", "", "HMAC shown before your move")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() != 1 {
		return Config{}, fmt.Errorf("expected exactly one move, got %d", fs.NArg())
	}
	cfg.Move = fs.Arg(0)
	return cfg, nil
}

// Run checks the commitment and writes the outcome to out.
func Run(cfg Config, out io.Writer) error {
	if cfg.Key == "" || cfg.MAC == "" {
		return errors.New("key and hmac are required")
	}
	if out == nil {
		return errors.New("output is required")
	}
	mac := strings.TrimSpace(cfg.MAC)
	if !fairness.Verify(cfg.Key, cfg.Move, mac) {
		return fmt.Errorf("%w: expected %s for move %q", ErrMismatch, fairness.ComputeMAC(cfg.Key, cfg.Move), cfg.Move)
	}
	_, err := fmt.Fprintf(out, "OK: HMAC matches move %q\n", cfg.Move)
	return err
}
