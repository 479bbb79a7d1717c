// Package fairness implements the commit-reveal scheme that binds the
// computer's move before the player chooses.
//
// The computer publishes HMAC-SHA3-256(key, move) up front and reveals key
// once the player's move is locked, so anyone can recompute the digest.
package fairness

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

const (
	// DefaultKeyBytes is the amount of entropy drawn for each key.
	DefaultKeyBytes = 32
	// MinKeyBytes keeps keys at 256 bits or more.
	MinKeyBytes = 32
)

// ErrKeyTooShort is returned when fewer than MinKeyBytes are requested.
var ErrKeyTooShort = errors.New("key size below 32 bytes")

// GenerateSecretKey reads size random bytes from r and returns them as
// lowercase hex. A nil reader means crypto/rand.
func GenerateSecretKey(r io.Reader, size int) (string, error) {
	if size < MinKeyBytes {
		return "", fmt.Errorf("%w: %d", ErrKeyTooShort, size)
	}
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ComputeMAC returns the hex HMAC-SHA3-256 of message. The key string's
// bytes are the HMAC key, so the printed key can be pasted into any HMAC
// calculator as text.
func ComputeMAC(key, message string) string {
	return hex.EncodeToString(sum(key, message))
}

// Verify reports whether mac is the digest of message under key.
func Verify(key, message, mac string) bool {
	want, err := hex.DecodeString(mac)
	if err != nil {
		return false
	}
	return hmac.Equal(sum(key, message), want)
}

func sum(key, message string) []byte {
	h := hmac.New(sha3.New256, []byte(key))
	h.Write([]byte(message))
	return h.Sum(nil)
}
