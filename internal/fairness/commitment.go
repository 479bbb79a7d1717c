package fairness

import "io"

// Commitment binds a hidden message to a published MAC.
type Commitment struct {
	key string
	MAC string
}

// Commit draws a fresh key from r and computes the MAC of message.
func Commit(r io.Reader, message string, size int) (*Commitment, error) {
	key, err := GenerateSecretKey(r, size)
	if err != nil {
		return nil, err
	}
	return &Commitment{key: key, MAC: ComputeMAC(key, message)}, nil
}

// Key returns the secret key. Only hand it out after the other party's move
// is fixed.
func (c *Commitment) Key() string { return c.key }
