// Package password hashes and verifies user passwords with bcrypt.
// Hashes are salted per call, so two hashes of the same password differ.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used in production.
const DefaultCost = 12

// Hasher produces and checks salted one-way password hashes.
type Hasher struct {
	cost int
}

// New returns a Hasher with the production work factor.
func New() *Hasher {
	return &Hasher{cost: DefaultCost}
}

// NewWithCost returns a Hasher with an explicit work factor. Tests use
// bcrypt.MinCost to keep hashing fast.
func NewWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. It never fails outward:
// a malformed hash or a mismatch both return false.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
