package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedDigest reports a stored digest that bcrypt cannot parse.
var ErrMalformedDigest = errors.New("malformed password digest")

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
}

// NewHasher builds a hasher; costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost returns the work factor used for new digests.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a salted digest of password. Two calls never return the same digest.
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches digest. A mismatch is (false, nil);
// a digest that is not a bcrypt product is (false, ErrMalformedDigest).
func (h *Hasher) Verify(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrMalformedDigest
	}
}
