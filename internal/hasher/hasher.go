package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes secrets such as passwords, card numbers and CVCs.
// Every call to Hash uses a fresh random salt.
type Bcrypt struct {
	cost int
}

// Opt configures a Bcrypt hasher.
type Opt func(*Bcrypt)

// WithCost overrides bcrypt.DefaultCost.
func WithCost(cost int) Opt {
	return func(h *Bcrypt) {
		h.cost = cost
	}
}

// New creates a new Bcrypt hasher.
func New(opts ...Opt) *Bcrypt {
	h := &Bcrypt{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns the salted bcrypt digest of secret.
func (h *Bcrypt) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether secret matches hash. Malformed hashes never match.
func (h *Bcrypt) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
