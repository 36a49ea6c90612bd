package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes and verifies passwords with bcrypt.
type Bcrypt struct {
	Cost int
}

// New returns a hasher using bcrypt.DefaultCost.
func New() Bcrypt {
	return Bcrypt{Cost: bcrypt.DefaultCost}
}

// Hash returns the digest to store for plain.
func (b Bcrypt) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password must not be empty")
	}
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest.
func (b Bcrypt) Verify(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
