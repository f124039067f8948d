package account

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier decides how passwords are stored and compared.
type CredentialVerifier interface {
	// Seal turns a password into the form stored on the user record.
	Seal(password string) (string, error)
	// Verify reports whether supplied matches the stored form.
	Verify(stored, supplied string) bool
}

// Plaintext stores passwords verbatim. It matches the demo data and offers
// no protection at all.
type Plaintext struct{}

func (Plaintext) Seal(password string) (string, error) { return password, nil }

func (Plaintext) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// Bcrypt stores bcrypt hashes. Seeded demo users keep plaintext passwords
// and cannot log in under this scheme.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Seal(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (Bcrypt) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// VerifierFor maps a config scheme name onto a verifier.
func VerifierFor(scheme string) (CredentialVerifier, error) {
	switch scheme {
	case "", "plaintext":
		return Plaintext{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	}
	return nil, fmt.Errorf("unknown password scheme %q", scheme)
}
