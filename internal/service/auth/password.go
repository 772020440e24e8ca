package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext equivalent.
	// Returns nil on success, or an error on failure (e.g., mismatch).
	Compare(hashedPassword, password string) error

	// CompareDummy runs a comparison against a throwaway hash of the same
	// cost class. Callers invoke it on the absent-user path so that path
	// burns the same work as a real mismatch and stays timing-uniform.
	// It always returns a mismatch error.
	CompareDummy(password string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct {
	dummyHash []byte
}

// NewBcryptVerifier creates a new BcryptVerifier. The dummy hash used for
// absent-user comparisons is generated once here at the given cost, from a
// random input nobody knows.
func NewBcryptVerifier(cost int) (*BcryptVerifier, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		return nil, err
	}
	return &BcryptVerifier{dummyHash: dummy}, nil
}

// Compare implements the PasswordVerifier interface using bcrypt's
// constant-time comparator.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// CompareDummy implements the PasswordVerifier interface.
func (v *BcryptVerifier) CompareDummy(password string) error {
	if err := bcrypt.CompareHashAndPassword(v.dummyHash, []byte(password)); err != nil {
		return err
	}
	// A random UUID preimage cannot match, but never report success here.
	return bcrypt.ErrMismatchedHashAndPassword
}
