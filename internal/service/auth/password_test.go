package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifierCompare(t *testing.T) {
	t.Parallel()

	verifier, err := NewBcryptVerifier(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, verifier.Compare(string(hash), "pw123"))
	assert.Error(t, verifier.Compare(string(hash), "wrong"))
}

func TestHashesAreSaltedAndNeverPlaintext(t *testing.T) {
	t.Parallel()

	h1, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)

	// Per-record salt: identical passwords must not share a hash.
	assert.NotEqual(t, string(h1), string(h2))
	assert.NotEqual(t, "pw123", string(h1))
	assert.NotEqual(t, "pw123", string(h2))
}

func TestCompareDummyAlwaysFails(t *testing.T) {
	t.Parallel()

	verifier, err := NewBcryptVerifier(bcrypt.MinCost)
	require.NoError(t, err)

	// The dummy comparison exists to equalize timing on the absent-user
	// path; it must never report a match, whatever the input.
	for _, pw := range []string{"", "pw123", "a-very-long-password-attempt"} {
		assert.Error(t, verifier.CompareDummy(pw))
	}
}
