package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			email:    "a@x.com",
			password: "pw123",
		},
		{
			name:     "empty email",
			email:    "",
			password: "pw123",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "malformed email",
			email:    "not-an-email",
			password: "pw123",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email missing domain dot",
			email:    "a@xcom",
			password: "pw123",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "empty password",
			email:    "a@x.com",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
		{
			name:     "password beyond bcrypt limit",
			email:    "a@x.com",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.password, user.Password)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only a hash.
	user := &User{
		Email:          "a@x.com",
		HashedPassword: "$2a$12$somethinghashed",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
