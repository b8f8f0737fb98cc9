package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	s1, err := GenerateSecret()
	require.NoError(t, err)
	s2, err := GenerateSecret()
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2, "секреты должны быть уникальными")

	raw, err := base64.RawURLEncoding.DecodeString(s1)
	require.NoError(t, err)
	assert.Len(t, raw, SecretSize)
}

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)
}

func TestHashSecret(t *testing.T) {
	t.Run("successful hash", func(t *testing.T) {
		hash, salt, err := HashSecret("device-secret")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEmpty(t, salt)

		hashBytes, err := base64.StdEncoding.DecodeString(hash)
		require.NoError(t, err)
		assert.Len(t, hashBytes, Argon2KeyLen)
	})

	t.Run("same secret gives different hashes", func(t *testing.T) {
		h1, s1, err := HashSecret("device-secret")
		require.NoError(t, err)
		h2, s2, err := HashSecret("device-secret")
		require.NoError(t, err)

		assert.NotEqual(t, s1, s2)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("empty secret", func(t *testing.T) {
		_, _, err := HashSecret("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret cannot be empty")
	})
}

func TestVerifySecret(t *testing.T) {
	hash, salt, err := HashSecret("correct-secret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		hash    string
		salt    string
		wantErr error
		errMsg  string
	}{
		{name: "valid secret", secret: "correct-secret", hash: hash, salt: salt},
		{name: "wrong secret", secret: "wrong-secret", hash: hash, salt: salt, wantErr: ErrSecretMismatch},
		{name: "empty secret", secret: "", hash: hash, salt: salt, errMsg: "secret cannot be empty"},
		{name: "bad salt encoding", secret: "correct-secret", hash: hash, salt: "!!!", errMsg: "failed to decode salt"},
		{name: "short salt", secret: "correct-secret", hash: hash, salt: base64.StdEncoding.EncodeToString([]byte("short")), errMsg: "salt must be"},
		{name: "bad hash encoding", secret: "correct-secret", hash: "!!!", salt: salt, errMsg: "failed to decode hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySecret(tt.secret, tt.hash, tt.salt)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
			}
		})
	}
}
