package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArgonParams = ArgonParams{Memory: 8 * 1024, Time: 1, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("granite-rocks", testArgonParams)
	require.NoError(t, err)
	assert.Contains(t, encoded, "$argon2id$v=19$m=8192,t=1,p=1$")

	ok, err := VerifyPasswordHash("granite-rocks", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPasswordHash("marble-rocks", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeArgon2HashRejectsGarbage(t *testing.T) {
	_, err := DecodeArgon2Hash("not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = DecodeArgon2Hash("$bcrypt$v=19$m=1,t=1,p=1$abc$def")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = DecodeArgon2Hash("$argon2id$v=18$m=1,t=1,p=1$abc$def")
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
}
