package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("Passw0rd!")
	assert.NoError(t, err)
	second, err := HashPassword("Passw0rd!")
	assert.NoError(t, err)

	// Same password, different salts, different hashes
	assert.NotEqual(t, first, second)

	ok, err := VerifyPassword("Passw0rd!", first)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = VerifyPassword("Passw0rd!", second)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("Passw0rd!")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "Passw0rd!")
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("Passw0rd!")
	assert.NoError(t, err)

	ok, err := VerifyPassword("wrong-pass1!", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=0,t=0,p=0$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!$aGFzaA",
	}
	for _, encoded := range cases {
		ok, err := VerifyPassword("Passw0rd!", encoded)
		assert.Error(t, err, "hash %q", encoded)
		assert.False(t, ok)
	}
}
