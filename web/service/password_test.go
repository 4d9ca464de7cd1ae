package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPassword(t *testing.T) {
	valid := []string{
		"abc123!@",
		"Passw0rd!",
		"00000000!",
		"aaaaaaa1*",
	}
	for _, p := range valid {
		assert.True(t, IsValidPassword(p), "expected %q to pass", p)
	}

	invalid := []string{
		"",
		"short1!",    // length 7
		"abc12345",   // no special char
		"abcdefg!",   // no digit
		"abc 123!@",  // space not allowed
		"abc123!@\n", // control char not allowed
		"pässw0rd!",  // non-ascii not allowed
		"abc123()",   // () outside the special set
		"12345678",   // digits only, no special
		"!@#$%^&*",   // specials only, no digit
	}
	for _, p := range invalid {
		assert.False(t, IsValidPassword(p), "expected %q to fail", p)
	}
}
