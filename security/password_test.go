package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	Cost = bcrypt.MinCost

	hashed, err := Hash("Secret1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1!", string(hashed))

	assert.NoError(t, VerifyPassword(string(hashed), "Secret1!"))
	assert.ErrorIs(t, VerifyPassword(string(hashed), "secret1!"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestHashIsSalted(t *testing.T) {
	Cost = bcrypt.MinCost

	first, err := Hash("Secret1!")
	require.NoError(t, err)
	second, err := Hash("Secret1!")
	require.NoError(t, err)

	assert.NotEqual(t, string(first), string(second))
}
