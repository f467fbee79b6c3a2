package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct horse", "hash must not embed the plaintext")

	assert.True(t, svc.Verify(hash, "correct horse battery staple"))
	assert.False(t, svc.Verify(hash, "wrong password"))
	assert.False(t, svc.Verify("not-a-hash", "correct horse battery staple"))
}

func TestPasswordService_HashesDiffer(t *testing.T) {
	svc := NewPasswordService()

	h1, err := svc.Hash("same password")
	require.NoError(t, err)
	h2, err := svc.Hash("same password")
	require.NoError(t, err)

	// bcrypt salts per call
	assert.NotEqual(t, h1, h2)
}
