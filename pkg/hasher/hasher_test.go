package hasher_test

import (
	"testing"

	"pegawai/pkg/hasher"

	"github.com/stretchr/testify/assert"
)

func TestHashProducesDistinctVerifiableDigests(t *testing.T) {
	digest1, err := hasher.Hash("password123")
	assert.NoError(t, err)
	digest2, err := hasher.Hash("password123")
	assert.NoError(t, err)

	// Each digest embeds a fresh random salt.
	assert.NotEqual(t, digest1, digest2)
	assert.True(t, hasher.Verify("password123", digest1))
	assert.True(t, hasher.Verify("password123", digest2))
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	digest, err := hasher.Hash("password123")
	assert.NoError(t, err)

	assert.False(t, hasher.Verify("wrongpassword", digest))
	assert.False(t, hasher.Verify("", digest))
	assert.False(t, hasher.Verify("password123", "not-a-digest"))
}
