package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	h := Bcrypt{Cost: bcrypt.MinCost}

	digest, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", digest)

	assert.True(t, h.Verify(digest, "secret"))
	assert.False(t, h.Verify(digest, "Secret"))
	assert.False(t, h.Verify("not-a-digest", "secret"))

	other, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other, "salt should differ per hash")

	_, err = h.Hash("")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, New().Cost)
}
