package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDigestAndCompare(t *testing.T) {
	store := NewStore(bcrypt.MinCost)

	digest, err := store.Digest("foobar")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "foobar", digest)

	assert.True(t, store.Compare(digest, "foobar"))
	assert.False(t, store.Compare(digest, "foobaz"))
}

func TestCompareEmptyDigest(t *testing.T) {
	store := NewStore(bcrypt.MinCost)
	assert.False(t, store.Compare("", "anything"))
	assert.False(t, store.Compare("", ""))
}

func TestNewTokenIsOpaqueAndFresh(t *testing.T) {
	store := NewStore(bcrypt.MinCost)
	a := store.NewToken()
	b := store.NewToken()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestNewStoreClampsCost(t *testing.T) {
	// out-of-range costs fall back to the bcrypt default
	store := NewStore(99)
	digest, err := store.Digest("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
