package password

import (
	"strings"
	"testing"

	"vet-clinic/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, h.Compare(hash, "s3cret!"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), ErrMismatch)
	assert.ErrorIs(t, h.Compare("not-a-hash", "s3cret!"), ErrMismatch)
}

func TestNewHasher_OutOfRangeCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(99).cost)
	assert.Equal(t, 12, NewHasher(12).cost)
}

func TestHasher_TooLongIsInvalidInput(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = h.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)
}
