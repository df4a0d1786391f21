package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")
	id := uuid.New()

	signed, err := codec.Issue("alice", id)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, id.String(), claims.ID)
}

func TestCodecRejectsTamperedToken(t *testing.T) {
	codec := NewCodec("test-secret")

	signed, err := codec.Issue("alice", uuid.New())
	require.NoError(t, err)

	// Flip one character of the signature.
	tampered := []byte(signed)
	last := len(tampered) - 1
	if tampered[last] == 'a' {
		tampered[last] = 'b'
	} else {
		tampered[last] = 'a'
	}

	_, err = codec.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodecRejectsWrongSecret(t *testing.T) {
	signed, err := NewCodec("secret-one").Issue("alice", uuid.New())
	require.NoError(t, err)

	_, err = NewCodec("secret-two").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrInvalid, "token %q", tokenStr)
	}
}
