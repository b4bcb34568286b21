package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	a, err := Parse("sha3")
	require.Nil(t, err)
	assert.Equal(t, Sha3, a)

	a, err = Parse("blake2b")
	require.Nil(t, err)
	assert.Equal(t, Blake2b, a)

	_, err = Parse("sm3")
	assert.NotNil(t, err)
}

func TestHash(t *testing.T) {
	data := []byte("cita")

	h1 := Sha3.Hash(data)
	h2 := Blake2b.Hash(data)
	assert.Len(t, h1, 32)
	assert.Len(t, h2, 32)
	assert.NotEqual(t, h1, h2)

	// deterministic
	assert.Equal(t, h1, Sha3.Hash(data))
	assert.Equal(t, h2, Blake2b.Hash(data))
}
