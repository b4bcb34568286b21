package validator

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruizhaoz1/cita-cli/internal/hasher"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523")
	require.Nil(t, err)
	assert.Equal(t, "4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523", hex.EncodeToString(addr.Bytes()))

	// prefix is optional
	bare, err := ParseAddress("4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523")
	require.Nil(t, err)
	assert.Equal(t, addr, bare)
}

func TestParseAddressRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"0x",
		"0x1234",
		"0x4b5ae4567ad5d9fb92bc9afd6a657e6fa13a252345", // 21 bytes
		"0xzz5ae4567ad5d9fb92bc9afd6a657e6fa13a2523",
		"not an address",
	}
	for _, c := range cases {
		_, err := ParseAddress(c)
		assert.True(t, errors.Is(err, ErrInvalidFormat), "input %q", c)
	}
}

func TestIsHex(t *testing.T) {
	assert.Nil(t, IsHex("0x60fe47b1"))
	assert.Nil(t, IsHex("60fe47b1"))
	// length beyond 4 or 32 bytes is fine, only syntax is checked here
	assert.Nil(t, IsHex("0x"+strings.Repeat("ab", 48)))

	assert.True(t, errors.Is(IsHex(""), ErrInvalidFormat))
	assert.True(t, errors.Is(IsHex("0x123"), ErrInvalidFormat))
	assert.True(t, errors.Is(IsHex("0xgg"), ErrInvalidFormat))
}

func TestParseU64(t *testing.T) {
	v, err := ParseU64("10000000")
	require.Nil(t, err)
	assert.Equal(t, uint64(10000000), v)

	v, err = ParseU64("18446744073709551615")
	require.Nil(t, err)
	assert.Equal(t, uint64(18446744073709551615), v)

	for _, c := range []string{"-1", "18446744073709551616", "1.5", "abc", ""} {
		_, err := ParseU64(c)
		assert.True(t, errors.Is(err, ErrInvalidFormat), "input %q", c)
	}
}

func TestParsePrivateKey(t *testing.T) {
	key, err := ParsePrivateKey("0x"+strings.Repeat("3f", 32), hasher.Sha3)
	require.Nil(t, err)
	assert.Len(t, key.Bytes, 32)

	key, err = ParsePrivateKey(strings.Repeat("3f", 32), hasher.Blake2b)
	require.Nil(t, err)
	assert.Len(t, key.Bytes, 32)

	key, err = ParsePrivateKey(strings.Repeat("3f", 64), hasher.Blake2b)
	require.Nil(t, err)
	assert.Len(t, key.Bytes, 64)

	for _, c := range []string{"", "0x12", strings.Repeat("3f", 31), strings.Repeat("zz", 32)} {
		_, err := ParsePrivateKey(c, hasher.Sha3)
		assert.True(t, errors.Is(err, ErrInvalidKey), "input %q", c)
	}
}

func TestParsePrivateKeyLengthFollowsScheme(t *testing.T) {
	// a 64-byte key only fits the ed25519 scheme
	_, err := ParsePrivateKey(strings.Repeat("3f", 64), hasher.Sha3)
	assert.True(t, errors.Is(err, ErrInvalidKey))

	_, err = ParsePrivateKey(strings.Repeat("3f", 48), hasher.Blake2b)
	assert.True(t, errors.Is(err, ErrInvalidKey))
}

func TestParseHeight(t *testing.T) {
	h, err := ParseHeight("latest")
	require.Nil(t, err)
	assert.Equal(t, "latest", h)

	h, err = ParseHeight("100")
	require.Nil(t, err)
	assert.Equal(t, "100", h)

	for _, c := range []string{"", "-5", "0x64", "pending", "LATEST"} {
		_, err := ParseHeight(c)
		assert.True(t, errors.Is(err, ErrInvalidHeight), "input %q", c)
	}
}

func TestParseBool(t *testing.T) {
	v, err := ParseBool("true")
	require.Nil(t, err)
	assert.True(t, v)

	_, err = ParseBool("notaboolean")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}
