package system

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

func TestSelector(t *testing.T) {
	// well-known solidity selectors
	assert.Equal(t, "60fe47b1", hex.EncodeToString(selector("set(uint256)")))
	assert.Equal(t, "a9059cbb", hex.EncodeToString(selector("transfer(address,uint256)")))
}

func TestPackCall(t *testing.T) {
	addr, err := validator.ParseAddress("0x4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523")
	require.Nil(t, err)

	data, err := packCall("isAdmin(address)", arguments(typAddress), addr)
	require.Nil(t, err)
	require.Len(t, data, 4+32)
	assert.Equal(t, selector("isAdmin(address)"), data[:4])
	// address is right-aligned in its 32-byte slot
	assert.Equal(t, addr.Bytes(), data[4+12:])
}

func TestNameBytes32RoundTrip(t *testing.T) {
	raw := nameToBytes32("rootGroup")
	assert.Equal(t, "rootGroup", bytes32ToString(raw))

	// over-long names are truncated to the slot size
	long := nameToBytes32("0123456789012345678901234567890123456789")
	assert.Len(t, bytes32ToString(long), 32)
}

func TestParseFunctionHash(t *testing.T) {
	fn, err := parseFunctionHash("0x60fe47b1")
	require.Nil(t, err)
	assert.Equal(t, [4]byte{0x60, 0xfe, 0x47, 0xb1}, fn)

	_, err = parseFunctionHash("0x60fe47b1ff")
	assert.True(t, errors.Is(err, validator.ErrInvalidFormat))
	_, err = parseFunctionHash("nothex")
	assert.True(t, errors.Is(err, validator.ErrInvalidFormat))
}

func TestSplitAddresses(t *testing.T) {
	list, err := splitAddresses("0x4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523, 0x50ad045b0dff28446c1025c742a03b22fd23925a")
	require.Nil(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "50ad045b0dff28446c1025c742a03b22fd23925a", hex.EncodeToString(list[1].Bytes()))

	_, err = splitAddresses("0x4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523,oops")
	assert.True(t, errors.Is(err, validator.ErrInvalidFormat))
}

func TestSplitFunctionHashes(t *testing.T) {
	fns, err := splitFunctionHashes("0x60fe47b1,0xa9059cbb")
	require.Nil(t, err)
	require.Len(t, fns, 2)
	assert.Equal(t, []string{"0x60fe47b1", "0xa9059cbb"}, functionHashesToHex(fns))
}
