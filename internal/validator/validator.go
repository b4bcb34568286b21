package validator

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/ruizhaoz1/cita-cli/internal/hasher"
)

// Error kinds surfaced to the command layer. Wrapped errors carry the
// offending parameter, callers match with errors.Is.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidKey    = errors.New("invalid private key")
	ErrInvalidHeight = errors.New("invalid height")
)

const (
	addressLength = 20

	// LatestHeight is the default block height for query operations.
	LatestHeight = "latest"
)

// PrivateKey is a validated hex-decoded signing key, length-checked against
// the active signature scheme before any network call.
type PrivateKey struct {
	Bytes []byte
}

func stripHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// ParseAddress validates a 20-byte hex-encoded account address, with or
// without the 0x prefix.
func ParseAddress(s string) (common.Address, error) {
	raw, err := hex.DecodeString(stripHexPrefix(s))
	if err != nil {
		return common.Address{}, errors.Wrapf(ErrInvalidFormat, "address %q is not hex", s)
	}
	if len(raw) != addressLength {
		return common.Address{}, errors.Wrapf(ErrInvalidFormat, "address %q must be %d bytes, got %d", s, addressLength, len(raw))
	}
	return common.BytesToAddress(raw), nil
}

// IsHex validates that the input is hex-encoded. It does not constrain the
// length: function selectors are 4 bytes and block hashes 32, the contract
// facade owns those semantics.
func IsHex(s string) error {
	raw := stripHexPrefix(s)
	if len(raw) == 0 || len(raw)%2 != 0 {
		return errors.Wrapf(ErrInvalidFormat, "%q is not hex", s)
	}
	if _, err := hex.DecodeString(raw); err != nil {
		return errors.Wrapf(ErrInvalidFormat, "%q is not hex", s)
	}
	return nil
}

// ParseU64 validates a decimal unsigned 64-bit integer.
func ParseU64(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidFormat, "%q is not a u64", s)
	}
	return v, nil
}

// ParsePrivateKey validates a hex-encoded signing key against the active
// signature scheme: sha3 pairs with a 32-byte secp256k1 key, blake2b with an
// ed25519 seed (32 bytes) or expanded key (64 bytes).
func ParsePrivateKey(s string, algorithm hasher.Algorithm) (*PrivateKey, error) {
	raw, err := hex.DecodeString(stripHexPrefix(s))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidKey, "private key is not hex")
	}
	switch algorithm {
	case hasher.Blake2b:
		if len(raw) != 32 && len(raw) != 64 {
			return nil, errors.Wrapf(ErrInvalidKey, "ed25519 key must be 32 or 64 bytes, got %d", len(raw))
		}
	default:
		if len(raw) != 32 {
			return nil, errors.Wrapf(ErrInvalidKey, "secp256k1 key must be 32 bytes, got %d", len(raw))
		}
	}
	return &PrivateKey{Bytes: raw}, nil
}

// ParseHeight validates a block height: the literal "latest" or a decimal
// non-negative integer.
func ParseHeight(s string) (string, error) {
	if s == LatestHeight {
		return s, nil
	}
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return "", errors.Wrapf(ErrInvalidHeight, "height %q is neither %q nor a decimal number", s, LatestHeight)
	}
	return s, nil
}

// ParseBool validates a boolean literal.
func ParseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.Wrapf(ErrInvalidFormat, "%q is not a boolean", s)
	}
	return v, nil
}
