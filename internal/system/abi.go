package system

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

// ABI types are built programmatically: the system contract interfaces are
// small and fixed, there is no reason to carry JSON ABI files around.
var (
	typAddress      = mustType("address")
	typAddressSlice = mustType("address[]")
	typUint8        = mustType("uint8")
	typUint64       = mustType("uint64")
	typUint64Slice  = mustType("uint64[]")
	typUint256      = mustType("uint256")
	typUint256Slice = mustType("uint256[]")
	typBytes32      = mustType("bytes32")
	typBytes4       = mustType("bytes4")
	typBytes4Slice  = mustType("bytes4[]")
	typBool         = mustType("bool")
	typString       = mustType("string")
	typBytes        = mustType("bytes")
)

func mustType(s string) abi.Type {
	t, err := abi.NewType(s, "", nil)
	if err != nil {
		panic("abi type " + s + ": " + err.Error())
	}
	return t
}

func arguments(types ...abi.Type) abi.Arguments {
	args := make(abi.Arguments, len(types))
	for i, t := range types {
		args[i] = abi.Argument{Type: t}
	}
	return args
}

// selector derives the 4-byte function selector from a canonical signature.
func selector(sig string) []byte {
	return crypto.Keccak256([]byte(sig))[:4]
}

// packCall renders selector-plus-arguments call data.
func packCall(sig string, args abi.Arguments, values ...interface{}) ([]byte, error) {
	packed, err := args.Pack(values...)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s", sig)
	}
	return append(selector(sig), packed...), nil
}

// nameToBytes32 fits a human-readable name into the contract's bytes32 slot.
func nameToBytes32(name string) [32]byte {
	var out [32]byte
	copy(out[:], name)
	return out
}

// bytes32ToString reverses nameToBytes32 for decoded query results.
func bytes32ToString(raw [32]byte) string {
	return strings.TrimRight(string(raw[:]), "\x00")
}

// parseFunctionHash decodes a 4-byte function selector. Hex syntax was
// checked by the validator; the length constraint lives here.
func parseFunctionHash(s string) ([4]byte, error) {
	var out [4]byte
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return out, errors.Wrapf(validator.ErrInvalidFormat, "function hash %q is not hex", s)
	}
	if len(raw) != 4 {
		return out, errors.Wrapf(validator.ErrInvalidFormat, "function hash %q must be 4 bytes, got %d", s, len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

// splitAddresses parses a comma-delimited address list. List flags reach the
// facade as one string; splitting them is a facade concern.
func splitAddresses(s string) ([]common.Address, error) {
	parts := strings.Split(s, ",")
	out := make([]common.Address, 0, len(parts))
	for _, part := range parts {
		addr, err := validator.ParseAddress(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}

// splitFunctionHashes parses a comma-delimited selector list.
func splitFunctionHashes(s string) ([][4]byte, error) {
	parts := strings.Split(s, ",")
	out := make([][4]byte, 0, len(parts))
	for _, part := range parts {
		fn, err := parseFunctionHash(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
	}
	return out, nil
}

// functionHashesToHex renders decoded selectors for presentation.
func functionHashesToHex(raw [][4]byte) []string {
	out := make([]string, len(raw))
	for i, fn := range raw {
		out[i] = "0x" + hex.EncodeToString(fn[:])
	}
	return out
}
