package hasher

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Algorithm selects the transaction hashing scheme. It is resolved once per
// process from configuration, the sha3 scheme pairs with secp256k1
// signatures and the blake2b scheme with ed25519.
type Algorithm string

const (
	Sha3    Algorithm = "sha3"
	Blake2b Algorithm = "blake2b"
)

const blake2bKey = "CryptapeCryptape"

// Parse resolves an algorithm name from configuration.
func Parse(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case Sha3:
		return Sha3, nil
	case Blake2b:
		return Blake2b, nil
	default:
		return "", errors.Errorf("unsupported hash algorithm %q, expect %q or %q", s, Sha3, Blake2b)
	}
}

// Hash digests data with the selected scheme.
func (a Algorithm) Hash(data []byte) []byte {
	switch a {
	case Blake2b:
		h, _ := blake2b.New256([]byte(blake2bKey))
		h.Write(data)
		return h.Sum(nil)
	default:
		return crypto.Keccak256(data)
	}
}
