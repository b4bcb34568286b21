package rpc

import (
	"crypto/ed25519"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ruizhaoz1/cita-cli/internal/hasher"
	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

const (
	// DefaultQuota is applied when the caller passes no quota override.
	DefaultQuota = 10_000_000

	// blockLimit bounds how long a submitted transaction stays valid.
	blockLimit = 88
)

// Transaction is the unsigned transaction body. Field order is the wire
// order, it must not change.
type Transaction struct {
	To              string
	Nonce           string
	Quota           uint64
	ValidUntilBlock uint64
	Data            []byte
	Value           []byte
	ChainID         uint32
	Version         uint32
}

type signedTransaction struct {
	Transaction []byte
	Signature   []byte
	Crypto      uint32
}

// NewTransaction builds an unsigned transaction against the current head.
// quota == 0 means no override and resolves to DefaultQuota.
func NewTransaction(to string, data []byte, quota, height uint64, chainID, version uint32) *Transaction {
	if quota == 0 {
		quota = DefaultQuota
	}
	return &Transaction{
		To:              to,
		Nonce:           uuid.New().String(),
		Quota:           quota,
		ValidUntilBlock: height + blockLimit,
		Data:            data,
		Value:           make([]byte, 32),
		ChainID:         chainID,
		Version:         version,
	}
}

// Sign serializes the transaction, hashes it with the selected scheme and
// signs with the matching signature algorithm: secp256k1 for sha3, ed25519
// for blake2b.
func (tx *Transaction) Sign(algorithm hasher.Algorithm, key *validator.PrivateKey) ([]byte, error) {
	body, err := rlp.EncodeToBytes(tx)
	if err != nil {
		return nil, errors.Wrap(err, "encode transaction")
	}
	hash := algorithm.Hash(body)

	var sig []byte
	switch algorithm {
	case hasher.Blake2b:
		sig, err = signEd25519(hash, key.Bytes)
	default:
		sig, err = signSecp256k1(hash, key.Bytes)
	}
	if err != nil {
		return nil, err
	}

	return rlp.EncodeToBytes(&signedTransaction{
		Transaction: body,
		Signature:   sig,
		Crypto:      0,
	})
}

func signSecp256k1(hash, key []byte) ([]byte, error) {
	if len(key) != 32 {
		return nil, errors.Wrapf(validator.ErrInvalidKey, "secp256k1 key must be 32 bytes, got %d", len(key))
	}
	priv, err := crypto.ToECDSA(key)
	if err != nil {
		return nil, errors.Wrap(err, "load secp256k1 key")
	}
	sig, err := crypto.Sign(hash, priv)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return sig, nil
}

// signEd25519 produces signature || public key, the verifier needs both.
func signEd25519(hash, key []byte) ([]byte, error) {
	var priv ed25519.PrivateKey
	switch len(key) {
	case ed25519.SeedSize:
		priv = ed25519.NewKeyFromSeed(key)
	case ed25519.PrivateKeySize:
		priv = ed25519.PrivateKey(key)
	default:
		return nil, errors.Wrapf(validator.ErrInvalidKey, "ed25519 key must be %d or %d bytes, got %d",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(key))
	}
	sig := ed25519.Sign(priv, hash)
	return append(sig, priv.Public().(ed25519.PublicKey)...), nil
}
