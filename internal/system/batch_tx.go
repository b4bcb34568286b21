package system

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

// BatchTxClient wraps the batched-transaction contract: several encoded
// calls submitted as one transaction.
type BatchTxClient struct {
	contractClient
}

func NewBatchTx(client *rpc.Client) *BatchTxClient {
	return &BatchTxClient{contractClient{client: client, address: BatchTxAddress}}
}

// MultiTxs concatenates the hex-encoded inner transactions (each one
// address + encoded call) and submits them through multiTxs(bytes).
func (c *BatchTxClient) MultiTxs(txCodes []string, quota uint64) (*rpc.TransactResult, error) {
	if len(txCodes) == 0 {
		return nil, errors.Wrap(validator.ErrInvalidFormat, "at least one tx-code is required")
	}
	var payload []byte
	for _, code := range txCodes {
		raw, err := hex.DecodeString(strings.TrimPrefix(code, "0x"))
		if err != nil {
			return nil, errors.Wrapf(validator.ErrInvalidFormat, "tx-code %q is not hex", code)
		}
		payload = append(payload, raw...)
	}
	return c.sendTx("multiTxs(bytes)", arguments(typBytes), quota, payload)
}
