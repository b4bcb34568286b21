package system

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// contractClient is the shared caller under every facade: one fixed contract
// address, one base RPC client, one network call per method.
type contractClient struct {
	client  *rpc.Client
	address string
}

// call packs a read-only invocation, issues it at the given height and
// unpacks the declared return values.
func (c contractClient) call(sig string, ins abi.Arguments, outs abi.Arguments, height string, values ...interface{}) ([]interface{}, error) {
	return c.callAt(c.address, sig, ins, outs, height, values...)
}

// callAt is call against an explicit contract instance; the Group and Role
// contracts are deployed per instance rather than at a fixed address.
func (c contractClient) callAt(address, sig string, ins abi.Arguments, outs abi.Arguments, height string, values ...interface{}) ([]interface{}, error) {
	data, err := packCall(sig, ins, values...)
	if err != nil {
		return nil, err
	}
	raw, err := c.client.CallContract(address, data, height)
	if err != nil {
		return nil, err
	}
	out, err := outs.Unpack(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s return", sig)
	}
	return out, nil
}

// sendTx packs a state-mutating invocation and submits it as one signed
// transaction. quota zero means no override.
func (c contractClient) sendTx(sig string, ins abi.Arguments, quota uint64, values ...interface{}) (*rpc.TransactResult, error) {
	data, err := packCall(sig, ins, values...)
	if err != nil {
		return nil, err
	}
	return c.client.SendTransaction(c.address, data, quota)
}
