package system

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// QuotaManagerClient wraps the quota-limit contract (BQL: block quota limit,
// AQL: account quota limit).
type QuotaManagerClient struct {
	contractClient
}

func NewQuotaManager(client *rpc.Client) *QuotaManagerClient {
	return &QuotaManagerClient{contractClient{client: client, address: QuotaManagerAddress}}
}

func (c *QuotaManagerClient) GetBQL(height string) (*big.Int, error) {
	out, err := c.call("getBQL()", nil, arguments(typUint256), height)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (c *QuotaManagerClient) GetDefaultAQL(height string) (*big.Int, error) {
	out, err := c.call("getDefaultAQL()", nil, arguments(typUint256), height)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// GetAccounts returns the accounts with a specific quota limit.
func (c *QuotaManagerClient) GetAccounts(height string) ([]common.Address, error) {
	out, err := c.call("getAccounts()", nil, arguments(typAddressSlice), height)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}

// GetQuotas returns the quota limits, index-aligned with GetAccounts.
func (c *QuotaManagerClient) GetQuotas(height string) ([]*big.Int, error) {
	out, err := c.call("getQuotas()", nil, arguments(typUint256Slice), height)
	if err != nil {
		return nil, err
	}
	return out[0].([]*big.Int), nil
}

func (c *QuotaManagerClient) GetAQL(addr common.Address, height string) (*big.Int, error) {
	out, err := c.call("getAQL(address)", arguments(typAddress), arguments(typUint256), height, addr)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// SetBQL sets the block quota limit. The contract enforces the legal range,
// not this client.
func (c *QuotaManagerClient) SetBQL(quotaLimit uint64, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setBQL(uint256)", arguments(typUint256), quota, new(big.Int).SetUint64(quotaLimit))
}

func (c *QuotaManagerClient) SetDefaultAQL(quotaLimit uint64, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setDefaultAQL(uint256)", arguments(typUint256), quota, new(big.Int).SetUint64(quotaLimit))
}

func (c *QuotaManagerClient) SetAQL(addr common.Address, quotaLimit uint64, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setAQL(address,uint256)", arguments(typAddress, typUint256), quota,
		addr, new(big.Int).SetUint64(quotaLimit))
}
