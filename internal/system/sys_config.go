package system

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// SysConfigClient wraps the chain configuration contract.
type SysConfigClient struct {
	contractClient
}

func NewSysConfig(client *rpc.Client) *SysConfigClient {
	return &SysConfigClient{contractClient{client: client, address: SysConfigAddress}}
}

func (c *SysConfigClient) GetChainOwner(height string) (common.Address, error) {
	out, err := c.call("getChainOwner()", nil, arguments(typAddress), height)
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (c *SysConfigClient) GetDelayBlockNumber(height string) (*big.Int, error) {
	out, err := c.call("getDelayBlockNumber()", nil, arguments(typUint256), height)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (c *SysConfigClient) GetFeeBackPlatformCheck(height string) (bool, error) {
	out, err := c.call("getFeeBackPlatformCheck()", nil, arguments(typBool), height)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

// GetEconomicalModel returns 0 for the quota model, 1 for the charge model.
func (c *SysConfigClient) GetEconomicalModel(height string) (uint8, error) {
	out, err := c.call("getEconomicalModel()", nil, arguments(typUint8), height)
	if err != nil {
		return 0, err
	}
	return out[0].(uint8), nil
}

func (c *SysConfigClient) GetPermissionCheck(height string) (bool, error) {
	out, err := c.call("getPermissionCheck()", nil, arguments(typBool), height)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (c *SysConfigClient) GetQuotaCheck(height string) (bool, error) {
	out, err := c.call("getQuotaCheck()", nil, arguments(typBool), height)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (c *SysConfigClient) SetChainName(name string, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setChainName(string)", arguments(typString), quota, name)
}

func (c *SysConfigClient) SetOperator(operator string, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setOperator(string)", arguments(typString), quota, operator)
}

func (c *SysConfigClient) SetWebsite(website string, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setWebsite(string)", arguments(typString), quota, website)
}
