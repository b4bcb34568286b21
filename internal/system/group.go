package system

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// GroupClient wraps a group contract instance. Groups are deployed per
// instance, so every method takes the instance address.
type GroupClient struct {
	contractClient
}

func NewGroup(client *rpc.Client) *GroupClient {
	return &GroupClient{contractClient{client: client}}
}

// GroupInfo is the decoded result of queryInfo.
type GroupInfo struct {
	Name     string           `json:"name"`
	Accounts []common.Address `json:"accounts"`
}

func (c *GroupClient) QueryInfo(group common.Address, height string) (*GroupInfo, error) {
	out, err := c.callAt(group.Hex(), "queryInfo()", nil, arguments(typBytes32, typAddressSlice), height)
	if err != nil {
		return nil, err
	}
	return &GroupInfo{
		Name:     bytes32ToString(out[0].([32]byte)),
		Accounts: out[1].([]common.Address),
	}, nil
}

func (c *GroupClient) QueryName(group common.Address, height string) (string, error) {
	out, err := c.callAt(group.Hex(), "queryName()", nil, arguments(typBytes32), height)
	if err != nil {
		return "", err
	}
	return bytes32ToString(out[0].([32]byte)), nil
}

func (c *GroupClient) QueryAccounts(group common.Address, height string) ([]common.Address, error) {
	out, err := c.callAt(group.Hex(), "queryAccounts()", nil, arguments(typAddressSlice), height)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}

func (c *GroupClient) QueryChild(group common.Address, height string) ([]common.Address, error) {
	out, err := c.callAt(group.Hex(), "queryChild()", nil, arguments(typAddressSlice), height)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}

func (c *GroupClient) QueryChildLength(group common.Address, height string) (*big.Int, error) {
	out, err := c.callAt(group.Hex(), "queryChildLength()", nil, arguments(typUint256), height)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (c *GroupClient) QueryParent(group common.Address, height string) (common.Address, error) {
	out, err := c.callAt(group.Hex(), "queryParent()", nil, arguments(typAddress), height)
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (c *GroupClient) InGroup(group, account common.Address, height string) (bool, error) {
	out, err := c.callAt(group.Hex(), "inGroup(address)", arguments(typAddress), arguments(typBool), height, account)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}
