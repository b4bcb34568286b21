package system

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// RoleClient wraps a role contract instance.
type RoleClient struct {
	contractClient
}

func NewRole(client *rpc.Client) *RoleClient {
	return &RoleClient{contractClient{client: client}}
}

// RoleInfo is the decoded result of queryRole.
type RoleInfo struct {
	Name        string           `json:"name"`
	Permissions []common.Address `json:"permissions"`
}

func (c *RoleClient) QueryRole(role common.Address, height string) (*RoleInfo, error) {
	out, err := c.callAt(role.Hex(), "queryRole()", nil, arguments(typBytes32, typAddressSlice), height)
	if err != nil {
		return nil, err
	}
	return &RoleInfo{
		Name:        bytes32ToString(out[0].([32]byte)),
		Permissions: out[1].([]common.Address),
	}, nil
}

func (c *RoleClient) QueryName(role common.Address, height string) (string, error) {
	out, err := c.callAt(role.Hex(), "queryName()", nil, arguments(typBytes32), height)
	if err != nil {
		return "", err
	}
	return bytes32ToString(out[0].([32]byte)), nil
}

func (c *RoleClient) QueryPermissions(role common.Address, height string) ([]common.Address, error) {
	out, err := c.callAt(role.Hex(), "queryPermissions()", nil, arguments(typAddressSlice), height)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}

func (c *RoleClient) LengthOfPermissions(role common.Address, height string) (*big.Int, error) {
	out, err := c.callAt(role.Hex(), "lengthOfPermissions()", nil, arguments(typUint256), height)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// InPermissions reports whether the permission is already granted to the
// role.
func (c *RoleClient) InPermissions(role, permission common.Address, height string) (bool, error) {
	out, err := c.callAt(role.Hex(), "inPermissions(address)", arguments(typAddress), arguments(typBool), height, permission)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}
