package system

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// PermissionClient wraps a permission contract instance.
type PermissionClient struct {
	contractClient
}

func NewPermission(client *rpc.Client) *PermissionClient {
	return &PermissionClient{contractClient{client: client}}
}

// PermissionInfo is the decoded result of queryInfo.
type PermissionInfo struct {
	Name      string           `json:"name"`
	Contracts []common.Address `json:"contracts"`
	Functions []string         `json:"functions"`
}

// InPermission reports whether the contract/function resource belongs to
// this permission.
func (c *PermissionClient) InPermission(permission, contract common.Address, functionHash, height string) (bool, error) {
	fn, err := parseFunctionHash(functionHash)
	if err != nil {
		return false, err
	}
	out, err := c.callAt(permission.Hex(), "inPermission(address,bytes4)",
		arguments(typAddress, typBytes4), arguments(typBool), height, contract, fn)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (c *PermissionClient) QueryInfo(permission common.Address, height string) (*PermissionInfo, error) {
	out, err := c.callAt(permission.Hex(), "queryInfo()", nil,
		arguments(typBytes32, typAddressSlice, typBytes4Slice), height)
	if err != nil {
		return nil, err
	}
	return &PermissionInfo{
		Name:      bytes32ToString(out[0].([32]byte)),
		Contracts: out[1].([]common.Address),
		Functions: functionHashesToHex(out[2].([][4]byte)),
	}, nil
}

func (c *PermissionClient) QueryName(permission common.Address, height string) (string, error) {
	out, err := c.callAt(permission.Hex(), "queryName()", nil, arguments(typBytes32), height)
	if err != nil {
		return "", err
	}
	return bytes32ToString(out[0].([32]byte)), nil
}

// PermissionResource pairs the contracts with their granted selectors.
type PermissionResource struct {
	Contracts []common.Address `json:"contracts"`
	Functions []string         `json:"functions"`
}

func (c *PermissionClient) QueryResource(permission common.Address, height string) (*PermissionResource, error) {
	out, err := c.callAt(permission.Hex(), "queryResource()", nil,
		arguments(typAddressSlice, typBytes4Slice), height)
	if err != nil {
		return nil, err
	}
	return &PermissionResource{
		Contracts: out[0].([]common.Address),
		Functions: functionHashesToHex(out[1].([][4]byte)),
	}, nil
}
