package system

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// RoleManagementClient wraps the role management contract.
type RoleManagementClient struct {
	contractClient
}

func NewRoleManagement(client *rpc.Client) *RoleManagementClient {
	return &RoleManagementClient{contractClient{client: client, address: RoleManagementAddress}}
}

func (c *RoleManagementClient) NewRole(name, permissions string, quota uint64) (*rpc.TransactResult, error) {
	list, err := splitAddresses(permissions)
	if err != nil {
		return nil, err
	}
	return c.sendTx("newRole(bytes32,address[])",
		arguments(typBytes32, typAddressSlice), quota, nameToBytes32(name), list)
}

func (c *RoleManagementClient) DeleteRole(role common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("deleteRole(address)", arguments(typAddress), quota, role)
}

func (c *RoleManagementClient) UpdateRoleName(role common.Address, name string, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("updateRoleName(address,bytes32)",
		arguments(typAddress, typBytes32), quota, role, nameToBytes32(name))
}

func (c *RoleManagementClient) AddPermissions(role common.Address, permissions string, quota uint64) (*rpc.TransactResult, error) {
	list, err := splitAddresses(permissions)
	if err != nil {
		return nil, err
	}
	return c.sendTx("addPermissions(address,address[])",
		arguments(typAddress, typAddressSlice), quota, role, list)
}

func (c *RoleManagementClient) DeletePermissions(role common.Address, permissions string, quota uint64) (*rpc.TransactResult, error) {
	list, err := splitAddresses(permissions)
	if err != nil {
		return nil, err
	}
	return c.sendTx("deletePermissions(address,address[])",
		arguments(typAddress, typAddressSlice), quota, role, list)
}

func (c *RoleManagementClient) SetRole(account, role common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setRole(address,address)",
		arguments(typAddress, typAddress), quota, account, role)
}

func (c *RoleManagementClient) CancelRole(account, role common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("cancelRole(address,address)",
		arguments(typAddress, typAddress), quota, account, role)
}

func (c *RoleManagementClient) ClearRole(account common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("clearRole(address)", arguments(typAddress), quota, account)
}

func (c *RoleManagementClient) QueryRoles(account common.Address, height string) ([]common.Address, error) {
	out, err := c.call("queryRoles(address)", arguments(typAddress), arguments(typAddressSlice), height, account)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}

func (c *RoleManagementClient) QueryAccounts(role common.Address, height string) ([]common.Address, error) {
	out, err := c.call("queryAccounts(address)", arguments(typAddress), arguments(typAddressSlice), height, role)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}
