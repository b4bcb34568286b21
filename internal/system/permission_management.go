package system

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// PermissionManagementClient wraps the permission management contract.
// Contract and selector lists arrive comma-delimited and are split here.
type PermissionManagementClient struct {
	contractClient
}

func NewPermissionManagement(client *rpc.Client) *PermissionManagementClient {
	return &PermissionManagementClient{contractClient{client: client, address: PermissionManagementAddress}}
}

func (c *PermissionManagementClient) NewPermission(name, contracts, functionHashes string, quota uint64) (*rpc.TransactResult, error) {
	addrs, fns, err := splitResources(contracts, functionHashes)
	if err != nil {
		return nil, err
	}
	return c.sendTx("newPermission(bytes32,address[],bytes4[])",
		arguments(typBytes32, typAddressSlice, typBytes4Slice), quota,
		nameToBytes32(name), addrs, fns)
}

func (c *PermissionManagementClient) DeletePermission(permission common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("deletePermission(address)", arguments(typAddress), quota, permission)
}

func (c *PermissionManagementClient) UpdatePermissionName(permission common.Address, name string, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("updatePermissionName(address,bytes32)",
		arguments(typAddress, typBytes32), quota, permission, nameToBytes32(name))
}

func (c *PermissionManagementClient) AddResources(permission common.Address, contracts, functionHashes string, quota uint64) (*rpc.TransactResult, error) {
	addrs, fns, err := splitResources(contracts, functionHashes)
	if err != nil {
		return nil, err
	}
	return c.sendTx("addResources(address,address[],bytes4[])",
		arguments(typAddress, typAddressSlice, typBytes4Slice), quota,
		permission, addrs, fns)
}

func (c *PermissionManagementClient) DeleteResources(permission common.Address, contracts, functionHashes string, quota uint64) (*rpc.TransactResult, error) {
	addrs, fns, err := splitResources(contracts, functionHashes)
	if err != nil {
		return nil, err
	}
	return c.sendTx("deleteResources(address,address[],bytes4[])",
		arguments(typAddress, typAddressSlice, typBytes4Slice), quota,
		permission, addrs, fns)
}

func (c *PermissionManagementClient) SetAuthorization(account, permission common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setAuthorization(address,address)",
		arguments(typAddress, typAddress), quota, account, permission)
}

func (c *PermissionManagementClient) SetAuthorizations(account common.Address, permissions string, quota uint64) (*rpc.TransactResult, error) {
	list, err := splitAddresses(permissions)
	if err != nil {
		return nil, err
	}
	return c.sendTx("setAuthorizations(address,address[])",
		arguments(typAddress, typAddressSlice), quota, account, list)
}

func (c *PermissionManagementClient) CancelAuthorization(account, permission common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("cancelAuthorization(address,address)",
		arguments(typAddress, typAddress), quota, account, permission)
}

func (c *PermissionManagementClient) CancelAuthorizations(account common.Address, permissions string, quota uint64) (*rpc.TransactResult, error) {
	list, err := splitAddresses(permissions)
	if err != nil {
		return nil, err
	}
	return c.sendTx("cancelAuthorizations(address,address[])",
		arguments(typAddress, typAddressSlice), quota, account, list)
}

func (c *PermissionManagementClient) ClearAuthorization(account common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("clearAuthorization(address)", arguments(typAddress), quota, account)
}

// splitResources parses the paired contract/selector lists of a permission
// resource; the contract requires them index-aligned.
func splitResources(contracts, functionHashes string) ([]common.Address, [][4]byte, error) {
	addrs, err := splitAddresses(contracts)
	if err != nil {
		return nil, nil, err
	}
	fns, err := splitFunctionHashes(functionHashes)
	if err != nil {
		return nil, nil, err
	}
	return addrs, fns, nil
}
