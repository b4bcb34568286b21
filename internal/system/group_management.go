package system

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// GroupManagementClient wraps the group management contract. Account-list
// parameters arrive as one comma-delimited string and are split here.
type GroupManagementClient struct {
	contractClient
}

func NewGroupManagement(client *rpc.Client) *GroupManagementClient {
	return &GroupManagementClient{contractClient{client: client, address: GroupManagementAddress}}
}

func (c *GroupManagementClient) NewGroup(origin common.Address, name, accounts string, quota uint64) (*rpc.TransactResult, error) {
	list, err := splitAddresses(accounts)
	if err != nil {
		return nil, err
	}
	return c.sendTx("newGroup(address,bytes32,address[])",
		arguments(typAddress, typBytes32, typAddressSlice), quota,
		origin, nameToBytes32(name), list)
}

func (c *GroupManagementClient) DeleteGroup(origin, target common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("deleteGroup(address,address)",
		arguments(typAddress, typAddress), quota, origin, target)
}

func (c *GroupManagementClient) UpdateGroupName(origin, target common.Address, name string, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("updateGroupName(address,address,bytes32)",
		arguments(typAddress, typAddress, typBytes32), quota,
		origin, target, nameToBytes32(name))
}

func (c *GroupManagementClient) AddAccounts(origin, target common.Address, accounts string, quota uint64) (*rpc.TransactResult, error) {
	list, err := splitAddresses(accounts)
	if err != nil {
		return nil, err
	}
	return c.sendTx("addAccounts(address,address,address[])",
		arguments(typAddress, typAddress, typAddressSlice), quota,
		origin, target, list)
}

func (c *GroupManagementClient) DeleteAccounts(origin, target common.Address, accounts string, quota uint64) (*rpc.TransactResult, error) {
	list, err := splitAddresses(accounts)
	if err != nil {
		return nil, err
	}
	return c.sendTx("deleteAccounts(address,address,address[])",
		arguments(typAddress, typAddress, typAddressSlice), quota,
		origin, target, list)
}

// CheckScope reports whether target sits inside origin's subtree.
func (c *GroupManagementClient) CheckScope(origin, target common.Address, height string) (bool, error) {
	out, err := c.call("checkScope(address,address)",
		arguments(typAddress, typAddress), arguments(typBool), height, origin, target)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (c *GroupManagementClient) QueryGroups(height string) ([]common.Address, error) {
	out, err := c.call("queryGroups()", nil, arguments(typAddressSlice), height)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}
