package system

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// NodeManagerClient wraps the consensus-node membership contract.
type NodeManagerClient struct {
	contractClient
}

func NewNodeManager(client *rpc.Client) *NodeManagerClient {
	return &NodeManagerClient{contractClient{client: client, address: NodeManagerAddress}}
}

// ListNode returns the current consensus node set.
func (c *NodeManagerClient) ListNode(height string) ([]common.Address, error) {
	out, err := c.call("listNode()", nil, arguments(typAddressSlice), height)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}

// ListStake returns the stake of every consensus node.
func (c *NodeManagerClient) ListStake(height string) ([]uint64, error) {
	out, err := c.call("listStake()", nil, arguments(typUint64Slice), height)
	if err != nil {
		return nil, err
	}
	return out[0].([]uint64), nil
}

// GetStatus returns the membership status of one node.
func (c *NodeManagerClient) GetStatus(addr common.Address, height string) (uint8, error) {
	out, err := c.call("getStatus(address)", arguments(typAddress), arguments(typUint8), height, addr)
	if err != nil {
		return 0, err
	}
	return out[0].(uint8), nil
}

// StakePermillage returns the node's vote weight in permillage.
func (c *NodeManagerClient) StakePermillage(addr common.Address, height string) (uint64, error) {
	out, err := c.call("stakePermillage(address)", arguments(typAddress), arguments(typUint64), height, addr)
	if err != nil {
		return 0, err
	}
	return out[0].(uint64), nil
}

// ApproveNode promotes a started node into the consensus set.
func (c *NodeManagerClient) ApproveNode(addr common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("approveNode(address)", arguments(typAddress), quota, addr)
}

// DeleteNode degrades a consensus node.
func (c *NodeManagerClient) DeleteNode(addr common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("deleteNode(address)", arguments(typAddress), quota, addr)
}

// SetStake assigns a node's stake.
func (c *NodeManagerClient) SetStake(addr common.Address, stake uint64, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setStake(address,uint64)", arguments(typAddress, typUint64), quota, addr, stake)
}
