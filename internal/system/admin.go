package system

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// AdminClient wraps the admin management contract.
type AdminClient struct {
	contractClient
}

func NewAdmin(client *rpc.Client) *AdminClient {
	return &AdminClient{contractClient{client: client, address: AdminManagementAddress}}
}

// Admin returns the current chain admin.
func (c *AdminClient) Admin(height string) (common.Address, error) {
	out, err := c.call("admin()", nil, arguments(typAddress), height)
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (c *AdminClient) IsAdmin(account common.Address, height string) (bool, error) {
	out, err := c.call("isAdmin(address)", arguments(typAddress), arguments(typBool), height, account)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

// Update hands the admin role to another account.
func (c *AdminClient) Update(account common.Address, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("update(address)", arguments(typAddress), quota, account)
}
