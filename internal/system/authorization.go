package system

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ruizhaoz1/cita-cli/internal/rpc"
)

// AuthorizationClient wraps the authorization contract; all of its
// operations are read-only.
type AuthorizationClient struct {
	contractClient
}

func NewAuthorization(client *rpc.Client) *AuthorizationClient {
	return &AuthorizationClient{contractClient{client: client, address: AuthorizationAddress}}
}

func (c *AuthorizationClient) QueryPermissions(account common.Address, height string) ([]common.Address, error) {
	out, err := c.call("queryPermissions(address)", arguments(typAddress), arguments(typAddressSlice), height, account)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}

func (c *AuthorizationClient) QueryAccounts(permission common.Address, height string) ([]common.Address, error) {
	out, err := c.call("queryAccounts(address)", arguments(typAddress), arguments(typAddressSlice), height, permission)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}

func (c *AuthorizationClient) QueryAllAccounts(height string) ([]common.Address, error) {
	out, err := c.call("queryAllAccounts()", nil, arguments(typAddressSlice), height)
	if err != nil {
		return nil, err
	}
	return out[0].([]common.Address), nil
}

// CheckResource reports whether the account may call the function on the
// contract. functionHash is the 4-byte selector; its length is checked here,
// the validator only asserted hex syntax.
func (c *AuthorizationClient) CheckResource(account, contract common.Address, functionHash, height string) (bool, error) {
	fn, err := parseFunctionHash(functionHash)
	if err != nil {
		return false, err
	}
	out, err := c.call("checkResource(address,address,bytes4)",
		arguments(typAddress, typAddress, typBytes4), arguments(typBool), height,
		account, contract, fn)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (c *AuthorizationClient) CheckPermission(account, permission common.Address, height string) (bool, error) {
	out, err := c.call("checkPermission(address,address)",
		arguments(typAddress, typAddress), arguments(typBool), height, account, permission)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}
