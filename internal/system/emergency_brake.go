package system

import "github.com/ruizhaoz1/cita-cli/internal/rpc"

// EmergencyBrakeClient wraps the emergency brake contract: when the state is
// set, the chain only accepts transactions from the admin.
type EmergencyBrakeClient struct {
	contractClient
}

func NewEmergencyBrake(client *rpc.Client) *EmergencyBrakeClient {
	return &EmergencyBrakeClient{contractClient{client: client, address: EmergencyBrakeAddress}}
}

func (c *EmergencyBrakeClient) State(height string) (bool, error) {
	out, err := c.call("state()", nil, arguments(typBool), height)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

func (c *EmergencyBrakeClient) SetState(state bool, quota uint64) (*rpc.TransactResult, error) {
	return c.sendTx("setState(bool)", arguments(typBool), quota, state)
}
