package system

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ruizhaoz1/cita-cli/internal/hasher"
	"github.com/ruizhaoz1/cita-cli/internal/repo"
	"github.com/ruizhaoz1/cita-cli/internal/rpc"
	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

type capturedCall struct {
	Method string
	Params gjson.Result
}

func fakeChain(t *testing.T, results map[string]string, calls *[]capturedCall) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.Nil(t, err)
		method := gjson.GetBytes(body, "method").String()
		if calls != nil {
			*calls = append(*calls, capturedCall{Method: method, Params: gjson.GetBytes(body, "params")})
		}
		result, ok := results[method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":%s}`, result)
	}))
}

func testRPCClient(t *testing.T, uri string) *rpc.Client {
	t.Helper()
	client, err := rpc.New(&repo.Config{URI: uri, Algorithm: "sha3", ChainID: 1})
	require.Nil(t, err)
	return client
}

// word renders one right-aligned 32-byte ABI slot from trailing hex bytes.
func word(tail string) string {
	return strings.Repeat("0", 64-len(tail)) + tail
}

func TestAdminQueries(t *testing.T) {
	var calls []capturedCall
	chain := fakeChain(t, map[string]string{
		"call": `"0x` + word("4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523") + `"`,
	}, &calls)
	defer chain.Close()

	admin := NewAdmin(testRPCClient(t, chain.URL))
	owner, err := admin.Admin("latest")
	require.Nil(t, err)
	assert.Equal(t, "4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523", hex.EncodeToString(owner.Bytes()))

	require.Len(t, calls, 1)
	assert.Equal(t, AdminManagementAddress, calls[0].Params.Get("0.to").String())
	assert.Equal(t, "0x"+hex.EncodeToString(selector("admin()")), calls[0].Params.Get("0.data").String())
}

func TestNodeManagerListNode(t *testing.T) {
	// address[] with two entries: offset, length, two address words
	payload := word("20") + word("2") +
		word("4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523") +
		word("50ad045b0dff28446c1025c742a03b22fd23925a")
	chain := fakeChain(t, map[string]string{"call": `"0x` + payload + `"`}, nil)
	defer chain.Close()

	nodes, err := NewNodeManager(testRPCClient(t, chain.URL)).ListNode("latest")
	require.Nil(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "50ad045b0dff28446c1025c742a03b22fd23925a", hex.EncodeToString(nodes[1].Bytes()))
}

func TestGroupQueryTargetsInstance(t *testing.T) {
	var calls []capturedCall
	chain := fakeChain(t, map[string]string{
		"call": `"0x` + word(hex.EncodeToString([]byte("testGroup"))+strings.Repeat("0", 46)) + `"`,
	}, &calls)
	defer chain.Close()

	group := common.HexToAddress("0x50ad045b0dff28446c1025c742a03b22fd23925a")
	name, err := NewGroup(testRPCClient(t, chain.URL)).QueryName(group, "latest")
	require.Nil(t, err)
	assert.Equal(t, "testGroup", name)

	// the call goes to the group instance, not a fixed system address
	require.Len(t, calls, 1)
	assert.True(t, strings.EqualFold(group.Hex(), calls[0].Params.Get("0.to").String()))
}

func TestEmergencyBrakeState(t *testing.T) {
	chain := fakeChain(t, map[string]string{"call": `"0x` + word("1") + `"`}, nil)
	defer chain.Close()

	state, err := NewEmergencyBrake(testRPCClient(t, chain.URL)).State("latest")
	require.Nil(t, err)
	assert.True(t, state)
}

func TestSysConfigEconomicalModelAtHeight(t *testing.T) {
	var calls []capturedCall
	chain := fakeChain(t, map[string]string{"call": `"0x` + word("1") + `"`}, &calls)
	defer chain.Close()

	model, err := NewSysConfig(testRPCClient(t, chain.URL)).GetEconomicalModel("100")
	require.Nil(t, err)
	assert.Equal(t, uint8(1), model)

	// exactly one read call, at the requested height, no signing involved
	require.Len(t, calls, 1)
	assert.Equal(t, "0x64", calls[0].Params.Get("1").String())
}

func TestQuotaManagerSetAQL(t *testing.T) {
	var calls []capturedCall
	chain := fakeChain(t, map[string]string{
		"blockNumber":        `"0xa"`,
		"sendRawTransaction": `{"hash":"0xfeed","status":"OK"}`,
	}, &calls)
	defer chain.Close()

	client := testRPCClient(t, chain.URL)
	key, err := validator.ParsePrivateKey(strings.Repeat("3f", 32), hasher.Sha3)
	require.Nil(t, err)
	client.SetPrivateKey(key)

	addr, err := validator.ParseAddress("0x4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523")
	require.Nil(t, err)

	ack, err := NewQuotaManager(client).SetAQL(addr, 1_000_000, 0)
	require.Nil(t, err)
	assert.Equal(t, "0xfeed", ack.Hash)

	// one height lookup, one submission, nothing else
	require.Len(t, calls, 2)
	assert.Equal(t, "blockNumber", calls[0].Method)
	assert.Equal(t, "sendRawTransaction", calls[1].Method)
}

func TestGroupManagementNewGroupRejectsBadAccountList(t *testing.T) {
	chain := fakeChain(t, nil, nil)
	defer chain.Close()

	client := testRPCClient(t, chain.URL)
	key, err := validator.ParsePrivateKey(strings.Repeat("3f", 32), hasher.Sha3)
	require.Nil(t, err)
	client.SetPrivateKey(key)

	origin, _ := validator.ParseAddress("0x4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523")
	_, err = NewGroupManagement(client).NewGroup(origin, "testGroup", "not,addresses", 0)
	assert.NotNil(t, err)
}

func TestAuthorizationCheckResourceSelectorLength(t *testing.T) {
	chain := fakeChain(t, nil, nil)
	defer chain.Close()

	client := testRPCClient(t, chain.URL)
	account, _ := validator.ParseAddress("0x4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523")
	contract, _ := validator.ParseAddress("0x50ad045b0dff28446c1025c742a03b22fd23925a")

	// hex but not 4 bytes: the facade owns the length constraint
	_, err := NewAuthorization(client).CheckResource(account, contract, "0x60fe47b1ff", "latest")
	assert.NotNil(t, err)
}

func TestBatchTxConcatenatesCodes(t *testing.T) {
	var calls []capturedCall
	chain := fakeChain(t, map[string]string{
		"blockNumber":        `"0x1"`,
		"sendRawTransaction": `{"hash":"0x01","status":"OK"}`,
	}, &calls)
	defer chain.Close()

	client := testRPCClient(t, chain.URL)
	key, err := validator.ParsePrivateKey(strings.Repeat("3f", 32), hasher.Sha3)
	require.Nil(t, err)
	client.SetPrivateKey(key)

	_, err = NewBatchTx(client).MultiTxs([]string{"0xdead", "0xbeef"}, 0)
	require.Nil(t, err)
	require.Len(t, calls, 2)

	_, err = NewBatchTx(client).MultiTxs(nil, 0)
	assert.NotNil(t, err)
}

func TestGetQuotas(t *testing.T) {
	payload := word("20") + word("2") + word("f4240") + word("1e8480")
	chain := fakeChain(t, map[string]string{"call": `"0x` + payload + `"`}, nil)
	defer chain.Close()

	quotas, err := NewQuotaManager(testRPCClient(t, chain.URL)).GetQuotas("latest")
	require.Nil(t, err)
	require.Len(t, quotas, 2)
	assert.Equal(t, big.NewInt(1_000_000), quotas[0])
	assert.Equal(t, big.NewInt(2_000_000), quotas[1])
}
