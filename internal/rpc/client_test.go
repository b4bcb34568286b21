package rpc

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ruizhaoz1/cita-cli/internal/hasher"
	"github.com/ruizhaoz1/cita-cli/internal/repo"
	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

type rpcCall struct {
	Method string
	Params gjson.Result
}

// fakeNode answers JSON-RPC requests from a table of method -> raw result.
func fakeNode(t *testing.T, results map[string]string, calls *[]rpcCall) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.Nil(t, err)

		method := gjson.GetBytes(body, "method").String()
		if calls != nil {
			*calls = append(*calls, rpcCall{Method: method, Params: gjson.GetBytes(body, "params")})
		}
		result, ok := results[method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":%s}`, result)
	}))
}

func newTestClient(t *testing.T, uri string) *Client {
	t.Helper()
	client, err := New(&repo.Config{URI: uri, Algorithm: "sha3", ChainID: 1})
	require.Nil(t, err)
	return client
}

func TestCallContract(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, map[string]string{
		"call": `"0x0000000000000000000000000000000000000000000000000000000000000001"`,
	}, &calls)
	defer node.Close()

	client := newTestClient(t, node.URL)
	raw, err := client.CallContract("0xffffffffffffffffffffffffffffffffff020000", []byte{0x60, 0xfe, 0x47, 0xb1}, "100")
	require.Nil(t, err)
	assert.Len(t, raw, 32)
	assert.Equal(t, byte(1), raw[31])

	require.Len(t, calls, 1)
	assert.Equal(t, "call", calls[0].Method)
	// decimal heights travel as hex quantities
	assert.Equal(t, "0x64", calls[0].Params.Get("1").String())
	assert.Equal(t, "0x60fe47b1", calls[0].Params.Get("0.data").String())
}

func TestCallContractLatestHeight(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, map[string]string{"call": `"0x"`}, &calls)
	defer node.Close()

	client := newTestClient(t, node.URL)
	_, err := client.CallContract("0xffffffffffffffffffffffffffffffffff020000", nil, "latest")
	require.Nil(t, err)
	assert.Equal(t, "latest", calls[0].Params.Get("1").String())
}

func TestCallSurfacesContractError(t *testing.T) {
	node := fakeNode(t, nil, nil)
	defer node.Close()

	client := newTestClient(t, node.URL)
	_, err := client.Call("noSuchMethod")
	assert.True(t, errors.Is(err, ErrContract))
	assert.Contains(t, err.Error(), "method not found")
}

func TestCallSurfacesTransportError(t *testing.T) {
	node := fakeNode(t, nil, nil)
	node.Close() // connection refused

	client := newTestClient(t, node.URL)
	_, err := client.Call("blockNumber")
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestBlockNumber(t *testing.T) {
	node := fakeNode(t, map[string]string{"blockNumber": `"0x3e8"`}, nil)
	defer node.Close()

	client := newTestClient(t, node.URL)
	height, err := client.BlockNumber()
	require.Nil(t, err)
	assert.Equal(t, uint64(1000), height)
}

func TestSendTransaction(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, map[string]string{
		"blockNumber":        `"0x64"`,
		"sendRawTransaction": `{"hash":"0xabcdef","status":"OK"}`,
	}, &calls)
	defer node.Close()

	client := newTestClient(t, node.URL)
	key, err := validator.ParsePrivateKey(strings.Repeat("3f", 32), hasher.Sha3)
	require.Nil(t, err)
	client.SetPrivateKey(key)

	ack, err := client.SendTransaction("0xffffffffffffffffffffffffffffffffff020003", []byte{0x01}, 0)
	require.Nil(t, err)
	assert.Equal(t, "0xabcdef", ack.Hash)
	assert.Equal(t, "OK", ack.Status)

	// exactly one submission, preceded only by the height lookup
	require.Len(t, calls, 2)
	assert.Equal(t, "blockNumber", calls[0].Method)
	assert.Equal(t, "sendRawTransaction", calls[1].Method)

	// decode what went over the wire: default quota, bounded validity
	rawHex := strings.TrimPrefix(calls[1].Params.Get("0").String(), "0x")
	raw, err := hex.DecodeString(rawHex)
	require.Nil(t, err)
	var signed signedTransaction
	require.Nil(t, rlp.DecodeBytes(raw, &signed))
	var tx Transaction
	require.Nil(t, rlp.DecodeBytes(signed.Transaction, &tx))
	assert.Equal(t, uint64(DefaultQuota), tx.Quota)
	assert.Equal(t, uint64(100+blockLimit), tx.ValidUntilBlock)
	assert.Equal(t, uint32(1), tx.ChainID)
	assert.Len(t, signed.Signature, 65)

	// key material does not outlive the call
	assert.Nil(t, client.privKey)
	for _, b := range key.Bytes {
		assert.Zero(t, b)
	}
}

func TestSendTransactionQuotaOverride(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, map[string]string{
		"blockNumber":        `"0x1"`,
		"sendRawTransaction": `{"hash":"0x01","status":"OK"}`,
	}, &calls)
	defer node.Close()

	client := newTestClient(t, node.URL)
	key, err := validator.ParsePrivateKey(strings.Repeat("11", 32), hasher.Sha3)
	require.Nil(t, err)
	client.SetPrivateKey(key)

	_, err = client.SendTransaction("0xffffffffffffffffffffffffffffffffff020003", nil, 55_000)
	require.Nil(t, err)

	rawHex := strings.TrimPrefix(calls[1].Params.Get("0").String(), "0x")
	raw, _ := hex.DecodeString(rawHex)
	var signed signedTransaction
	require.Nil(t, rlp.DecodeBytes(raw, &signed))
	var tx Transaction
	require.Nil(t, rlp.DecodeBytes(signed.Transaction, &tx))
	assert.Equal(t, uint64(55_000), tx.Quota)
}

func TestSendTransactionWithoutKey(t *testing.T) {
	node := fakeNode(t, nil, nil)
	defer node.Close()

	client := newTestClient(t, node.URL)
	_, err := client.SendTransaction("0xffffffffffffffffffffffffffffffffff020003", nil, 0)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "no private key")
}

func TestSignEd25519(t *testing.T) {
	key, err := validator.ParsePrivateKey(strings.Repeat("3f", 32), hasher.Blake2b)
	require.Nil(t, err)

	tx := NewTransaction("0xffffffffffffffffffffffffffffffffff02000f", []byte{0x01}, 0, 10, 1, 0)
	signed, err := tx.Sign(hasher.Blake2b, key)
	require.Nil(t, err)

	var decoded signedTransaction
	require.Nil(t, rlp.DecodeBytes(signed, &decoded))
	// ed25519 signature plus the 32-byte public key
	assert.Len(t, decoded.Signature, 96)
}

func TestGetTransactionReceipt(t *testing.T) {
	node := fakeNode(t, map[string]string{
		"getTransactionReceipt": `{"transactionHash":"0xabc","errorMessage":null}`,
	}, nil)
	defer node.Close()

	client := newTestClient(t, node.URL)
	receipt, err := client.GetTransactionReceipt("0xabc")
	require.Nil(t, err)

	var m map[string]interface{}
	require.Nil(t, json.Unmarshal(receipt, &m))
	assert.Equal(t, "0xabc", m["transactionHash"])
}
