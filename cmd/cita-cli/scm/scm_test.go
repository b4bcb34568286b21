package scm

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/loggers"
	"github.com/ruizhaoz1/cita-cli/internal/repo"
	"github.com/ruizhaoz1/cita-cli/internal/system"
	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

const (
	testAccount = "0x4b5ae4567ad5d9fb92bc9afd6a657e6fa13a2523"
	testKey     = "1111111111111111111111111111111111111111111111111111111111111111"
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

// word left-pads a hex fragment to one 32-byte ABI slot.
func word(fragment string) string {
	return strings.Repeat("0", 64-len(fragment)) + fragment
}

// newTestApp wires the scm command tree the way main does, pointed at uri.
func newTestApp(uri string) (*cli.App, *repo.Session) {
	app := cli.NewApp()
	app.Name = "cita-cli"
	app.Writer = io.Discard
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "url"},
		cli.StringFlag{Name: "algorithm"},
		cli.BoolFlag{Name: "debug"},
		cli.BoolFlag{Name: "no-color"},
	}
	config := &repo.Config{URI: uri, Algorithm: "sha3", ChainID: 1}
	session := repo.NewSession()
	app.Commands = []cli.Command{LoadSCMCommand(config, session)}
	return app, session
}

func TestUnknownGroup(t *testing.T) {
	app, _ := newTestApp("http://127.0.0.1:0")
	err := app.Run([]string{"cita-cli", "scm", "NoSuchGroup"})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	assert.Contains(t, err.Error(), "NoSuchGroup")
}

func TestUnknownOperation(t *testing.T) {
	app, _ := newTestApp("http://127.0.0.1:0")
	err := app.Run([]string{"cita-cli", "scm", "NodeManager", "frobnicate"})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestGetEconomicalModelAtHeight(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, map[string]string{
		"call": `"0x` + word("01") + `"`,
	}, &calls)
	defer node.Close()

	app, session := newTestApp(node.URL)
	err := app.Run([]string{"cita-cli", "scm", "SysConfig", "getEconomicalModel", "--height", "100"})
	require.Nil(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, "call", calls[0].Method)
	assert.Equal(t, system.SysConfigAddress, calls[0].Params.Get("0.to").String())
	assert.Equal(t, "0x64", calls[0].Params.Get("1").String())
	assert.Equal(t, "1", string(session.Output()))
}

func TestDefaultHeightIsLatest(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, map[string]string{
		"call": `"0x` + word(strings.TrimPrefix(testAccount, "0x")) + `"`,
	}, &calls)
	defer node.Close()

	app, _ := newTestApp(node.URL)
	err := app.Run([]string{"cita-cli", "scm", "AdminManagement", "admin"})
	require.Nil(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, "latest", calls[0].Params.Get("1").String())
}

func TestSetAQLSubmitsTransaction(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, map[string]string{
		"blockNumber":        `"0x64"`,
		"sendRawTransaction": `{"hash":"0xabc","status":"OK"}`,
	}, &calls)
	defer node.Close()

	app, session := newTestApp(node.URL)
	err := app.Run([]string{
		"cita-cli", "scm", "QuotaManager", "setAQL",
		"--address", testAccount,
		"--quota-limit", "300000",
		"--admin-private", testKey,
	})
	require.Nil(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, "blockNumber", calls[0].Method)
	assert.Equal(t, "sendRawTransaction", calls[1].Method)
	assert.Contains(t, string(session.Output()), "0xabc")
}

func TestSetStateRejectsBadBool(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, nil, &calls)
	defer node.Close()

	app, _ := newTestApp(node.URL)
	err := app.Run([]string{
		"cita-cli", "scm", "EmergencyBrake", "setState",
		"--state", "notabool",
		"--admin-private", testKey,
	})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, validator.ErrInvalidFormat))
	assert.Contains(t, err.Error(), "--state")
	// rejected before any request went out
	assert.Len(t, calls, 0)
}

func TestBadKeyRejectedBeforeNetwork(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, nil, &calls)
	defer node.Close()

	app, _ := newTestApp(node.URL)
	err := app.Run([]string{
		"cita-cli", "scm", "AdminManagement", "update",
		"--address", testAccount,
		"--admin-private", "0xnothex",
	})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, validator.ErrInvalidKey))
	assert.Len(t, calls, 0)
}

func TestWrongSchemeKeyRejectedBeforeNetwork(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, nil, &calls)
	defer node.Close()

	// sha3 pairs with a 32-byte secp256k1 key; 64 bytes only fits ed25519
	app, _ := newTestApp(node.URL)
	err := app.Run([]string{
		"cita-cli", "scm", "AdminManagement", "update",
		"--address", testAccount,
		"--admin-private", strings.Repeat("3f", 64),
	})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, validator.ErrInvalidKey))
	assert.Len(t, calls, 0)
}

func TestDebugFlagDumpsExchange(t *testing.T) {
	node := fakeNode(t, map[string]string{
		"call": `"0x` + word("00") + `"`,
	}, nil)
	defer node.Close()

	rpcEntry := loggers.Logger(loggers.RPC)
	var rpcBuf bytes.Buffer
	rpcEntry.Logger.SetOutput(&rpcBuf)
	defer rpcEntry.Logger.SetOutput(os.Stderr)

	scmEntry := loggers.Logger(loggers.SCM)
	var scmBuf bytes.Buffer
	scmEntry.Logger.SetOutput(&scmBuf)
	defer scmEntry.Logger.SetOutput(os.Stderr)

	// config file leaves debug off, only the global flag raises it
	app, _ := newTestApp(node.URL)
	err := app.Run([]string{
		"cita-cli", "--debug", "scm", "EmergencyBrake", "state",
	})
	require.Nil(t, err)
	assert.Contains(t, rpcBuf.String(), "request")
	assert.Contains(t, rpcBuf.String(), "call")
	assert.Contains(t, scmBuf.String(), "dispatching")
}

func TestMissingRequiredFlag(t *testing.T) {
	app, _ := newTestApp("http://127.0.0.1:0")
	err := app.Run([]string{"cita-cli", "scm", "AdminManagement", "isAdmin"})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "address")
}

func TestBadAddressFlag(t *testing.T) {
	app, _ := newTestApp("http://127.0.0.1:0")
	err := app.Run([]string{
		"cita-cli", "scm", "AdminManagement", "isAdmin",
		"--address", "0x1234",
	})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, validator.ErrInvalidFormat))
	assert.Contains(t, err.Error(), "--address")
}

func TestGlobalURLOverride(t *testing.T) {
	var calls []rpcCall
	node := fakeNode(t, map[string]string{
		"call": `"0x` + word("00") + `"`,
	}, &calls)
	defer node.Close()

	// configured endpoint is unreachable, the global flag points at the node
	app, _ := newTestApp("http://127.0.0.1:0")
	err := app.Run([]string{
		"cita-cli", "--url", node.URL, "scm", "EmergencyBrake", "state",
	})
	require.Nil(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, system.EmergencyBrakeAddress, calls[0].Params.Get("0.to").String())
}
