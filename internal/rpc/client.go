package rpc

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/ruizhaoz1/cita-cli/internal/hasher"
	"github.com/ruizhaoz1/cita-cli/internal/loggers"
	"github.com/ruizhaoz1/cita-cli/internal/repo"
	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

// Error kinds for failures past the validation stage. Both are opaque to the
// caller: no retry, no recovery, straight to the reporter.
var (
	ErrTransport = errors.New("transport error")
	ErrContract  = errors.New("contract error")
)

// Client is the base JSON-RPC client shared by every contract facade. One
// client serves one command invocation; it is not safe for concurrent use.
type Client struct {
	uri       string
	debug     bool
	algorithm hasher.Algorithm
	chainID   uint32
	version   uint32
	privKey   *validator.PrivateKey
	http      *http.Client
	logger    *logrus.Entry
	id        uint64
}

// New builds a client from the loaded configuration. The hash algorithm is
// resolved here, once per process, never per call.
func New(config *repo.Config) (*Client, error) {
	algorithm, err := hasher.Parse(config.Algorithm)
	if err != nil {
		return nil, err
	}
	return &Client{
		uri:       config.URI,
		debug:     config.Debug,
		algorithm: algorithm,
		chainID:   config.ChainID,
		version:   config.Version,
		http:      http.DefaultClient,
		logger:    loggers.Logger(loggers.RPC),
	}, nil
}

func (c *Client) SetURI(uri string) *Client {
	c.uri = strings.TrimSuffix(strings.TrimSpace(uri), "/")
	return c
}

func (c *Client) SetDebug(debug bool) *Client {
	c.debug = debug
	return c
}

// SetPrivateKey installs the signing key for the next write call,
// overwriting any previously installed key.
func (c *Client) SetPrivateKey(key *validator.PrivateKey) *Client {
	c.privKey = key
	return c
}

// ClearPrivateKey zeroes and drops the installed key. Write paths call it
// once the transaction has been submitted so key material does not outlive
// the invocation.
func (c *Client) ClearPrivateKey() {
	if c.privKey == nil {
		return
	}
	for i := range c.privKey.Bytes {
		c.privKey.Bytes[i] = 0
	}
	c.privKey = nil
}

func (c *Client) Algorithm() hasher.Algorithm {
	return c.algorithm
}

type request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      uint64        `json:"id"`
}

// Call performs a single JSON-RPC round trip and returns the result field.
// An error object in the response surfaces as ErrContract; anything below
// the JSON-RPC layer as ErrTransport.
func (c *Client) Call(method string, params ...interface{}) (gjson.Result, error) {
	if params == nil {
		params = []interface{}{}
	}
	req := request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      atomic.AddUint64(&c.id, 1),
	}
	body, err := json.Marshal(req)
	if err != nil {
		return gjson.Result{}, errors.Wrap(err, "marshal request")
	}
	c.dump("request", body)

	resp, err := c.http.Post(c.uri, "application/json", bytes.NewReader(body))
	if err != nil {
		return gjson.Result{}, errors.Wrapf(ErrTransport, "%s %s: %s", method, c.uri, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(ErrTransport, "read response: %s", err)
	}
	c.dump("response", raw)

	if errMsg := gjson.GetBytes(raw, "error.message"); errMsg.Exists() {
		return gjson.Result{}, errors.Wrapf(ErrContract, "%s: %s", method, errMsg.String())
	}
	result := gjson.GetBytes(raw, "result")
	if !result.Exists() {
		return gjson.Result{}, errors.Wrapf(ErrTransport, "%s: malformed response %q", method, string(raw))
	}
	return result, nil
}

func (c *Client) dump(direction string, body []byte) {
	if !c.debug {
		return
	}
	pretty, err := prettyjson.Format(body)
	if err != nil {
		pretty = body
	}
	c.logger.WithField("dir", direction).Debug(string(pretty))
}

// BlockNumber returns the current chain height.
func (c *Client) BlockNumber() (uint64, error) {
	result, err := c.Call("blockNumber")
	if err != nil {
		return 0, err
	}
	height, err := strconv.ParseUint(strings.TrimPrefix(result.String(), "0x"), 16, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrTransport, "blockNumber: bad quantity %q", result.String())
	}
	return height, nil
}

// ensureChainID resolves the chain id from the node metadata when the config
// did not pin one.
func (c *Client) ensureChainID() (uint32, error) {
	if c.chainID != 0 {
		return c.chainID, nil
	}
	result, err := c.Call("getMetaData", validator.LatestHeight)
	if err != nil {
		return 0, err
	}
	c.chainID = uint32(result.Get("chainId").Uint())
	return c.chainID, nil
}

// CallContract issues one read-only contract call at the given height
// ("latest" or decimal) and returns the raw return data.
func (c *Client) CallContract(to string, data []byte, height string) ([]byte, error) {
	params := map[string]string{
		"to":   to,
		"data": "0x" + hex.EncodeToString(data),
	}
	result, err := c.Call("call", params, quantity(height))
	if err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(result.String(), "0x"))
	if err != nil {
		return nil, errors.Wrapf(ErrContract, "call: non-hex return data %q", result.String())
	}
	return raw, nil
}

// TransactResult is the acknowledgment of a submitted transaction.
type TransactResult struct {
	Hash   string `json:"hash"`
	Status string `json:"status"`
}

// SendTransaction signs and submits one state-mutating call. A zero quota
// means no override and applies the default. The installed key is cleared
// once the node has answered.
func (c *Client) SendTransaction(to string, data []byte, quota uint64) (*TransactResult, error) {
	if c.privKey == nil {
		return nil, errors.New("no private key installed for write call")
	}
	defer c.ClearPrivateKey()

	height, err := c.BlockNumber()
	if err != nil {
		return nil, err
	}
	chainID, err := c.ensureChainID()
	if err != nil {
		return nil, err
	}

	tx := NewTransaction(to, data, quota, height, chainID, c.version)
	signed, err := tx.Sign(c.algorithm, c.privKey)
	if err != nil {
		return nil, err
	}

	result, err := c.Call("sendRawTransaction", "0x"+hex.EncodeToString(signed))
	if err != nil {
		return nil, err
	}
	ack := &TransactResult{
		Hash:   result.Get("hash").String(),
		Status: result.Get("status").String(),
	}
	if ack.Hash == "" {
		return nil, errors.Wrapf(ErrContract, "sendRawTransaction: malformed ack %q", result.Raw)
	}
	return ack, nil
}

// GetTransactionReceipt fetches the receipt of a submitted transaction.
func (c *Client) GetTransactionReceipt(hash string) (json.RawMessage, error) {
	result, err := c.Call("getTransactionReceipt", hash)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(result.Raw), nil
}

// quantity renders a height for the wire: "latest" passes through, decimal
// heights become hex quantities.
func quantity(height string) string {
	if height == "" || height == validator.LatestHeight {
		return validator.LatestHeight
	}
	v, err := strconv.ParseUint(height, 10, 64)
	if err != nil {
		// validated upstream, keep the literal rather than guessing
		return height
	}
	return fmt.Sprintf("0x%x", v)
}
