package scm

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/cheynewallace/tabby"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/hasher"
	"github.com/ruizhaoz1/cita-cli/internal/loggers"
	"github.com/ruizhaoz1/cita-cli/internal/rpc"
	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

// client builds the base RPC client for one invocation. Global flags beat
// the config file field by field; the result is discarded with the
// invocation.
func (d *dispatcher) client(ctx *cli.Context) (*rpc.Client, error) {
	config := *d.config
	if uri := ctx.GlobalString("url"); uri != "" {
		config.URI = uri
	}
	if ctx.GlobalBool("debug") {
		config.Debug = true
	}
	if algorithm := ctx.GlobalString("algorithm"); algorithm != "" {
		config.Algorithm = algorithm
	}
	loggers.SetDebug(config.Debug)
	loggers.Logger(loggers.SCM).Debugf("dispatching against %s", config.URI)
	return rpc.New(&config)
}

// writeClient is client plus the signing key for a state-mutating call. The
// key flag is validated and installed here, after which the action holds
// the only reference to the client carrying it.
func (d *dispatcher) writeClient(ctx *cli.Context, keyFlag string) (*rpc.Client, error) {
	client, err := d.client(ctx)
	if err != nil {
		return nil, err
	}
	key, err := resolveKey(ctx, keyFlag, client.Algorithm())
	if err != nil {
		return nil, err
	}
	client.SetPrivateKey(key)
	return client, nil
}

func resolveAddress(ctx *cli.Context, name string) (common.Address, error) {
	addr, err := validator.ParseAddress(ctx.String(name))
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "--%s", name)
	}
	return addr, nil
}

func resolveHeight(ctx *cli.Context) (string, error) {
	height, err := validator.ParseHeight(ctx.String("height"))
	if err != nil {
		return "", errors.Wrap(err, "--height")
	}
	return height, nil
}

// resolveQuota returns 0 when the flag is absent: no override, the facade
// applies its own default.
func resolveQuota(ctx *cli.Context) (uint64, error) {
	if !ctx.IsSet("quota") {
		return 0, nil
	}
	quota, err := validator.ParseU64(ctx.String("quota"))
	if err != nil {
		return 0, errors.Wrap(err, "--quota")
	}
	return quota, nil
}

func resolveU64(ctx *cli.Context, name string) (uint64, error) {
	v, err := validator.ParseU64(ctx.String(name))
	if err != nil {
		return 0, errors.Wrapf(err, "--%s", name)
	}
	return v, nil
}

func resolveKey(ctx *cli.Context, name string, algorithm hasher.Algorithm) (*validator.PrivateKey, error) {
	key, err := validator.ParsePrivateKey(ctx.String(name), algorithm)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", name)
	}
	return key, nil
}

func resolveHex(ctx *cli.Context, name string) (string, error) {
	value := ctx.String(name)
	if err := validator.IsHex(value); err != nil {
		return "", errors.Wrapf(err, "--%s", name)
	}
	return value, nil
}

// report renders one successful result and records it as the session's last
// output. List results print as a table, everything else as JSON.
func (d *dispatcher) report(ctx *cli.Context, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	d.session.SetOutput(raw)

	useColor := d.config.Color && !ctx.GlobalBool("no-color")
	if rows, ok := tableRows(payload); ok {
		t := tabby.New()
		t.AddHeader("INDEX", "VALUE")
		for i, row := range rows {
			t.AddLine(i, row)
		}
		t.Print()
		return nil
	}

	if useColor {
		pretty, err := prettyjson.Format(raw)
		if err == nil {
			fmt.Println(string(pretty))
			return nil
		}
	}
	fmt.Println(string(raw))
	return nil
}

// reportTx renders a transaction acknowledgment as a single summary line.
func (d *dispatcher) reportTx(ctx *cli.Context, ack *rpc.TransactResult) error {
	raw, err := json.Marshal(ack)
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	d.session.SetOutput(raw)

	useColor := d.config.Color && !ctx.GlobalBool("no-color")
	if useColor {
		color.Green("transaction submitted, hash %s status %s", ack.Hash, ack.Status)
		return nil
	}
	fmt.Printf("transaction submitted, hash %s status %s\n", ack.Hash, ack.Status)
	return nil
}

func tableRows(payload interface{}) ([]string, bool) {
	switch v := payload.(type) {
	case []common.Address:
		rows := make([]string, len(v))
		for i, addr := range v {
			rows[i] = addr.Hex()
		}
		return rows, true
	case []uint64:
		rows := make([]string, len(v))
		for i, n := range v {
			rows[i] = fmt.Sprintf("%d", n)
		}
		return rows, true
	case []*big.Int:
		rows := make([]string, len(v))
		for i, n := range v {
			rows[i] = n.String()
		}
		return rows, true
	case []string:
		return v, true
	default:
		return nil, false
	}
}
