package scm

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

func batchTxCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "BatchTx",
		Usage:  "Batched transactions",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:  "multiTxs",
				Usage: "Submit several encoded calls as one transaction",
				Flags: []cli.Flag{
					cli.StringSliceFlag{
						Name:     "tx-code",
						Usage:    "Hex-encoded inner transaction, repeatable",
						Required: true,
					},
					quotaFlag(),
					privateKeyFlag(),
				},
				Action: d.multiTxs,
			},
		},
	}
}

func (d *dispatcher) multiTxs(ctx *cli.Context) error {
	codes := ctx.StringSlice("tx-code")
	for _, code := range codes {
		if err := validator.IsHex(code); err != nil {
			return errors.Wrap(err, "--tx-code")
		}
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewBatchTx(client).MultiTxs(codes, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}
