package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func sysConfigCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "SysConfig",
		Usage:  "Chain configuration",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "getChainOwner",
				Usage:  "Query the chain owner",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getChainOwner,
			},
			cli.Command{
				Name:   "getDelayBlockNumber",
				Usage:  "Query the delay block number",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getDelayBlockNumber,
			},
			cli.Command{
				Name:   "getFeeBackPlatformCheck",
				Usage:  "Query whether fee back platform check is enabled",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getFeeBackPlatformCheck,
			},
			cli.Command{
				Name:   "getEconomicalModel",
				Usage:  "Query the economical model, 0 quota 1 charge",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getEconomicalModel,
			},
			cli.Command{
				Name:   "getPermissionCheck",
				Usage:  "Query whether permission check is enabled",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getPermissionCheck,
			},
			cli.Command{
				Name:   "getQuotaCheck",
				Usage:  "Query whether quota check is enabled",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getQuotaCheck,
			},
			cli.Command{
				Name:  "setChainName",
				Usage: "Update the chain name",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "chain-name", Usage: "Chain name", Required: true},
					quotaFlag(), adminPrivateFlag(),
				},
				Action: d.setChainName,
			},
			cli.Command{
				Name:  "setOperator",
				Usage: "Update the chain operator",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "operator", Usage: "Operator name", Required: true},
					quotaFlag(), adminPrivateFlag(),
				},
				Action: d.setOperator,
			},
			cli.Command{
				Name:  "setWebsite",
				Usage: "Update the operator website",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "website", Usage: "Operator website", Required: true},
					quotaFlag(), adminPrivateFlag(),
				},
				Action: d.setWebsite,
			},
		},
	}
}

func (d *dispatcher) getChainOwner(ctx *cli.Context) error {
	return d.sysConfigQuery(ctx, func(c *system.SysConfigClient, height string) (interface{}, error) {
		return c.GetChainOwner(height)
	})
}

func (d *dispatcher) getDelayBlockNumber(ctx *cli.Context) error {
	return d.sysConfigQuery(ctx, func(c *system.SysConfigClient, height string) (interface{}, error) {
		return c.GetDelayBlockNumber(height)
	})
}

func (d *dispatcher) getFeeBackPlatformCheck(ctx *cli.Context) error {
	return d.sysConfigQuery(ctx, func(c *system.SysConfigClient, height string) (interface{}, error) {
		return c.GetFeeBackPlatformCheck(height)
	})
}

func (d *dispatcher) getEconomicalModel(ctx *cli.Context) error {
	return d.sysConfigQuery(ctx, func(c *system.SysConfigClient, height string) (interface{}, error) {
		return c.GetEconomicalModel(height)
	})
}

func (d *dispatcher) getPermissionCheck(ctx *cli.Context) error {
	return d.sysConfigQuery(ctx, func(c *system.SysConfigClient, height string) (interface{}, error) {
		return c.GetPermissionCheck(height)
	})
}

func (d *dispatcher) getQuotaCheck(ctx *cli.Context) error {
	return d.sysConfigQuery(ctx, func(c *system.SysConfigClient, height string) (interface{}, error) {
		return c.GetQuotaCheck(height)
	})
}

// sysConfigQuery factors the shared resolve-call-report path of the getters.
func (d *dispatcher) sysConfigQuery(ctx *cli.Context, fn func(*system.SysConfigClient, string) (interface{}, error)) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	result, err := fn(system.NewSysConfig(client), height)
	if err != nil {
		return err
	}
	return d.report(ctx, result)
}

func (d *dispatcher) setChainName(ctx *cli.Context) error {
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "admin-private")
	if err != nil {
		return err
	}
	ack, err := system.NewSysConfig(client).SetChainName(ctx.String("chain-name"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) setOperator(ctx *cli.Context) error {
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "admin-private")
	if err != nil {
		return err
	}
	ack, err := system.NewSysConfig(client).SetOperator(ctx.String("operator"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) setWebsite(ctx *cli.Context) error {
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "admin-private")
	if err != nil {
		return err
	}
	ack, err := system.NewSysConfig(client).SetWebsite(ctx.String("website"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}
