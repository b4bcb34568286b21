package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func quotaManagerCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "QuotaManager",
		Usage:  "Block and account quota limit management",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "getBQL",
				Usage:  "Query the block quota limit",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getBQL,
			},
			cli.Command{
				Name:   "getDefaultAQL",
				Usage:  "Query the default account quota limit",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getDefaultAQL,
			},
			cli.Command{
				Name:   "getAccounts",
				Usage:  "Query the accounts with a specific quota limit",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getQuotaAccounts,
			},
			cli.Command{
				Name:   "getQuotas",
				Usage:  "Query the specific quota limits",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.getQuotas,
			},
			cli.Command{
				Name:   "getAQL",
				Usage:  "Query the account quota limit of an account",
				Flags:  []cli.Flag{addressFlag("Account address"), heightFlag()},
				Action: d.getAQL,
			},
			cli.Command{
				Name:   "setBQL",
				Usage:  "Set the block quota limit",
				Flags:  []cli.Flag{quotaLimitFlag("The quota value must be between 2 ** 63 - 1 and 2 ** 28 - 1"), adminPrivateFlag(), quotaFlag()},
				Action: d.setBQL,
			},
			cli.Command{
				Name:   "setDefaultAQL",
				Usage:  "Set the default account quota limit",
				Flags:  []cli.Flag{quotaLimitFlag("The quota value must be between 2 ** 63 - 1 and 2 ** 22 - 1"), adminPrivateFlag(), quotaFlag()},
				Action: d.setDefaultAQL,
			},
			cli.Command{
				Name:   "setAQL",
				Usage:  "Set the account quota limit of an account",
				Flags:  []cli.Flag{addressFlag("Account address"), quotaLimitFlag("The quota value must be between 2 ** 63 - 1 and 2 ** 22 - 1"), adminPrivateFlag(), quotaFlag()},
				Action: d.setAQL,
			},
		},
	}
}

func quotaLimitFlag(usage string) cli.Flag {
	return cli.StringFlag{Name: "quota-limit", Usage: usage, Required: true}
}

func (d *dispatcher) getBQL(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	bql, err := system.NewQuotaManager(client).GetBQL(height)
	if err != nil {
		return err
	}
	return d.report(ctx, bql)
}

func (d *dispatcher) getDefaultAQL(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	aql, err := system.NewQuotaManager(client).GetDefaultAQL(height)
	if err != nil {
		return err
	}
	return d.report(ctx, aql)
}

func (d *dispatcher) getQuotaAccounts(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	accounts, err := system.NewQuotaManager(client).GetAccounts(height)
	if err != nil {
		return err
	}
	return d.report(ctx, accounts)
}

func (d *dispatcher) getQuotas(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	quotas, err := system.NewQuotaManager(client).GetQuotas(height)
	if err != nil {
		return err
	}
	return d.report(ctx, quotas)
}

func (d *dispatcher) getAQL(ctx *cli.Context) error {
	addr, err := resolveAddress(ctx, "address")
	if err != nil {
		return err
	}
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	aql, err := system.NewQuotaManager(client).GetAQL(addr, height)
	if err != nil {
		return err
	}
	return d.report(ctx, aql)
}

func (d *dispatcher) setBQL(ctx *cli.Context) error {
	quotaLimit, err := resolveU64(ctx, "quota-limit")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "admin-private")
	if err != nil {
		return err
	}
	ack, err := system.NewQuotaManager(client).SetBQL(quotaLimit, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) setDefaultAQL(ctx *cli.Context) error {
	quotaLimit, err := resolveU64(ctx, "quota-limit")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "admin-private")
	if err != nil {
		return err
	}
	ack, err := system.NewQuotaManager(client).SetDefaultAQL(quotaLimit, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) setAQL(ctx *cli.Context) error {
	addr, err := resolveAddress(ctx, "address")
	if err != nil {
		return err
	}
	quotaLimit, err := resolveU64(ctx, "quota-limit")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "admin-private")
	if err != nil {
		return err
	}
	ack, err := system.NewQuotaManager(client).SetAQL(addr, quotaLimit, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}
