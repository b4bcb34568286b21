package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func adminManagementCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "AdminManagement",
		Usage:  "Chain admin management",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "admin",
				Usage:  "Query the current admin",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.admin,
			},
			cli.Command{
				Name:   "isAdmin",
				Usage:  "Check whether the account is the admin",
				Flags:  []cli.Flag{addressFlag("Account address"), heightFlag()},
				Action: d.isAdmin,
			},
			cli.Command{
				Name:   "update",
				Usage:  "Hand the admin role to another account",
				Flags:  []cli.Flag{addressFlag("Account address"), quotaFlag(), adminPrivateFlag()},
				Action: d.updateAdmin,
			},
		},
	}
}

func (d *dispatcher) admin(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	admin, err := system.NewAdmin(client).Admin(height)
	if err != nil {
		return err
	}
	return d.report(ctx, admin)
}

func (d *dispatcher) isAdmin(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "address")
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
	ok, err := system.NewAdmin(client).IsAdmin(account, height)
	if err != nil {
		return err
	}
	return d.report(ctx, ok)
}

func (d *dispatcher) updateAdmin(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "address")
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
	ack, err := system.NewAdmin(client).Update(account, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}
