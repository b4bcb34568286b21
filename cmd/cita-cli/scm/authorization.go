package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func authorizationCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "Authorization",
		Usage:  "Authorization queries",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "queryPermissions",
				Usage:  "Query the permissions granted to the account",
				Flags:  []cli.Flag{accountFlag("Account address"), heightFlag()},
				Action: d.authQueryPermissions,
			},
			cli.Command{
				Name:   "queryAccounts",
				Usage:  "Query the accounts holding the permission",
				Flags:  []cli.Flag{permissionFlag(), heightFlag()},
				Action: d.authQueryAccounts,
			},
			cli.Command{
				Name:   "queryAllAccounts",
				Usage:  "Query all authorized accounts",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.authQueryAllAccounts,
			},
			cli.Command{
				Name:   "checkResource",
				Usage:  "Check whether the account may call the contract function",
				Flags:  []cli.Flag{accountFlag("Account address"), contractFlag(), functionHashFlag(), heightFlag()},
				Action: d.checkResource,
			},
			cli.Command{
				Name:   "checkPermission",
				Usage:  "Check whether the account holds the permission",
				Flags:  []cli.Flag{accountFlag("Account address"), permissionFlag(), heightFlag()},
				Action: d.checkPermission,
			},
		},
	}
}

func (d *dispatcher) authQueryPermissions(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "account")
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
	permissions, err := system.NewAuthorization(client).QueryPermissions(account, height)
	if err != nil {
		return err
	}
	return d.report(ctx, permissions)
}

func (d *dispatcher) authQueryAccounts(ctx *cli.Context) error {
	permission, err := resolveAddress(ctx, "permission")
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
	accounts, err := system.NewAuthorization(client).QueryAccounts(permission, height)
	if err != nil {
		return err
	}
	return d.report(ctx, accounts)
}

func (d *dispatcher) authQueryAllAccounts(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	accounts, err := system.NewAuthorization(client).QueryAllAccounts(height)
	if err != nil {
		return err
	}
	return d.report(ctx, accounts)
}

func (d *dispatcher) checkResource(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "account")
	if err != nil {
		return err
	}
	contract, err := resolveAddress(ctx, "contract")
	if err != nil {
		return err
	}
	functionHash, err := resolveHex(ctx, "function-hash")
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
	ok, err := system.NewAuthorization(client).CheckResource(account, contract, functionHash, height)
	if err != nil {
		return err
	}
	return d.report(ctx, ok)
}

func (d *dispatcher) checkPermission(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "account")
	if err != nil {
		return err
	}
	permission, err := resolveAddress(ctx, "permission")
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
	ok, err := system.NewAuthorization(client).CheckPermission(account, permission, height)
	if err != nil {
		return err
	}
	return d.report(ctx, ok)
}
