package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func roleManagementCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "RoleManagement",
		Usage:  "Role management",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "newRole",
				Usage:  "Create a new role",
				Flags:  []cli.Flag{nameFlag("Role name"), permissionsFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.newRole,
			},
			cli.Command{
				Name:   "deleteRole",
				Usage:  "Delete the role",
				Flags:  []cli.Flag{addressFlag("Role address"), quotaFlag(), privateKeyFlag()},
				Action: d.deleteRole,
			},
			cli.Command{
				Name:   "updateRoleName",
				Usage:  "Update the role name",
				Flags:  []cli.Flag{addressFlag("Role address"), nameFlag("Role name"), quotaFlag(), privateKeyFlag()},
				Action: d.updateRoleName,
			},
			cli.Command{
				Name:   "addPermissions",
				Usage:  "Add permissions to the role",
				Flags:  []cli.Flag{addressFlag("Role address"), permissionsFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.addRolePermissions,
			},
			cli.Command{
				Name:   "deletePermissions",
				Usage:  "Delete permissions from the role",
				Flags:  []cli.Flag{addressFlag("Role address"), permissionsFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.deleteRolePermissions,
			},
			cli.Command{
				Name:   "setRole",
				Usage:  "Set the role to the account",
				Flags:  []cli.Flag{accountFlag("Account address"), addressFlag("Role address"), quotaFlag(), privateKeyFlag()},
				Action: d.setRole,
			},
			cli.Command{
				Name:   "cancelRole",
				Usage:  "Cancel the account's role",
				Flags:  []cli.Flag{accountFlag("Account address"), addressFlag("Role address"), quotaFlag(), privateKeyFlag()},
				Action: d.cancelRole,
			},
			cli.Command{
				Name:   "clearRole",
				Usage:  "Clear all roles of the account",
				Flags:  []cli.Flag{accountFlag("Account address"), quotaFlag(), privateKeyFlag()},
				Action: d.clearRole,
			},
			cli.Command{
				Name:   "queryRoles",
				Usage:  "Query the roles of the account",
				Flags:  []cli.Flag{accountFlag("Account address"), heightFlag()},
				Action: d.queryRoles,
			},
			cli.Command{
				Name:   "queryAccounts",
				Usage:  "Query the accounts that have the role",
				Flags:  []cli.Flag{addressFlag("Role address"), heightFlag()},
				Action: d.roleQueryAccounts,
			},
		},
	}
}

func (d *dispatcher) newRole(ctx *cli.Context) error {
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewRoleManagement(client).NewRole(ctx.String("name"), ctx.String("permissions"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) deleteRole(ctx *cli.Context) error {
	role, err := resolveAddress(ctx, "address")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewRoleManagement(client).DeleteRole(role, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) updateRoleName(ctx *cli.Context) error {
	role, err := resolveAddress(ctx, "address")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewRoleManagement(client).UpdateRoleName(role, ctx.String("name"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) addRolePermissions(ctx *cli.Context) error {
	role, err := resolveAddress(ctx, "address")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewRoleManagement(client).AddPermissions(role, ctx.String("permissions"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) deleteRolePermissions(ctx *cli.Context) error {
	role, err := resolveAddress(ctx, "address")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewRoleManagement(client).DeletePermissions(role, ctx.String("permissions"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) setRole(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "account")
	if err != nil {
		return err
	}
	role, err := resolveAddress(ctx, "address")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewRoleManagement(client).SetRole(account, role, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) cancelRole(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "account")
	if err != nil {
		return err
	}
	role, err := resolveAddress(ctx, "address")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewRoleManagement(client).CancelRole(account, role, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) clearRole(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "account")
	if err != nil {
		return err
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewRoleManagement(client).ClearRole(account, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) queryRoles(ctx *cli.Context) error {
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
	roles, err := system.NewRoleManagement(client).QueryRoles(account, height)
	if err != nil {
		return err
	}
	return d.report(ctx, roles)
}

func (d *dispatcher) roleQueryAccounts(ctx *cli.Context) error {
	role, err := resolveAddress(ctx, "address")
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
	accounts, err := system.NewRoleManagement(client).QueryAccounts(role, height)
	if err != nil {
		return err
	}
	return d.report(ctx, accounts)
}
