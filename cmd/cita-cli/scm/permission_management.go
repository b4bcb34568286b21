package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func permissionManagementCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "PermissionManagement",
		Usage:  "Permission management",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "newPermission",
				Usage:  "Create a new permission",
				Flags:  []cli.Flag{nameFlag("Permission name"), contractsFlag(), functionHashesFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.newPermission,
			},
			cli.Command{
				Name:   "deletePermission",
				Usage:  "Delete the permission",
				Flags:  []cli.Flag{permissionFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.deletePermission,
			},
			cli.Command{
				Name:   "updatePermissionName",
				Usage:  "Update the permission name",
				Flags:  []cli.Flag{permissionFlag(), nameFlag("Permission name"), quotaFlag(), privateKeyFlag()},
				Action: d.updatePermissionName,
			},
			cli.Command{
				Name:   "addResources",
				Usage:  "Add resources to the permission",
				Flags:  []cli.Flag{permissionFlag(), contractsFlag(), functionHashesFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.addResources,
			},
			cli.Command{
				Name:   "deleteResources",
				Usage:  "Delete resources from the permission",
				Flags:  []cli.Flag{permissionFlag(), contractsFlag(), functionHashesFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.deleteResources,
			},
			cli.Command{
				Name:   "setAuthorization",
				Usage:  "Grant the permission to the account",
				Flags:  []cli.Flag{accountFlag("Account address"), permissionFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.setAuthorization,
			},
			cli.Command{
				Name:   "setAuthorizations",
				Usage:  "Grant several permissions to the account",
				Flags:  []cli.Flag{accountFlag("Account address"), permissionsFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.setAuthorizations,
			},
			cli.Command{
				Name:   "cancelAuthorization",
				Usage:  "Revoke the permission from the account",
				Flags:  []cli.Flag{accountFlag("Account address"), permissionFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.cancelAuthorization,
			},
			cli.Command{
				Name:   "cancelAuthorizations",
				Usage:  "Revoke several permissions from the account",
				Flags:  []cli.Flag{accountFlag("Account address"), permissionsFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.cancelAuthorizations,
			},
			cli.Command{
				Name:   "clearAuthorization",
				Usage:  "Revoke all permissions of the account",
				Flags:  []cli.Flag{accountFlag("Account address"), quotaFlag(), privateKeyFlag()},
				Action: d.clearAuthorization,
			},
		},
	}
}

func (d *dispatcher) newPermission(ctx *cli.Context) error {
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "private-key")
	if err != nil {
		return err
	}
	ack, err := system.NewPermissionManagement(client).NewPermission(
		ctx.String("name"), ctx.String("contracts"), ctx.String("function-hashes"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) deletePermission(ctx *cli.Context) error {
	permission, err := resolveAddress(ctx, "permission")
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
	ack, err := system.NewPermissionManagement(client).DeletePermission(permission, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) updatePermissionName(ctx *cli.Context) error {
	permission, err := resolveAddress(ctx, "permission")
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
	ack, err := system.NewPermissionManagement(client).UpdatePermissionName(permission, ctx.String("name"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) addResources(ctx *cli.Context) error {
	permission, err := resolveAddress(ctx, "permission")
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
	ack, err := system.NewPermissionManagement(client).AddResources(
		permission, ctx.String("contracts"), ctx.String("function-hashes"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) deleteResources(ctx *cli.Context) error {
	permission, err := resolveAddress(ctx, "permission")
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
	ack, err := system.NewPermissionManagement(client).DeleteResources(
		permission, ctx.String("contracts"), ctx.String("function-hashes"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) setAuthorization(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "account")
	if err != nil {
		return err
	}
	permission, err := resolveAddress(ctx, "permission")
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
	ack, err := system.NewPermissionManagement(client).SetAuthorization(account, permission, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) setAuthorizations(ctx *cli.Context) error {
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
	ack, err := system.NewPermissionManagement(client).SetAuthorizations(account, ctx.String("permissions"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) cancelAuthorization(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "account")
	if err != nil {
		return err
	}
	permission, err := resolveAddress(ctx, "permission")
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
	ack, err := system.NewPermissionManagement(client).CancelAuthorization(account, permission, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) cancelAuthorizations(ctx *cli.Context) error {
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
	ack, err := system.NewPermissionManagement(client).CancelAuthorizations(account, ctx.String("permissions"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) clearAuthorization(ctx *cli.Context) error {
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
	ack, err := system.NewPermissionManagement(client).ClearAuthorization(account, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}
