package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func permissionCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "Permission",
		Usage:  "Permission instance queries",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "inPermission",
				Usage:  "Check whether the resource is within the permission",
				Flags:  []cli.Flag{permissionFlag(), contractFlag(), functionHashFlag(), heightFlag()},
				Action: d.inPermission,
			},
			cli.Command{
				Name:   "queryInfo",
				Usage:  "Query the permission information",
				Flags:  []cli.Flag{permissionFlag(), heightFlag()},
				Action: d.permissionQueryInfo,
			},
			cli.Command{
				Name:   "queryName",
				Usage:  "Query the permission name",
				Flags:  []cli.Flag{permissionFlag(), heightFlag()},
				Action: d.permissionQueryName,
			},
			cli.Command{
				Name:   "queryResource",
				Usage:  "Query the permission resource",
				Flags:  []cli.Flag{permissionFlag(), heightFlag()},
				Action: d.permissionQueryResource,
			},
		},
	}
}

func (d *dispatcher) inPermission(ctx *cli.Context) error {
	permission, err := resolveAddress(ctx, "permission")
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
	ok, err := system.NewPermission(client).InPermission(permission, contract, functionHash, height)
	if err != nil {
		return err
	}
	return d.report(ctx, ok)
}

func (d *dispatcher) permissionQueryInfo(ctx *cli.Context) error {
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
	info, err := system.NewPermission(client).QueryInfo(permission, height)
	if err != nil {
		return err
	}
	return d.report(ctx, info)
}

func (d *dispatcher) permissionQueryName(ctx *cli.Context) error {
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
	name, err := system.NewPermission(client).QueryName(permission, height)
	if err != nil {
		return err
	}
	return d.report(ctx, name)
}

func (d *dispatcher) permissionQueryResource(ctx *cli.Context) error {
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
	resource, err := system.NewPermission(client).QueryResource(permission, height)
	if err != nil {
		return err
	}
	return d.report(ctx, resource)
}
