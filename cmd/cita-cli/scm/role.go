package scm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func roleCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "Role",
		Usage:  "Role contract queries",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "queryRole",
				Usage:  "Query the information of the role",
				Flags:  []cli.Flag{addressFlag("Role address"), heightFlag()},
				Action: d.queryRole,
			},
			cli.Command{
				Name:   "queryName",
				Usage:  "Query the name of the role",
				Flags:  []cli.Flag{addressFlag("Role address"), heightFlag()},
				Action: d.roleQueryName,
			},
			cli.Command{
				Name:   "queryPermissions",
				Usage:  "Query the permissions of the role",
				Flags:  []cli.Flag{addressFlag("Role address"), heightFlag()},
				Action: d.roleQueryPermissions,
			},
			cli.Command{
				Name:   "lengthOfPermissions",
				Usage:  "Query the number of permissions of the role",
				Flags:  []cli.Flag{addressFlag("Role address"), heightFlag()},
				Action: d.lengthOfPermissions,
			},
			cli.Command{
				Name:   "inPermissions",
				Usage:  "Check whether the permission is granted to the role",
				Flags:  []cli.Flag{addressFlag("Role address"), permissionFlag(), heightFlag()},
				Action: d.roleInPermissions,
			},
		},
	}
}

func (d *dispatcher) roleQuery(ctx *cli.Context, fn func(*system.RoleClient, common.Address, string) (interface{}, error)) error {
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
	result, err := fn(system.NewRole(client), addr, height)
	if err != nil {
		return err
	}
	return d.report(ctx, result)
}

func (d *dispatcher) queryRole(ctx *cli.Context) error {
	return d.roleQuery(ctx, func(c *system.RoleClient, addr common.Address, height string) (interface{}, error) {
		return c.QueryRole(addr, height)
	})
}

func (d *dispatcher) roleQueryName(ctx *cli.Context) error {
	return d.roleQuery(ctx, func(c *system.RoleClient, addr common.Address, height string) (interface{}, error) {
		return c.QueryName(addr, height)
	})
}

func (d *dispatcher) roleQueryPermissions(ctx *cli.Context) error {
	return d.roleQuery(ctx, func(c *system.RoleClient, addr common.Address, height string) (interface{}, error) {
		return c.QueryPermissions(addr, height)
	})
}

func (d *dispatcher) lengthOfPermissions(ctx *cli.Context) error {
	return d.roleQuery(ctx, func(c *system.RoleClient, addr common.Address, height string) (interface{}, error) {
		return c.LengthOfPermissions(addr, height)
	})
}

func (d *dispatcher) roleInPermissions(ctx *cli.Context) error {
	permission, err := resolveAddress(ctx, "permission")
	if err != nil {
		return err
	}
	return d.roleQuery(ctx, func(c *system.RoleClient, addr common.Address, height string) (interface{}, error) {
		return c.InPermissions(addr, permission, height)
	})
}
