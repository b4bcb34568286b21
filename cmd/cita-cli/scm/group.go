package scm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func groupCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "Group",
		Usage:  "Group contract queries",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "queryInfo",
				Usage:  "Query the information of the group",
				Flags:  []cli.Flag{addressFlag("Group address"), heightFlag()},
				Action: d.groupQueryInfo,
			},
			cli.Command{
				Name:   "queryName",
				Usage:  "Query the name of the group",
				Flags:  []cli.Flag{addressFlag("Group address"), heightFlag()},
				Action: d.groupQueryName,
			},
			cli.Command{
				Name:   "queryAccounts",
				Usage:  "Query the accounts of the group",
				Flags:  []cli.Flag{addressFlag("Group address"), heightFlag()},
				Action: d.groupQueryAccounts,
			},
			cli.Command{
				Name:   "queryChild",
				Usage:  "Query the children of the group",
				Flags:  []cli.Flag{addressFlag("Group address"), heightFlag()},
				Action: d.groupQueryChild,
			},
			cli.Command{
				Name:   "queryChildLength",
				Usage:  "Query the number of children of the group",
				Flags:  []cli.Flag{addressFlag("Group address"), heightFlag()},
				Action: d.groupQueryChildLength,
			},
			cli.Command{
				Name:   "queryParent",
				Usage:  "Query the parent of the group",
				Flags:  []cli.Flag{addressFlag("Group address"), heightFlag()},
				Action: d.groupQueryParent,
			},
			cli.Command{
				Name:   "inGroup",
				Usage:  "Check whether the account is in the group",
				Flags:  []cli.Flag{addressFlag("Group address"), accountFlag("Account address"), heightFlag()},
				Action: d.inGroup,
			},
		},
	}
}

// groupQuery resolves the shared (address, height) pair of every group
// query and hands a ready facade to fn.
func (d *dispatcher) groupQuery(ctx *cli.Context, fn func(*system.GroupClient, common.Address, string) (interface{}, error)) error {
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
	result, err := fn(system.NewGroup(client), addr, height)
	if err != nil {
		return err
	}
	return d.report(ctx, result)
}

func (d *dispatcher) groupQueryInfo(ctx *cli.Context) error {
	return d.groupQuery(ctx, func(c *system.GroupClient, addr common.Address, height string) (interface{}, error) {
		return c.QueryInfo(addr, height)
	})
}

func (d *dispatcher) groupQueryName(ctx *cli.Context) error {
	return d.groupQuery(ctx, func(c *system.GroupClient, addr common.Address, height string) (interface{}, error) {
		return c.QueryName(addr, height)
	})
}

func (d *dispatcher) groupQueryAccounts(ctx *cli.Context) error {
	return d.groupQuery(ctx, func(c *system.GroupClient, addr common.Address, height string) (interface{}, error) {
		return c.QueryAccounts(addr, height)
	})
}

func (d *dispatcher) groupQueryChild(ctx *cli.Context) error {
	return d.groupQuery(ctx, func(c *system.GroupClient, addr common.Address, height string) (interface{}, error) {
		return c.QueryChild(addr, height)
	})
}

func (d *dispatcher) groupQueryChildLength(ctx *cli.Context) error {
	return d.groupQuery(ctx, func(c *system.GroupClient, addr common.Address, height string) (interface{}, error) {
		return c.QueryChildLength(addr, height)
	})
}

func (d *dispatcher) groupQueryParent(ctx *cli.Context) error {
	return d.groupQuery(ctx, func(c *system.GroupClient, addr common.Address, height string) (interface{}, error) {
		return c.QueryParent(addr, height)
	})
}

func (d *dispatcher) inGroup(ctx *cli.Context) error {
	account, err := resolveAddress(ctx, "account")
	if err != nil {
		return err
	}
	return d.groupQuery(ctx, func(c *system.GroupClient, addr common.Address, height string) (interface{}, error) {
		return c.InGroup(addr, account, height)
	})
}
