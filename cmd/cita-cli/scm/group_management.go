package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func groupManagementCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "GroupManagement",
		Usage:  "User management using group structs",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "newGroup",
				Usage:  "Create a new group",
				Flags:  []cli.Flag{originFlag(), nameFlag("Group name"), accountsFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.newGroup,
			},
			cli.Command{
				Name:   "deleteGroup",
				Usage:  "Delete the group",
				Flags:  []cli.Flag{originFlag(), targetFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.deleteGroup,
			},
			cli.Command{
				Name:   "updateGroupName",
				Usage:  "Update the group name",
				Flags:  []cli.Flag{originFlag(), targetFlag(), nameFlag("Group name"), quotaFlag(), privateKeyFlag()},
				Action: d.updateGroupName,
			},
			cli.Command{
				Name:   "addAccounts",
				Usage:  "Add accounts to the group",
				Flags:  []cli.Flag{originFlag(), targetFlag(), accountsFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.addGroupAccounts,
			},
			cli.Command{
				Name:   "deleteAccounts",
				Usage:  "Delete accounts from the group",
				Flags:  []cli.Flag{originFlag(), targetFlag(), accountsFlag(), quotaFlag(), privateKeyFlag()},
				Action: d.deleteGroupAccounts,
			},
			cli.Command{
				Name:   "checkScope",
				Usage:  "Check whether the target group is in the origin's scope",
				Flags:  []cli.Flag{originFlag(), targetFlag(), heightFlag()},
				Action: d.checkScope,
			},
			cli.Command{
				Name:   "queryGroups",
				Usage:  "Query all groups",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.queryGroups,
			},
		},
	}
}

func (d *dispatcher) newGroup(ctx *cli.Context) error {
	origin, err := resolveAddress(ctx, "origin")
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
	ack, err := system.NewGroupManagement(client).NewGroup(origin, ctx.String("name"), ctx.String("accounts"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) deleteGroup(ctx *cli.Context) error {
	origin, err := resolveAddress(ctx, "origin")
	if err != nil {
		return err
	}
	target, err := resolveAddress(ctx, "target")
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
	ack, err := system.NewGroupManagement(client).DeleteGroup(origin, target, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) updateGroupName(ctx *cli.Context) error {
	origin, err := resolveAddress(ctx, "origin")
	if err != nil {
		return err
	}
	target, err := resolveAddress(ctx, "target")
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
	ack, err := system.NewGroupManagement(client).UpdateGroupName(origin, target, ctx.String("name"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) addGroupAccounts(ctx *cli.Context) error {
	origin, err := resolveAddress(ctx, "origin")
	if err != nil {
		return err
	}
	target, err := resolveAddress(ctx, "target")
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
	ack, err := system.NewGroupManagement(client).AddAccounts(origin, target, ctx.String("accounts"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) deleteGroupAccounts(ctx *cli.Context) error {
	origin, err := resolveAddress(ctx, "origin")
	if err != nil {
		return err
	}
	target, err := resolveAddress(ctx, "target")
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
	ack, err := system.NewGroupManagement(client).DeleteAccounts(origin, target, ctx.String("accounts"), quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) checkScope(ctx *cli.Context) error {
	origin, err := resolveAddress(ctx, "origin")
	if err != nil {
		return err
	}
	target, err := resolveAddress(ctx, "target")
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
	in, err := system.NewGroupManagement(client).CheckScope(origin, target, height)
	if err != nil {
		return err
	}
	return d.report(ctx, in)
}

func (d *dispatcher) queryGroups(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	groups, err := system.NewGroupManagement(client).QueryGroups(height)
	if err != nil {
		return err
	}
	return d.report(ctx, groups)
}
