package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
)

func nodeManagerCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "NodeManager",
		Usage:  "Consensus node management",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "listNode",
				Usage:  "List the consensus nodes",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.listNode,
			},
			cli.Command{
				Name:   "listStake",
				Usage:  "List the stake of every consensus node",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.listStake,
			},
			cli.Command{
				Name:   "getStatus",
				Usage:  "Query the status of a node",
				Flags:  []cli.Flag{addressFlag("Node address"), heightFlag()},
				Action: d.getNodeStatus,
			},
			cli.Command{
				Name:   "stakePermillage",
				Usage:  "Query the vote weight of a node",
				Flags:  []cli.Flag{addressFlag("Query address"), heightFlag()},
				Action: d.stakePermillage,
			},
			cli.Command{
				Name:   "deleteNode",
				Usage:  "Degrade a consensus node",
				Flags:  []cli.Flag{addressFlag("Degraded node address"), adminPrivateFlag(), quotaFlag()},
				Action: d.deleteNode,
			},
			cli.Command{
				Name:   "approveNode",
				Usage:  "Approve a started node into consensus",
				Flags:  []cli.Flag{addressFlag("Approve node address"), adminPrivateFlag(), quotaFlag()},
				Action: d.approveNode,
			},
			cli.Command{
				Name:   "setStake",
				Usage:  "Set the stake of a node",
				Flags:  []cli.Flag{addressFlag("Set address"), stakeFlag(), adminPrivateFlag(), quotaFlag()},
				Action: d.setStake,
			},
		},
	}
}

func stakeFlag() cli.Flag {
	return cli.StringFlag{Name: "stake", Usage: "The stake you want to set", Required: true}
}

func (d *dispatcher) listNode(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	nodes, err := system.NewNodeManager(client).ListNode(height)
	if err != nil {
		return err
	}
	return d.report(ctx, nodes)
}

func (d *dispatcher) listStake(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	stakes, err := system.NewNodeManager(client).ListStake(height)
	if err != nil {
		return err
	}
	return d.report(ctx, stakes)
}

func (d *dispatcher) getNodeStatus(ctx *cli.Context) error {
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
	status, err := system.NewNodeManager(client).GetStatus(addr, height)
	if err != nil {
		return err
	}
	return d.report(ctx, status)
}

func (d *dispatcher) stakePermillage(ctx *cli.Context) error {
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
	permillage, err := system.NewNodeManager(client).StakePermillage(addr, height)
	if err != nil {
		return err
	}
	return d.report(ctx, permillage)
}

func (d *dispatcher) deleteNode(ctx *cli.Context) error {
	addr, err := resolveAddress(ctx, "address")
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
	ack, err := system.NewNodeManager(client).DeleteNode(addr, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) approveNode(ctx *cli.Context) error {
	addr, err := resolveAddress(ctx, "address")
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
	ack, err := system.NewNodeManager(client).ApproveNode(addr, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}

func (d *dispatcher) setStake(ctx *cli.Context) error {
	addr, err := resolveAddress(ctx, "address")
	if err != nil {
		return err
	}
	stake, err := resolveU64(ctx, "stake")
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
	ack, err := system.NewNodeManager(client).SetStake(addr, stake, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}
