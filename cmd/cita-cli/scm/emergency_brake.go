package scm

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/system"
	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

func emergencyBrakeCMD(d *dispatcher) cli.Command {
	return cli.Command{
		Name:   "EmergencyBrake",
		Usage:  "Emergency brake",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			cli.Command{
				Name:   "state",
				Usage:  "Query the emergency brake state",
				Flags:  []cli.Flag{heightFlag()},
				Action: d.brakeState,
			},
			cli.Command{
				Name:  "setState",
				Usage: "Set the emergency brake state",
				Flags: []cli.Flag{
					cli.StringFlag{Name: "state", Usage: "true or false", Required: true},
					quotaFlag(), adminPrivateFlag(),
				},
				Action: d.setBrakeState,
			},
		},
	}
}

func (d *dispatcher) brakeState(ctx *cli.Context) error {
	height, err := resolveHeight(ctx)
	if err != nil {
		return err
	}
	client, err := d.client(ctx)
	if err != nil {
		return err
	}
	state, err := system.NewEmergencyBrake(client).State(height)
	if err != nil {
		return err
	}
	return d.report(ctx, state)
}

func (d *dispatcher) setBrakeState(ctx *cli.Context) error {
	state, err := validator.ParseBool(ctx.String("state"))
	if err != nil {
		return errors.Wrap(err, "--state")
	}
	quota, err := resolveQuota(ctx)
	if err != nil {
		return err
	}
	client, err := d.writeClient(ctx, "admin-private")
	if err != nil {
		return err
	}
	ack, err := system.NewEmergencyBrake(client).SetState(state, quota)
	if err != nil {
		return err
	}
	return d.reportTx(ctx, ack)
}
