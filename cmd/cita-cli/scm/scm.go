package scm

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/repo"
)

// ErrUnknownCommand covers every unmatched command path. A known group with
// an unknown operation reports the same way as a wholly unknown group.
var ErrUnknownCommand = errors.New("unknown command")

// dispatcher carries the per-process state every command action needs: the
// loaded configuration and the interactive session.
type dispatcher struct {
	config  *repo.Config
	session *repo.Session
}

// LoadSCMCommand builds the system contract manager command tree. The flag
// declarations on each subcommand are the single source of truth for both
// usage output and dispatch.
func LoadSCMCommand(config *repo.Config, session *repo.Session) cli.Command {
	d := &dispatcher{config: config, session: session}
	return cli.Command{
		Name:   "scm",
		Usage:  "System contract manager",
		Action: d.unknownPath,
		Subcommands: cli.Commands{
			nodeManagerCMD(d),
			quotaManagerCMD(d),
			groupCMD(d),
			groupManagementCMD(d),
			roleCMD(d),
			roleManagementCMD(d),
			authorizationCMD(d),
			permissionCMD(d),
			permissionManagementCMD(d),
			adminManagementCMD(d),
			batchTxCMD(d),
			sysConfigCMD(d),
			emergencyBrakeCMD(d),
		},
	}
}

// unknownPath is the fallback action of every command that only exists to
// hold subcommands. It fires before any argument parsing.
func (d *dispatcher) unknownPath(ctx *cli.Context) error {
	path := ctx.Command.HelpName
	if path == "" {
		path = ctx.App.HelpName
	}
	if args := ctx.Args(); len(args) > 0 {
		path += " " + strings.Join(args, " ")
	}
	return errors.Wrapf(ErrUnknownCommand, "%q (run with --help for usage)", path)
}
