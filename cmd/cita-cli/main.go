package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli"

	citacli "github.com/ruizhaoz1/cita-cli"
	"github.com/ruizhaoz1/cita-cli/cmd/cita-cli/scm"
	"github.com/ruizhaoz1/cita-cli/internal/loggers"
	"github.com/ruizhaoz1/cita-cli/internal/repo"
)

func main() {
	app := cli.NewApp()
	app.Name = "cita-cli"
	app.Usage = "A command line tool for CITA system contracts"
	app.Version = citacli.CurrentVersion
	app.Compiled = time.Now()

	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("%s version: %s-%s\n", app.Name, citacli.CurrentVersion, citacli.CurrentCommit)
		fmt.Printf("Build date: %s\n", citacli.BuildDate)
		fmt.Printf("System version: %s/%s\n", citacli.Platform, citacli.GoVersion)
	}

	// global flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Config file path",
		},
		cli.StringFlag{
			Name:  "url",
			Usage: "JSON-RPC endpoint of the chain",
		},
		cli.StringFlag{
			Name:  "algorithm",
			Usage: "Crypto algorithm, sha3 or blake2b",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Log the raw JSON-RPC exchange",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}

	config, err := repo.UnmarshalConfig(configPath(os.Args[1:]))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	loggers.Initialize(config.Debug)
	session := repo.NewSession()

	app.Commands = []cli.Command{
		scm.LoadSCMCommand(config, session),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// configPath peeks at --config before urfave/cli parses anything: the config
// has to be loaded before the command tree is built. Both the space-separated
// and the = form are recognized.
func configPath(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-config="):
			return strings.TrimPrefix(arg, "-config=")
		}
	}
	return ""
}
