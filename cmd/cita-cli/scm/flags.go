package scm

import (
	"github.com/urfave/cli"

	"github.com/ruizhaoz1/cita-cli/internal/validator"
)

// Shared flag builders. Every operation declares its parameters by reusing
// these, so the usage surface and the dispatch code can never disagree on a
// parameter list.

func addressFlag(usage string) cli.Flag {
	return cli.StringFlag{Name: "address", Usage: usage, Required: true}
}

func accountFlag(usage string) cli.Flag {
	return cli.StringFlag{Name: "account", Usage: usage, Required: true}
}

func nameFlag(usage string) cli.Flag {
	return cli.StringFlag{Name: "name", Usage: usage, Required: true}
}

func heightFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "height",
		Usage: "The number of the block",
		Value: validator.LatestHeight,
	}
}

func quotaFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "quota",
		Usage: "Transaction quota costs, default 10000000",
	}
}

func privateKeyFlag() cli.Flag {
	return cli.StringFlag{Name: "private-key", Usage: "Private key", Required: true}
}

func adminPrivateFlag() cli.Flag {
	return cli.StringFlag{Name: "admin-private", Usage: "Private key must be admin", Required: true}
}

func originFlag() cli.Flag {
	return cli.StringFlag{Name: "origin", Usage: "Group origin address", Required: true}
}

func targetFlag() cli.Flag {
	return cli.StringFlag{Name: "target", Usage: "Group target address", Required: true}
}

func accountsFlag() cli.Flag {
	return cli.StringFlag{Name: "accounts", Usage: "Account address list, comma separated", Required: true}
}

func permissionFlag() cli.Flag {
	return cli.StringFlag{Name: "permission", Usage: "Permission address", Required: true}
}

func permissionsFlag() cli.Flag {
	return cli.StringFlag{Name: "permissions", Usage: "Permission address list, comma separated", Required: true}
}

func contractFlag() cli.Flag {
	return cli.StringFlag{Name: "contract", Usage: "The contract address", Required: true}
}

func contractsFlag() cli.Flag {
	return cli.StringFlag{Name: "contracts", Usage: "Contract address list, comma separated", Required: true}
}

func functionHashFlag() cli.Flag {
	return cli.StringFlag{Name: "function-hash", Usage: "The function hash", Required: true}
}

func functionHashesFlag() cli.Flag {
	return cli.StringFlag{Name: "function-hashes", Usage: "Function hash list, comma separated", Required: true}
}
