package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ipfs-force-community/sophon-filsnap/version"
)

var VersionCmd = &cli.Command{
	Name:  "version",
	Usage: "Show sophon-filsnap version information",
	Action: func(ctx *cli.Context) error {
		fmt.Println("client:", version.Version)

		api, closer, err := getAPI(ctx)
		if err != nil {
			return err
		}
		defer closer()

		daemon, err := api.Version(ctx.Context)
		if err != nil {
			return err
		}
		fmt.Println("daemon:", daemon)
		return nil
	},
}
