package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/ipfs-force-community/sophon-filsnap/types"
)

var ConfigCmds = &cli.Command{
	Name:  "config",
	Usage: "snap configuration commands",
	Subcommands: []*cli.Command{
		getConfigCmd,
		configureCmd,
	},
}

var getConfigCmd = &cli.Command{
	Name:  "get",
	Usage: "show the snap configuration",
	Action: func(ctx *cli.Context) error {
		var cfg types.SnapConfig
		if err := callSnap(ctx, types.MethodGetConfig, nil, &cfg); err != nil {
			return err
		}
		return printJSON(cfg)
	},
}

var configureCmd = &cli.Command{
	Name:  "set",
	Usage: "reset the snap configuration to the defaults of a network",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "network",
			Usage: "mainnet or testnet",
			Value: "mainnet",
		},
		&cli.StringFlag{
			Name:  "derivation-path",
			Usage: "override the derivation path",
		},
		&cli.StringFlag{
			Name:  "rpc-url",
			Usage: "override the node rpc url",
		},
		&cli.StringFlag{
			Name:  "rpc-token",
			Usage: "token of the node rpc, used with --rpc-url",
		},
	},
	Action: func(ctx *cli.Context) error {
		params := types.ConfigureParams{Network: ctx.String("network")}
		override := &types.ConfigOverride{DerivationPath: ctx.String("derivation-path")}
		if ctx.IsSet("rpc-url") {
			override.RPC = &types.RPCConfig{
				URL:   ctx.String("rpc-url"),
				Token: ctx.String("rpc-token"),
			}
		}
		if len(override.DerivationPath) > 0 || override.RPC != nil {
			params.Configuration = override
		}

		var cfg types.SnapConfig
		if err := callSnap(ctx, types.MethodConfigure, params, &cfg); err != nil {
			return err
		}
		return printJSON(cfg)
	},
}
