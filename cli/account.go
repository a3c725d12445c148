package cli

import (
	"fmt"

	"github.com/filecoin-project/go-state-types/big"
	venusTypes "github.com/filecoin-project/venus/venus-shared/types"
	"github.com/urfave/cli/v2"

	"github.com/ipfs-force-community/sophon-filsnap/types"
)

var AccountCmds = &cli.Command{
	Name:  "account",
	Usage: "active account commands",
	Subcommands: []*cli.Command{
		addressCmd,
		publicKeyCmd,
		balanceCmd,
	},
}

var addressCmd = &cli.Command{
	Name:  "address",
	Usage: "show the address of the active account",
	Action: func(ctx *cli.Context) error {
		var addr string
		if err := callSnap(ctx, types.MethodGetAddress, nil, &addr); err != nil {
			return err
		}
		fmt.Println(addr)
		return nil
	},
}

var publicKeyCmd = &cli.Command{
	Name:  "public-key",
	Usage: "show the hex public key of the active account",
	Action: func(ctx *cli.Context) error {
		var pub string
		if err := callSnap(ctx, types.MethodGetPublicKey, nil, &pub); err != nil {
			return err
		}
		fmt.Println(pub)
		return nil
	},
}

var balanceCmd = &cli.Command{
	Name:  "balance",
	Usage: "show the balance of the active account",
	Action: func(ctx *cli.Context) error {
		var balance string
		if err := callSnap(ctx, types.MethodGetBalance, nil, &balance); err != nil {
			return err
		}
		val, err := big.FromString(balance)
		if err != nil {
			return err
		}
		fmt.Println(venusTypes.FIL(val).String())
		return nil
	},
}
