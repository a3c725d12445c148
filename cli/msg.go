package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/filecoin-project/go-state-types/big"
	venusTypes "github.com/filecoin-project/venus/venus-shared/types"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/ipfs-force-community/sophon-filsnap/types"
)

var maxFeeFlag = &cli.StringFlag{
	Name:  "max-fee",
	Usage: "Spend up to X attoFIL for message",
}

var MsgCmds = &cli.Command{
	Name:  "msg",
	Usage: "message commands",
	Subcommands: []*cli.Command{
		estimateCmd,
		listCmd,
		sendCmd,
	},
}

// parseValue accepts FIL amounts like "0.5" or "0.5 FIL" and returns attoFIL.
func parseValue(s string) (string, error) {
	val, err := venusTypes.ParseFIL(s)
	if err != nil {
		return "", xerrors.Errorf("parse value %s: %w", s, err)
	}
	return big.Int(val).String(), nil
}

var estimateCmd = &cli.Command{
	Name:      "estimate",
	Usage:     "estimate the gas of a transfer from the active account",
	ArgsUsage: "<to> <value in FIL>",
	Flags:     []cli.Flag{maxFeeFlag},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return xerrors.New("must pass recipient and value")
		}
		value, err := parseValue(ctx.Args().Get(1))
		if err != nil {
			return err
		}

		var res types.MessageGasEstimate
		err = callSnap(ctx, types.MethodGetGasForMessage, types.EstimateParams{
			Message: types.PartialMessage{To: ctx.Args().Get(0), Value: value},
			MaxFee:  ctx.String(maxFeeFlag.Name),
		}, &res)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var listCmd = &cli.Command{
	Name:  "list",
	Usage: "list the messages sent by the snap",
	Action: func(ctx *cli.Context) error {
		var msgs []types.MessageStatus
		if err := callSnap(ctx, types.MethodGetMessages, nil, &msgs); err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, color.New(color.Bold).Sprint("Cid\tTo\tNonce\tValue\tGasLimit\tGasFeeCap\tGasPremium\tMethod"))
		for _, msg := range msgs {
			if msg.Message == nil {
				fmt.Fprintf(tw, "%s\t\t\t\t\t\t\t\n", msg.Cid)
				continue
			}
			m := msg.Message
			val, err := big.FromString(m.Value)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\t%s\t%d\n", msg.Cid, m.To, m.Nonce,
				venusTypes.FIL(val).String(), m.GasLimit, m.GasFeeCap, m.GasPremium, m.Method)
		}
		return tw.Flush()
	},
}

var sendCmd = &cli.Command{
	Name:      "send",
	Usage:     "sign a transfer from the active account and push it",
	ArgsUsage: "<to> <value in FIL>",
	Flags: []cli.Flag{
		maxFeeFlag,
		&cli.Uint64Flag{
			Name:  "nonce",
			Usage: "specify the nonce, the mpool nonce is used otherwise",
		},
		&cli.Int64Flag{
			Name:  "gas-limit",
			Usage: "specify the gas limit, estimated otherwise",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return xerrors.New("must pass recipient and value")
		}
		value, err := parseValue(ctx.Args().Get(1))
		if err != nil {
			return err
		}

		params := types.SignMessageParams{
			Message: types.PartialMessage{
				To:       ctx.Args().Get(0),
				Value:    value,
				GasLimit: ctx.Int64("gas-limit"),
			},
			MaxFee: ctx.String(maxFeeFlag.Name),
		}
		if ctx.IsSet("nonce") {
			nonce := ctx.Uint64("nonce")
			params.Message.Nonce = &nonce
		}

		var signed types.SignedMessageObj
		if err := callSnap(ctx, types.MethodSignMessage, params, &signed); err != nil {
			return err
		}
		var status types.MessageStatus
		if err := callSnap(ctx, types.MethodSendMessage, signed, &status); err != nil {
			return err
		}
		fmt.Println(status.Cid)
		return nil
	},
}
