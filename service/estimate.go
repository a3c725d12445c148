package service

import (
	"context"
	"encoding/json"

	"github.com/filecoin-project/go-state-types/big"
	shared "github.com/filecoin-project/venus/venus-shared/types"

	"github.com/ipfs-force-community/sophon-filsnap/types"
)

// DefaultMaxFee is the fee ceiling, in attoFIL, used when the caller does not
// give one (0.1 FIL).
const DefaultMaxFee = "100000000000000000"

// EstimateMessageGas estimates the gas of a transfer from the active account.
func (s *Snap) EstimateMessageGas(ctx context.Context, raw json.RawMessage) *types.SnapResponse {
	var params types.EstimateParams
	if err := estimateParamsSchema.Parse(raw, &params); err != nil {
		return types.SerializeError("Invalid params", err)
	}
	checked, err := checkPartialMessage(params.Message)
	if err != nil {
		return types.SerializeError("Invalid params", err)
	}

	maxFee := params.MaxFee
	if len(maxFee) == 0 {
		maxFee = DefaultMaxFee
	}

	node, closer, err := s.node(ctx)
	if err != nil {
		return types.SerializeError("Failed to connect to node", err)
	}
	defer closer()

	msg := &shared.Message{
		To:    checked.to,
		From:  s.keypair.Address,
		Value: checked.value,
	}
	res, err := s.estimateGas(ctx, node, msg, maxFee)
	if err != nil {
		return types.SerializeError(`RPC call to "GasEstimateMessageGas" failed`, err)
	}

	return types.NewResult(types.MessageGasEstimate{
		GasFeeCap:  res.GasFeeCap.String(),
		GasLimit:   res.GasLimit,
		GasPremium: res.GasPremium.String(),
	})
}

func (s *Snap) estimateGas(ctx context.Context, node FullNode, msg *shared.Message, maxFee string) (*shared.Message, error) {
	fee, err := big.FromString(maxFee)
	if err != nil {
		return nil, err
	}
	return node.GasEstimateMessageGas(ctx, msg, &shared.MessageSendSpec{MaxFee: fee}, shared.EmptyTSK)
}
