package service

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/crypto"
	shared "github.com/filecoin-project/venus/venus-shared/types"

	"github.com/ipfs-force-community/sophon-filsnap/dialog"
	"github.com/ipfs-force-community/sophon-filsnap/schema"
	"github.com/ipfs-force-community/sophon-filsnap/types"
	"github.com/ipfs-force-community/sophon-filsnap/wallet"
)

const (
	sigTypeSecp256k1 = "SECP256K1"
	sigTypeBLS       = "BLS"
)

func (s *Snap) GetMessages(ctx context.Context) *types.SnapResponse {
	state, err := s.state.ReadState(ctx)
	if err != nil {
		return types.SerializeError("Failed to read state", err)
	}
	return types.NewResult(state.Filecoin.Messages)
}

// SignMessage completes the message with nonce and gas when the caller left
// them out, asks the user to approve it and signs it with the active account.
func (s *Snap) SignMessage(ctx context.Context, raw json.RawMessage) *types.SnapResponse {
	var params types.SignMessageParams
	if err := signMessageParamsSchema.Parse(raw, &params); err != nil {
		return types.SerializeError("Invalid params", err)
	}
	checked, err := checkPartialMessage(params.Message)
	if err != nil {
		return types.SerializeError("Invalid params", err)
	}
	msgParams, err := base64.StdEncoding.DecodeString(params.Message.Params)
	if err != nil {
		return types.SerializeError("Invalid params", schema.NewValidationError("message.params", "invalid base64: %v", err))
	}
	partial := params.Message
	msg := &shared.Message{
		To:       checked.to,
		From:     s.keypair.Address,
		Value:    checked.value,
		GasLimit: partial.GasLimit,
		Method:   abi.MethodNum(partial.Method),
		Params:   msgParams,
	}
	if msg.GasFeeCap, err = optionalAmount(partial.GasFeeCap); err != nil {
		return types.SerializeError("Invalid params", schema.NewValidationError("message.gasfeecap", "%v", err))
	}
	if msg.GasPremium, err = optionalAmount(partial.GasPremium); err != nil {
		return types.SerializeError("Invalid params", schema.NewValidationError("message.gaspremium", "%v", err))
	}

	node, closer, err := s.node(ctx)
	if err != nil {
		return types.SerializeError("Failed to connect to node", err)
	}
	defer closer()

	if partial.Nonce != nil {
		msg.Nonce = *partial.Nonce
	} else {
		nonce, err := node.MpoolGetNonce(ctx, msg.From)
		if err != nil {
			return types.SerializeError(`RPC call to "MpoolGetNonce" failed`, err)
		}
		msg.Nonce = nonce
	}

	if msg.GasLimit == 0 || len(partial.GasFeeCap) == 0 || len(partial.GasPremium) == 0 {
		maxFee := params.MaxFee
		if len(maxFee) == 0 {
			maxFee = DefaultMaxFee
		}
		est, err := s.estimateGas(ctx, node, msg, maxFee)
		if err != nil {
			return types.SerializeError(`RPC call to "GasEstimateMessageGas" failed`, err)
		}
		if msg.GasLimit == 0 {
			msg.GasLimit = est.GasLimit
		}
		if len(partial.GasFeeCap) == 0 {
			msg.GasFeeCap = est.GasFeeCap
		}
		if len(partial.GasPremium) == 0 {
			msg.GasPremium = est.GasPremium
		}
	}

	approved, err := s.dialog.Confirm(ctx, dialog.ConfirmationDialogContent{
		Prompt:          "Do you want to sign this message?",
		Description:     "Sign message from " + msg.From.String(),
		TextAreaContent: messageDetails(msg),
	})
	if err != nil {
		return types.SerializeError("Confirmation dialog failed", err)
	}
	if !approved {
		return types.SerializeError("User denied message signing", nil)
	}

	smsg, err := s.keypair.SignMessage(msg)
	if err != nil {
		return types.SerializeError("Failed to sign message", err)
	}
	return types.NewResult(types.SignedMessageObj{
		Message: types.FromMessage(&smsg.Message),
		Signature: types.SignatureObj{
			Type: sigTypeSecp256k1,
			Data: base64.StdEncoding.EncodeToString(smsg.Signature.Data),
		},
	})
}

// SendMessage pushes a signed message to the mpool and records its cid.
func (s *Snap) SendMessage(ctx context.Context, raw json.RawMessage) *types.SnapResponse {
	var signed types.SignedMessageObj
	if err := signedMessageSchema.Parse(raw, &signed); err != nil {
		return types.SerializeError("Invalid params", err)
	}
	smsg, err := toSignedMessage(signed)
	if err != nil {
		return types.SerializeError("Invalid params", err)
	}

	node, closer, err := s.node(ctx)
	if err != nil {
		return types.SerializeError("Failed to connect to node", err)
	}
	defer closer()

	c, err := node.MpoolPush(ctx, smsg)
	if err != nil {
		return types.SerializeError(`RPC call to "MpoolPush" failed`, err)
	}

	msgObj := types.FromMessage(&smsg.Message)
	status := types.MessageStatus{
		Cid:     c.String(),
		Message: &msgObj,
	}
	if err := s.state.UpdateMessage(ctx, status); err != nil {
		return types.SerializeError("Failed to update message state", err)
	}
	s.log.Infof("pushed message %s nonce %d", status.Cid, msgObj.Nonce)
	return types.NewResult(status)
}

func toSignedMessage(signed types.SignedMessageObj) (*shared.SignedMessage, error) {
	msg, err := signed.Message.Message()
	if err != nil {
		return nil, schema.NewValidationError("message", "%v", err)
	}
	data, err := base64.StdEncoding.DecodeString(signed.Signature.Data)
	if err != nil {
		return nil, schema.NewValidationError("signature.data", "invalid base64: %v", err)
	}

	sig := crypto.Signature{Data: data}
	switch signed.Signature.Type {
	case sigTypeSecp256k1:
		sig.Type = crypto.SigTypeSecp256k1
		if err := wallet.Verify(msg.From, msg.Cid().Bytes(), &sig); err != nil {
			return nil, schema.NewValidationError("signature", "%v", err)
		}
	case sigTypeBLS:
		sig.Type = crypto.SigTypeBLS
	}

	return &shared.SignedMessage{
		Message:   *msg,
		Signature: sig,
	}, nil
}

func optionalAmount(s string) (big.Int, error) {
	if len(s) == 0 {
		return big.Zero(), nil
	}
	return big.FromString(s)
}

func messageDetails(msg *shared.Message) string {
	maxFee := big.Mul(msg.GasFeeCap, big.NewInt(msg.GasLimit))
	return dialog.UIMessage([]dialog.UIItem{
		{Message: "To:", Value: msg.To},
		{Message: "Value:", Value: shared.FIL(msg.Value)},
		{Message: "Nonce:", Value: msg.Nonce},
		{Message: "Method:", Value: msg.Method},
		{Message: "Gas Limit:", Value: msg.GasLimit},
		{Message: "Gas Fee Cap:", Value: shared.FIL(msg.GasFeeCap)},
		{Message: "Gas Premium:", Value: shared.FIL(msg.GasPremium)},
		{Message: "Max Fee:", Value: shared.FIL(maxFee)},
	})
}
