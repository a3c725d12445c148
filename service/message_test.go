package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/filecoin-project/go-state-types/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipfs-force-community/sophon-filsnap/dialog"
	"github.com/ipfs-force-community/sophon-filsnap/testhelper"
	"github.com/ipfs-force-community/sophon-filsnap/types"
	"github.com/ipfs-force-community/sophon-filsnap/wallet"
)

type recordDialog struct {
	answer   bool
	contents []dialog.ConfirmationDialogContent
}

func (d *recordDialog) Confirm(_ context.Context, content dialog.ConfirmationDialogContent) (bool, error) {
	d.contents = append(d.contents, content)
	return d.answer, nil
}

func signMessage(t *testing.T, ts *testSnap, params types.SignMessageParams) types.SignedMessageObj {
	var signed types.SignedMessageObj
	resultAs(t, ts.OnRPCRequest(context.Background(), types.SnapRequest{
		Method: types.MethodSignMessage,
		Params: testhelper.ObjectToRaw(params),
	}), &signed)
	return signed
}

func TestSignMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("fill nonce and gas", func(t *testing.T) {
		dlg := &recordDialog{answer: true}
		ts := setupSnap(t, dlg)
		ts.node.Nonce[ts.keypair.Address] = 5
		to := testhelper.RandAddress(t)

		signed := signMessage(t, ts, types.SignMessageParams{
			Message: types.PartialMessage{To: to.String(), Value: "10"},
			MaxFee:  "500",
		})

		assert.Equal(t, ts.keypair.Address.String(), signed.Message.From)
		assert.Equal(t, to.String(), signed.Message.To)
		assert.Equal(t, "10", signed.Message.Value)
		assert.Equal(t, uint64(5), signed.Message.Nonce)
		assert.Equal(t, testhelper.DefGasUsed, signed.Message.GasLimit)
		assert.Equal(t, testhelper.DefGasFeeCap.String(), signed.Message.GasFeeCap)
		assert.Equal(t, testhelper.DefGasPremium.String(), signed.Message.GasPremium)
		assert.Equal(t, "SECP256K1", signed.Signature.Type)

		require.Len(t, ts.node.EstimateCalls, 1)
		assert.Equal(t, "500", ts.node.EstimateCalls[0].Spec.MaxFee.String())

		msg, err := signed.Message.Message()
		require.NoError(t, err)
		sigData, err := base64.StdEncoding.DecodeString(signed.Signature.Data)
		require.NoError(t, err)
		assert.NoError(t, wallet.Verify(ts.keypair.Address, msg.Cid().Bytes(), &crypto.Signature{Type: crypto.SigTypeSecp256k1, Data: sigData}))

		require.Len(t, dlg.contents, 1)
		assert.Contains(t, dlg.contents[0].Description, ts.keypair.Address.String())
		assert.Contains(t, dlg.contents[0].TextAreaContent, "To: "+to.String())
		assert.Contains(t, dlg.contents[0].TextAreaContent, "Nonce: 5")
	})

	t.Run("supplied fields are kept", func(t *testing.T) {
		ts := setupSnap(t, dialog.Fixed(true))
		nonce := uint64(7)

		signed := signMessage(t, ts, types.SignMessageParams{
			Message: types.PartialMessage{
				To:         testhelper.RandAddress(t).String(),
				Value:      "10",
				Nonce:      &nonce,
				GasLimit:   2000,
				GasFeeCap:  "300",
				GasPremium: "200",
				Method:     2,
				Params:     base64.StdEncoding.EncodeToString([]byte{0x81, 0x01}),
			},
		})

		assert.Equal(t, nonce, signed.Message.Nonce)
		assert.Equal(t, int64(2000), signed.Message.GasLimit)
		assert.Equal(t, "300", signed.Message.GasFeeCap)
		assert.Equal(t, "200", signed.Message.GasPremium)
		assert.Equal(t, uint64(2), signed.Message.Method)
		assert.Equal(t, "gQE=", signed.Message.Params)
		assert.Equal(t, 0, ts.node.Calls())
	})

	t.Run("user declines", func(t *testing.T) {
		dlg := &recordDialog{answer: false}
		ts := setupSnap(t, dlg)

		resp := ts.OnRPCRequest(ctx, types.SnapRequest{
			Method: types.MethodSignMessage,
			Params: testhelper.ObjectToRaw(types.SignMessageParams{
				Message: types.PartialMessage{To: testhelper.RandAddress(t).String(), Value: "10"},
			}),
		})
		require.NotNil(t, resp.Error)
		assert.Equal(t, "User denied message signing", resp.Error.Message)
		assert.Nil(t, resp.Error.Data)
		assert.Nil(t, resp.Result)
		assert.Len(t, dlg.contents, 1)
	})

	t.Run("invalid params", func(t *testing.T) {
		dlg := &recordDialog{answer: true}
		ts := setupSnap(t, dlg)
		to := testhelper.RandAddress(t).String()

		for _, params := range []string{
			`{"message":{"to":"` + to + `","value":"1","from":"` + to + `"}}`,
			`{"message":{"to":"` + to + `","value":"1","params":"***"}}`,
			`{"message":{"to":"` + to + `","value":"1","nonce":-1}}`,
		} {
			resp := ts.OnRPCRequest(ctx, types.SnapRequest{Method: types.MethodSignMessage, Params: json.RawMessage(params)})
			require.NotNil(t, resp.Error, params)
			assert.Contains(t, resp.Error.Message, "Invalid params", params)
		}
		assert.Equal(t, 0, ts.node.Calls())
		assert.Empty(t, dlg.contents)
	})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("push and record", func(t *testing.T) {
		ts := setupSnap(t, dialog.Fixed(true))
		signed := signMessage(t, ts, types.SignMessageParams{
			Message: types.PartialMessage{To: testhelper.RandAddress(t).String(), Value: "10"},
		})

		var status types.MessageStatus
		resultAs(t, ts.OnRPCRequest(ctx, types.SnapRequest{
			Method: types.MethodSendMessage,
			Params: testhelper.ObjectToRaw(signed),
		}), &status)

		require.Len(t, ts.node.Pushed, 1)
		assert.Equal(t, ts.node.Pushed[0].Cid().String(), status.Cid)
		assert.Equal(t, &signed.Message, status.Message)

		var msgs []types.MessageStatus
		resultAs(t, ts.OnRPCRequest(ctx, types.SnapRequest{Method: types.MethodGetMessages}), &msgs)
		assert.Equal(t, []types.MessageStatus{status}, msgs)

		// pushing the same message again replaces its record
		resultAs(t, ts.OnRPCRequest(ctx, types.SnapRequest{
			Method: types.MethodSendMessage,
			Params: testhelper.ObjectToRaw(signed),
		}), &status)
		resultAs(t, ts.OnRPCRequest(ctx, types.SnapRequest{Method: types.MethodGetMessages}), &msgs)
		assert.Len(t, msgs, 1)

		next := signMessage(t, ts, types.SignMessageParams{
			Message: types.PartialMessage{To: testhelper.RandAddress(t).String(), Value: "20"},
		})
		assert.Equal(t, signed.Message.Nonce+1, next.Message.Nonce)
		resultAs(t, ts.OnRPCRequest(ctx, types.SnapRequest{
			Method: types.MethodSendMessage,
			Params: testhelper.ObjectToRaw(next),
		}), &status)
		resultAs(t, ts.OnRPCRequest(ctx, types.SnapRequest{Method: types.MethodGetMessages}), &msgs)
		require.Len(t, msgs, 2)
		assert.Equal(t, next.Message, *msgs[1].Message)
	})

	t.Run("tampered message", func(t *testing.T) {
		ts := setupSnap(t, dialog.Fixed(true))
		signed := signMessage(t, ts, types.SignMessageParams{
			Message: types.PartialMessage{To: testhelper.RandAddress(t).String(), Value: "10"},
		})
		signed.Message.Value = "10000000"

		resp := ts.OnRPCRequest(ctx, types.SnapRequest{
			Method: types.MethodSendMessage,
			Params: testhelper.ObjectToRaw(signed),
		})
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Message, "Invalid params")
		assert.Empty(t, ts.node.Pushed)
	})

	t.Run("push failure leaves state alone", func(t *testing.T) {
		ts := setupSnap(t, dialog.Fixed(true))
		signed := signMessage(t, ts, types.SignMessageParams{
			Message: types.PartialMessage{To: testhelper.RandAddress(t).String(), Value: "10"},
		})
		ts.node.Err = assert.AnError

		resp := ts.OnRPCRequest(ctx, types.SnapRequest{
			Method: types.MethodSendMessage,
			Params: testhelper.ObjectToRaw(signed),
		})
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Message, `RPC call to "MpoolPush" failed`)

		ts.node.Err = nil
		var msgs []types.MessageStatus
		resultAs(t, ts.OnRPCRequest(ctx, types.SnapRequest{Method: types.MethodGetMessages}), &msgs)
		assert.Empty(t, msgs)
	})
}
