package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	shared "github.com/filecoin-project/venus/venus-shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipfs-force-community/sophon-filsnap/dialog"
	"github.com/ipfs-force-community/sophon-filsnap/testhelper"
	"github.com/ipfs-force-community/sophon-filsnap/types"
)

func TestEstimateMessageGas(t *testing.T) {
	ctx := context.Background()

	t.Run("default max fee", func(t *testing.T) {
		ts := setupSnap(t, dialog.Fixed(true))
		to := testhelper.RandAddress(t)

		var res types.MessageGasEstimate
		resultAs(t, ts.OnRPCRequest(ctx, types.SnapRequest{
			Method: types.MethodGetGasForMessage,
			Params: testhelper.ObjectToRaw(types.EstimateParams{
				Message: types.PartialMessage{To: to.String(), Value: "1000"},
			}),
		}), &res)

		assert.Equal(t, types.MessageGasEstimate{
			GasFeeCap:  testhelper.DefGasFeeCap.String(),
			GasLimit:   testhelper.DefGasUsed,
			GasPremium: testhelper.DefGasPremium.String(),
		}, res)

		require.Len(t, ts.node.EstimateCalls, 1)
		call := ts.node.EstimateCalls[0]
		assert.Equal(t, DefaultMaxFee, call.Spec.MaxFee.String())
		assert.Equal(t, "100000000000000000", call.Spec.MaxFee.String())
		assert.Equal(t, shared.EmptyTSK, call.TSK)
		assert.Equal(t, ts.keypair.Address, call.Msg.From)
		assert.Equal(t, to, call.Msg.To)
		assert.Equal(t, "1000", call.Msg.Value.String())
		assert.Equal(t, 1, ts.node.Calls())
	})

	t.Run("caller max fee is passed as is", func(t *testing.T) {
		for _, maxFee := range []string{"0", "1", "42", "123456789012345678901234567890"} {
			ts := setupSnap(t, dialog.Fixed(true))
			resp := ts.EstimateMessageGas(ctx, testhelper.ObjectToRaw(types.EstimateParams{
				Message: types.PartialMessage{To: testhelper.RandAddress(t).String(), Value: "0"},
				MaxFee:  maxFee,
			}))
			require.Nil(t, resp.Error)
			require.Len(t, ts.node.EstimateCalls, 1)
			assert.Equal(t, maxFee, ts.node.EstimateCalls[0].Spec.MaxFee.String())
		}
	})

	t.Run("invalid params make no remote call", func(t *testing.T) {
		to := testhelper.RandAddress(t).String()
		for name, params := range map[string]string{
			"no params":       ``,
			"not an object":   `"f1abc"`,
			"no message":      `{"maxFee":"1"}`,
			"no recipient":    `{"message":{"value":"1"}}`,
			"no value":        `{"message":{"to":"` + to + `"}}`,
			"sender supplied": `{"message":{"to":"` + to + `","value":"1","from":"` + to + `"}}`,
			"bad value":       `{"message":{"to":"` + to + `","value":"1.5"}}`,
			"negative value":  `{"message":{"to":"` + to + `","value":"-1"}}`,
			"bad max fee":     `{"message":{"to":"` + to + `","value":"1"},"maxFee":"0.1"}`,
			"numeric max fee": `{"message":{"to":"` + to + `","value":"1"},"maxFee":100}`,
			"bad recipient":   `{"message":{"to":"f0xyz","value":"1"}}`,
			"malformed json":  `{"message":`,
		} {
			t.Run(name, func(t *testing.T) {
				ts := setupSnap(t, dialog.Fixed(true))
				resp := ts.OnRPCRequest(ctx, types.SnapRequest{
					Method: types.MethodGetGasForMessage,
					Params: json.RawMessage(params),
				})
				require.NotNil(t, resp.Error)
				assert.Nil(t, resp.Result)
				assert.Contains(t, resp.Error.Message, "Invalid params - ")
				assert.NotEmpty(t, resp.Error.Data["issues"])

				assert.Equal(t, 0, ts.node.Calls())
				assert.Equal(t, 0, ts.node.Dials)
				assert.Equal(t, 0, ts.store.Gets)
				assert.Equal(t, 0, ts.store.Updates)
			})
		}
	})

	t.Run("remote failure", func(t *testing.T) {
		ts := setupSnap(t, dialog.Fixed(true))
		ts.node.Err = errors.New("actor not found")

		resp := ts.OnRPCRequest(ctx, types.SnapRequest{
			Method: types.MethodGetGasForMessage,
			Params: testhelper.ObjectToRaw(types.EstimateParams{
				Message: types.PartialMessage{To: testhelper.RandAddress(t).String(), Value: "1"},
			}),
		})
		require.NotNil(t, resp.Error)
		assert.Equal(t, `RPC call to "GasEstimateMessageGas" failed - actor not found`, resp.Error.Message)
		assert.Equal(t, "actor not found", resp.Error.Data["message"])
		assert.Len(t, ts.node.EstimateCalls, 1)
		assert.Equal(t, 1, ts.node.Closes)
	})

	t.Run("envelope shape", func(t *testing.T) {
		ts := setupSnap(t, dialog.Fixed(true))
		resp := ts.OnRPCRequest(ctx, types.SnapRequest{
			Method: types.MethodGetGasForMessage,
			Params: testhelper.ObjectToRaw(types.EstimateParams{
				Message: types.PartialMessage{To: testhelper.RandAddress(t).String(), Value: "1"},
			}),
		})
		assert.JSONEq(t, `{"result":{"gasfeecap":"10000","gaslimit":10000,"gaspremium":"1000"}}`, testhelper.ObjectToString(resp))
	})
}
