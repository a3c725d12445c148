package service

import (
	"context"
	"time"

	"github.com/filecoin-project/go-jsonrpc"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/ipfs-force-community/sophon-filsnap/dialog"
	"github.com/ipfs-force-community/sophon-filsnap/log"
	"github.com/ipfs-force-community/sophon-filsnap/metrics"
	"github.com/ipfs-force-community/sophon-filsnap/types"
	"github.com/ipfs-force-community/sophon-filsnap/wallet"
)

// Snap answers the requests the host forwards, one at a time.
type Snap struct {
	dialer  NodeDialer
	keypair *wallet.Keypair
	state   *StateStore
	dialog  dialog.Dialog
	log     *log.Logger
}

func NewSnap(dialer NodeDialer, keypair *wallet.Keypair, state *StateStore, dlg dialog.Dialog, logger *log.Logger) *Snap {
	return &Snap{
		dialer:  dialer,
		keypair: keypair,
		state:   state,
		dialog:  dlg,
		log:     logger,
	}
}

// OnRPCRequest routes req to its handler. Failures never escape as errors,
// they come back as the error of the response.
func (s *Snap) OnRPCRequest(ctx context.Context, req types.SnapRequest) *types.SnapResponse {
	start := time.Now()
	entry := s.log.WithFields(logrus.Fields{
		"req-id": uuid.New().String(),
		"method": req.Method,
	})
	entry.Debug("receive request")

	var resp *types.SnapResponse
	metricMethod := req.Method
	switch req.Method {
	case types.MethodGetGasForMessage:
		resp = s.EstimateMessageGas(ctx, req.Params)
	case types.MethodConfigure:
		resp = s.Configure(ctx, req.Params)
	case types.MethodGetConfig:
		resp = s.GetConfig(ctx)
	case types.MethodGetAddress:
		resp = s.GetAddress(ctx)
	case types.MethodGetPublicKey:
		resp = s.GetPublicKey(ctx)
	case types.MethodGetBalance:
		resp = s.GetBalance(ctx)
	case types.MethodGetMessages:
		resp = s.GetMessages(ctx)
	case types.MethodSignMessage:
		resp = s.SignMessage(ctx, req.Params)
	case types.MethodSendMessage:
		resp = s.SendMessage(ctx, req.Params)
	default:
		metricMethod = "unsupported"
		resp = types.SerializeError("Unsupported RPC method", map[string]interface{}{"method": req.Method})
	}

	failed := resp.Error != nil
	if failed {
		entry.Warnf("request failed: %s", resp.Error.Message)
	} else {
		entry.Debugf("request done in %s", time.Since(start))
	}
	metrics.RecordRequest(ctx, metricMethod, failed, start)
	return resp
}

// node dials the rpc endpoint of the stored configuration.
func (s *Snap) node(ctx context.Context) (FullNode, jsonrpc.ClientCloser, error) {
	state, err := s.state.ReadState(ctx)
	if err != nil {
		return nil, nil, err
	}
	node, closer, err := s.dialer(ctx, state.Filecoin.Config.RPC)
	if err != nil {
		return nil, nil, xerrors.Errorf("dial %s: %w", state.Filecoin.Config.RPC.URL, err)
	}
	return node, closer, nil
}
