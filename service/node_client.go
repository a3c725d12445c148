package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-jsonrpc"
	"github.com/filecoin-project/go-state-types/big"
	shared "github.com/filecoin-project/venus/venus-shared/types"
	"github.com/ipfs/go-cid"
	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"

	"github.com/ipfs-force-community/sophon-filsnap/types"
)

// FullNode is the part of the lotus/venus full node api the snap calls.
type FullNode interface {
	GasEstimateMessageGas(ctx context.Context, msg *shared.Message, spec *shared.MessageSendSpec, tsk shared.TipSetKey) (*shared.Message, error)
	MpoolGetNonce(ctx context.Context, addr address.Address) (uint64, error)
	MpoolPush(ctx context.Context, smsg *shared.SignedMessage) (cid.Cid, error)
	WalletBalance(ctx context.Context, addr address.Address) (big.Int, error)
}

var _ FullNode = (*FullNodeStruct)(nil)

type FullNodeStruct struct {
	Internal struct {
		GasEstimateMessageGas func(ctx context.Context, msg *shared.Message, spec *shared.MessageSendSpec, tsk shared.TipSetKey) (*shared.Message, error)
		MpoolGetNonce         func(ctx context.Context, addr address.Address) (uint64, error)
		MpoolPush             func(ctx context.Context, smsg *shared.SignedMessage) (cid.Cid, error)
		WalletBalance         func(ctx context.Context, addr address.Address) (big.Int, error)
	}
}

func (s *FullNodeStruct) GasEstimateMessageGas(ctx context.Context, msg *shared.Message, spec *shared.MessageSendSpec, tsk shared.TipSetKey) (*shared.Message, error) {
	return s.Internal.GasEstimateMessageGas(ctx, msg, spec, tsk)
}

func (s *FullNodeStruct) MpoolGetNonce(ctx context.Context, addr address.Address) (uint64, error) {
	return s.Internal.MpoolGetNonce(ctx, addr)
}

func (s *FullNodeStruct) MpoolPush(ctx context.Context, smsg *shared.SignedMessage) (cid.Cid, error) {
	return s.Internal.MpoolPush(ctx, smsg)
}

func (s *FullNodeStruct) WalletBalance(ctx context.Context, addr address.Address) (big.Int, error) {
	return s.Internal.WalletBalance(ctx, addr)
}

// NodeDialer opens a full node client for the rpc endpoint of the current
// snap configuration.
type NodeDialer func(ctx context.Context, rpc types.RPCConfig) (FullNode, jsonrpc.ClientCloser, error)

// DialFullNode connects to url, which is either a http(s)/ws(s) url or a
// multiaddr of the node api.
func DialFullNode(ctx context.Context, rpc types.RPCConfig) (FullNode, jsonrpc.ClientCloser, error) {
	headers := http.Header{}
	if len(rpc.Token) != 0 {
		headers.Add("Authorization", "Bearer "+rpc.Token)
	}
	addr, err := DialArgs(rpc.URL, "v1")
	if err != nil {
		return nil, nil, err
	}

	var res FullNodeStruct
	closer, err := jsonrpc.NewMergeClient(ctx, addr, "Filecoin", []interface{}{&res.Internal}, headers)
	if err != nil {
		return nil, nil, err
	}
	return &res, closer, nil
}

// DialArgs turns an api address into a jsonrpc endpoint. Multiaddrs dial the
// websocket api of the given version, urls without a path get /rpc/<version>
// appended.
func DialArgs(addr, version string) (string, error) {
	if strings.HasPrefix(addr, "/") {
		maddr, err := ma.NewMultiaddr(addr)
		if err != nil {
			return "", err
		}
		_, hostPort, err := manet.DialArgs(maddr)
		if err != nil {
			return "", err
		}
		return "ws://" + hostPort + "/rpc/" + version, nil
	}

	if idx := strings.Index(addr, "://"); idx >= 0 && !strings.Contains(addr[idx+3:], "/") {
		return addr + "/rpc/" + version, nil
	}
	return addr, nil
}
