package service

import (
	"context"

	"github.com/filecoin-project/go-jsonrpc"
	"go.uber.org/fx"

	"github.com/ipfs-force-community/sophon-filsnap/config"
	"github.com/ipfs-force-community/sophon-filsnap/log"
	"github.com/ipfs-force-community/sophon-filsnap/models/repo"
	"github.com/ipfs-force-community/sophon-filsnap/types"
)

func SnapService() fx.Option {
	return fx.Options(
		fx.Provide(NewHostStore),
		fx.Provide(NewStateStore),
		fx.Provide(NewNodeDialer),
		fx.Provide(NewSnap),
	)
}

func NewHostStore(cfg *config.SnapHostConfig, r repo.Repo) HostStore {
	return NewRepoStore(cfg.ID, r.StateRepo())
}

// NewNodeDialer dials the node of the stored snap configuration, unless the
// host config pins a node, which then wins.
func NewNodeDialer(nodeCfg *config.NodeConfig, log *log.Logger) NodeDialer {
	if len(nodeCfg.Url) == 0 {
		return DialFullNode
	}

	log.Infof("use node %s for every request", nodeCfg.Url)
	pinned := types.RPCConfig{URL: nodeCfg.Url, Token: nodeCfg.Token}
	return func(ctx context.Context, _ types.RPCConfig) (FullNode, jsonrpc.ClientCloser, error) {
		return DialFullNode(ctx, pinned)
	}
}
