package client

import (
	"context"

	"github.com/ipfs-force-community/sophon-filsnap/types"
)

// IFilsnap is the api the host daemon serves under the Filsnap namespace.
type IFilsnap interface {
	OnRPCRequest(ctx context.Context, req types.SnapRequest) (*types.SnapResponse, error)
	Version(ctx context.Context) (string, error)
}

var _ IFilsnap = (*Filsnap)(nil)

type Filsnap struct {
	Internal struct {
		OnRPCRequest func(ctx context.Context, req types.SnapRequest) (*types.SnapResponse, error)
		Version      func(ctx context.Context) (string, error)
	}
}

func (f *Filsnap) OnRPCRequest(ctx context.Context, req types.SnapRequest) (*types.SnapResponse, error) {
	return f.Internal.OnRPCRequest(ctx, req)
}

func (f *Filsnap) Version(ctx context.Context) (string, error) {
	return f.Internal.Version(ctx)
}
