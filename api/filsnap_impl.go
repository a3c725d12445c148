package api

import (
	"context"

	"github.com/ipfs-force-community/sophon-filsnap/api/client"
	"github.com/ipfs-force-community/sophon-filsnap/service"
	"github.com/ipfs-force-community/sophon-filsnap/types"
	"github.com/ipfs-force-community/sophon-filsnap/version"
)

var _ client.IFilsnap = (*SnapImp)(nil)

type SnapImp struct {
	Snap *service.Snap
}

func NewSnapImp(snap *service.Snap) *SnapImp {
	return &SnapImp{Snap: snap}
}

// OnRPCRequest never fails at the transport level, snap failures travel in
// the error of the response.
func (s *SnapImp) OnRPCRequest(ctx context.Context, req types.SnapRequest) (*types.SnapResponse, error) {
	return s.Snap.OnRPCRequest(ctx, req), nil
}

func (s *SnapImp) Version(_ context.Context) (string, error) {
	return version.Version, nil
}
