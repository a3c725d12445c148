package service

import (
	"context"

	"github.com/ipfs-force-community/sophon-filsnap/types"
)

func (s *Snap) GetAddress(_ context.Context) *types.SnapResponse {
	return types.NewResult(s.keypair.Address.String())
}

func (s *Snap) GetPublicKey(_ context.Context) *types.SnapResponse {
	return types.NewResult(s.keypair.PublicKeyHex())
}

// GetBalance returns the balance of the active account in attoFIL.
func (s *Snap) GetBalance(ctx context.Context) *types.SnapResponse {
	node, closer, err := s.node(ctx)
	if err != nil {
		return types.SerializeError("Failed to connect to node", err)
	}
	defer closer()

	balance, err := node.WalletBalance(ctx, s.keypair.Address)
	if err != nil {
		return types.SerializeError(`RPC call to "WalletBalance" failed`, err)
	}
	return types.NewResult(balance.String())
}
