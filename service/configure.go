package service

import (
	"context"
	"encoding/json"

	"github.com/ipfs-force-community/sophon-filsnap/config"
	"github.com/ipfs-force-community/sophon-filsnap/types"
)

// Configure replaces the stored configuration with the defaults of the given
// network, patched by the caller overrides.
func (s *Snap) Configure(ctx context.Context, raw json.RawMessage) *types.SnapResponse {
	var params types.ConfigureParams
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := configureParamsSchema.Parse(raw, &params); err != nil {
		return types.SerializeError("Invalid params", err)
	}

	cfg := config.FromNetwork(params.Network)
	if override := params.Configuration; override != nil {
		if len(override.DerivationPath) > 0 {
			cfg.DerivationPath = override.DerivationPath
		}
		if override.RPC != nil {
			cfg.RPC = *override.RPC
		}
		if override.Unit != nil {
			cfg.Unit = *override.Unit
		}
	}

	state, err := s.state.ReadState(ctx)
	if err != nil {
		return types.SerializeError("Failed to read state", err)
	}
	state.Filecoin.Config = cfg
	if err := s.state.WriteState(ctx, state); err != nil {
		return types.SerializeError("Failed to write state", err)
	}

	s.log.Infof("snap configured for %s, rpc %s", cfg.Network, cfg.RPC.URL)
	return types.NewResult(cfg)
}

func (s *Snap) GetConfig(ctx context.Context) *types.SnapResponse {
	state, err := s.state.ReadState(ctx)
	if err != nil {
		return types.SerializeError("Failed to read state", err)
	}
	return types.NewResult(state.Filecoin.Config)
}
