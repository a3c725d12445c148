package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNetwork(t *testing.T) {
	assert.Equal(t, MainnetConfig(), FromNetwork(NetworkMainnet))
	assert.Equal(t, FromNetwork(NetworkMainnet), FromNetwork(NetworkMainnet))
	assert.Equal(t, TestnetConfig(), FromNetwork(NetworkTestnet))
	assert.Equal(t, FromNetwork(NetworkTestnet), FromNetwork(NetworkTestnet))
	assert.NotEqual(t, FromNetwork(NetworkMainnet), FromNetwork(NetworkTestnet))

	for _, name := range []string{"", "unknown", "Mainnet", "calibnet"} {
		assert.Equal(t, MainnetConfig(), FromNetwork(name), name)
	}
}

func TestFromNetworkReturnsCopies(t *testing.T) {
	cfg := FromNetwork(NetworkTestnet)
	cfg.RPC.URL = "http://127.0.0.1:1234/rpc/v1"
	cfg.Unit.Symbol = "XFIL"

	assert.Equal(t, "https://api.calibration.node.glif.io", FromNetwork(NetworkTestnet).RPC.URL)
	assert.Equal(t, "tFIL", TestnetConfig().Unit.Symbol)
}

func TestInitialState(t *testing.T) {
	state := InitialState()
	assert.Equal(t, MainnetConfig(), state.Filecoin.Config)
	assert.NotNil(t, state.Filecoin.Messages)
	assert.Len(t, state.Filecoin.Messages, 0)

	state.Filecoin.Config.Network = NetworkTestnet
	assert.Equal(t, NetworkMainnet, InitialState().Filecoin.Config.Network)
}

func TestReadWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Snap.Network = NetworkTestnet
	cfg.Dialog.AutoApprove = true
	cfg.Log.Level = "debug"

	require.NoError(t, WriteFile(path, cfg))
	res, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, res)
}
