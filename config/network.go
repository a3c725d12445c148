package config

import (
	"github.com/ipfs-force-community/sophon-filsnap/types"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

var mainnetConfig = types.SnapConfig{
	DerivationPath: "m/44'/461'/0'/0/0",
	Network:        NetworkMainnet,
	RPC: types.RPCConfig{
		Token: "",
		URL:   "https://api.node.glif.io",
	},
	Unit: types.UnitConfig{
		Decimals: 18,
		Symbol:   "FIL",
	},
}

var testnetConfig = types.SnapConfig{
	DerivationPath: "m/44'/1'/0'/0/0",
	Network:        NetworkTestnet,
	RPC: types.RPCConfig{
		Token: "",
		URL:   "https://api.calibration.node.glif.io",
	},
	Unit: types.UnitConfig{
		Decimals: 18,
		Symbol:   "tFIL",
	},
}

// MainnetConfig returns a copy of the mainnet snap configuration.
func MainnetConfig() types.SnapConfig {
	return mainnetConfig
}

// TestnetConfig returns a copy of the testnet snap configuration.
func TestnetConfig() types.SnapConfig {
	return testnetConfig
}

// FromNetwork maps a network name to its default configuration, anything
// other than testnet resolves to mainnet.
func FromNetwork(networkName string) types.SnapConfig {
	switch networkName {
	case NetworkMainnet:
		return MainnetConfig()
	case NetworkTestnet:
		return TestnetConfig()
	default:
		return MainnetConfig()
	}
}

// InitialState is written to the host store on first run or whenever the
// stored value does not validate.
func InitialState() *types.PersistedState {
	return &types.PersistedState{
		Filecoin: types.FilecoinState{
			Config:   MainnetConfig(),
			Messages: []types.MessageStatus{},
		},
	}
}
