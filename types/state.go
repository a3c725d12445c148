package types

type RPCConfig struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type UnitConfig struct {
	Decimals      int    `json:"decimals"`
	Symbol        string `json:"symbol"`
	Image         string `json:"image,omitempty"`
	CustomViewURL string `json:"customViewUrl,omitempty"`
}

// SnapConfig is the per network configuration kept in the snap state.
type SnapConfig struct {
	// DerivationPath is stored and reported for wallets that read the snap
	// config, keys are never derived from it: the active account is the
	// private key of the host config.
	DerivationPath string     `json:"derivationPath"`
	Network        string     `json:"network" jsonschema:"enum=mainnet,enum=testnet"`
	RPC            RPCConfig  `json:"rpc"`
	Unit           UnitConfig `json:"unit"`
}

// MessageStatus tracks a pushed message by its cid.
type MessageStatus struct {
	Cid     string      `json:"cid" jsonschema:"minLength=1"`
	Message *MessageObj `json:"message,omitempty"`
}

type FilecoinState struct {
	Config   SnapConfig      `json:"config"`
	Messages []MessageStatus `json:"messages"`
}

// PersistedState is the single document the host keeps for the snap.
type PersistedState struct {
	Filecoin FilecoinState `json:"filecoin"`
}
