package config

import (
	"time"
)

type Config struct {
	Snap    SnapHostConfig `toml:"snap"`
	Node    NodeConfig     `toml:"node"`
	DB      DbConfig       `toml:"db"`
	Log     LogConfig      `toml:"log"`
	API     APIConfig      `toml:"api"`
	Dialog  DialogConfig   `toml:"dialog"`
	Metrics MetricsConfig  `toml:"metrics"`
}

// SnapHostConfig describes the snap instance the host runs.
type SnapHostConfig struct {
	// ID is the key of the state cell owned by the snap
	ID string `toml:"id"`
	// Network selects the default SnapConfig, mainnet or testnet
	Network string `toml:"network"`
	// PrivateKey is the hex encoded secp256k1 key of the active account
	PrivateKey string `toml:"privateKey"`
}

// NodeConfig overrides the rpc endpoint of the persisted SnapConfig when set.
type NodeConfig struct {
	Url   string `toml:"url"`
	Token string `toml:"token"`
}

type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

type APIConfig struct {
	Address string
}

type DbConfig struct {
	Type   string       `toml:"type"`
	MySql  MySqlConfig  `toml:"mysql"`
	Sqlite SqliteConfig `toml:"sqlite"`
}

type SqliteConfig struct {
	File  string `toml:"file"`
	Debug bool   `toml:"debug"`
}

type MySqlConfig struct {
	ConnectionString string        `toml:"connectionString"`
	MaxOpenConn      int           `toml:"maxOpenConn"`
	MaxIdleConn      int           `toml:"maxIdleConn"`
	ConnMaxLifeTime  time.Duration `toml:"connMaxLifeTime"`
	Debug            bool          `toml:"debug"`
}

type DialogConfig struct {
	// AutoApprove answers every confirmation with yes, for headless hosts
	AutoApprove bool `toml:"autoApprove"`
}

type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
	// Namespace of the prometheus metrics served on /debug/metrics
	Namespace string `toml:"namespace"`
}

func DefaultConfig() *Config {
	return &Config{
		Snap: SnapHostConfig{
			ID:      "npm:filsnap",
			Network: NetworkMainnet,
		},
		Node: NodeConfig{
			Url:   "",
			Token: "",
		},
		DB: DbConfig{
			Type: "sqlite",
			MySql: MySqlConfig{
				ConnectionString: "",
				MaxOpenConn:      10,
				MaxIdleConn:      10,
				ConnMaxLifeTime:  time.Second * 60,
				Debug:            false,
			},
			Sqlite: SqliteConfig{
				File:  "",
				Debug: false,
			},
		},
		Log: LogConfig{
			Path:  "",
			Level: "info",
		},
		API: APIConfig{
			Address: "/ip4/127.0.0.1/tcp/39822",
		},
		Dialog: DialogConfig{
			AutoApprove: false,
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "filsnap",
		},
	}
}
