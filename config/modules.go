package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

func ReadConfig(path string) (*Config, error) {
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	if err := toml.Unmarshal(configBytes, config); err != nil {
		return nil, err
	}
	return config, nil
}

func WriteFile(path string, cfg *Config) error {
	b, err := toml.Marshal(*cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o666)
}
