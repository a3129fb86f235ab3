// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config builds the CLI configuration from flags, environment
// variables, and an optional JSON config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sunscreen-tech/web3/testnet"
)

const defaultLogLevel = "info"

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel   string `mapstructure:"log-level"`
	RPCURL     string `mapstructure:"rpc-url"`
	ChainID    uint64 `mapstructure:"chain-id"`
	WalletFile string `mapstructure:"wallet-file"`
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("%s must be set", RPCURLKey)
	}
	if c.ChainID == 0 {
		return fmt.Errorf("%s must be set", ChainIDKey)
	}
	return nil
}

// NewConfig builds and validates the configuration from the viper instance.
func NewConfig(v *viper.Viper) (Config, error) {
	cfg, err := buildConfig(v)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("failed to validate configuration: %w", err)
	}
	return cfg, nil
}

// BuildViper builds the viper instance. Every config key may be provided via
// flag, environment variable, or the optional config file (in that order of
// precedence). Flag names map to env var names with hyphens replaced by
// underscores.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(v.GetString(ConfigFileKey))
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func setDefaultConfigValues(v *viper.Viper) {
	v.SetDefault(LogLevelKey, defaultLogLevel)
	v.SetDefault(RPCURLKey, testnet.Parasol.RPCURL)
	v.SetDefault(ChainIDKey, testnet.Parasol.ChainID)
}

func buildConfig(v *viper.Viper) (Config, error) {
	setDefaultConfigValues(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal viper config: %w", err)
	}
	return cfg, nil
}
