// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	// Command line option keys
	ConfigFileKey = "config-file"

	// Top-level configuration keys
	LogLevelKey   = "log-level"
	RPCURLKey     = "rpc-url"
	ChainIDKey    = "chain-id"
	WalletFileKey = "wallet-file"
)
