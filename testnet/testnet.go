// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package testnet holds the descriptors of known public test networks and
// constructs clients for them.
package testnet

import (
	"context"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/sunscreen-tech/web3"
)

// Testnet describes one network: where to reach it, which chain ID to sign
// for, and where to get funds. Descriptors are immutable process-wide
// constants.
type Testnet struct {
	RPCURL    string
	ChainID   uint64
	FaucetURL string
}

// Parasol is Sunscreen's FHE-enabled public testnet.
var Parasol = Testnet{
	RPCURL:    "https://rpc.sunscreen.tech/parasol",
	ChainID:   574,
	FaucetURL: "https://faucet.sunscreen.tech/",
}

// Dial opens an unsigned RPC connection to the network.
func (t Testnet) Dial(ctx context.Context) (*ethclient.Client, error) {
	return ethclient.DialContext(ctx, t.RPCURL)
}

// Client constructs a client that signs and submits transactions from the
// wallet to this network. The chain ID comes from the descriptor; no RPC
// round trip is made to discover it.
func (t Testnet) Client(ctx context.Context, wallet *web3.Wallet, logger *zap.Logger) (*web3.Client, error) {
	return web3.NewClientWithChainID(ctx, t.RPCURL, wallet, t.ChainID, logger)
}
