// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package node runs a local anvil development node for testing contracts
// before deploying them on chain.
//
// As a prerequisite, you need anvil installed and either on the PATH or
// pointed to by the ANVIL_PATH environment variable.
package node

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/sunscreen-tech/web3"
	"github.com/sunscreen-tech/web3/utils"
)

const (
	// EnvAnvilPath names the environment variable overriding the location of
	// the anvil executable.
	EnvAnvilPath = "ANVIL_PATH"

	// DefaultChainID is anvil's default chain ID.
	DefaultChainID = 31337

	defaultPort = 8545

	// FHE precompile calls burn a lot of gas; raise the block limit well
	// beyond mainnet's so test transactions never hit it.
	blockGasLimit = "3000000000000000000"

	startupTimeout = 15 * time.Second
)

// Node is a running anvil subprocess. Close it when done.
type Node struct {
	cmd      *exec.Cmd
	port     int
	chainID  uint64
	endpoint string
	logger   *zap.Logger
}

// Option customizes how the node is launched.
type Option func(*Node)

// WithPort sets the HTTP port anvil listens on.
func WithPort(port int) Option {
	return func(n *Node) { n.port = port }
}

// WithChainID sets the chain ID anvil serves.
func WithChainID(chainID uint64) Option {
	return func(n *Node) { n.chainID = chainID }
}

// Spawn launches anvil with the deterministic mnemonic and waits until its
// RPC endpoint answers. The executable is taken from ANVIL_PATH if set, the
// PATH otherwise.
func Spawn(logger *zap.Logger, opts ...Option) (*Node, error) {
	n := &Node{
		port:    defaultPort,
		chainID: DefaultChainID,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.endpoint = fmt.Sprintf("http://127.0.0.1:%d", n.port)

	path := os.Getenv(EnvAnvilPath)
	if path == "" {
		path = "anvil"
	}
	n.cmd = exec.Command(path,
		"--port", strconv.Itoa(n.port),
		"--chain-id", strconv.FormatUint(n.chainID, 10),
		"--mnemonic", Mnemonic,
		"--gas-limit", blockGasLimit,
	)
	if err := n.cmd.Start(); err != nil {
		logger.Error(
			"Failed to launch anvil",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("launch anvil: %w", err)
	}
	logger.Info(
		"Launched anvil",
		zap.String("endpoint", n.endpoint),
		zap.Int("pid", n.cmd.Process.Pid),
	)

	if err := n.awaitReady(); err != nil {
		_ = n.Close()
		return nil, err
	}
	return n, nil
}

// awaitReady polls the RPC endpoint until it responds.
func (n *Node) awaitReady() error {
	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), utils.DefaultRPCTimeout)
		defer cancel()
		eth, err := ethclient.DialContext(ctx, n.endpoint)
		if err != nil {
			return err
		}
		defer eth.Close()
		_, err = eth.ChainID(ctx)
		return err
	}
	if err := utils.WithRetriesTimeout(n.logger, operation, startupTimeout, "anvil readiness"); err != nil {
		n.logger.Error(
			"Anvil did not become ready",
			zap.Error(err),
		)
		return fmt.Errorf("anvil did not become ready: %w", err)
	}
	return nil
}

// Endpoint returns the HTTP RPC URL of the node.
func (n *Node) Endpoint() string {
	return n.endpoint
}

// ChainID returns the chain ID the node serves.
func (n *Node) ChainID() uint64 {
	return n.chainID
}

// Dial opens an unsigned RPC connection to the node.
func (n *Node) Dial(ctx context.Context) (*ethclient.Client, error) {
	return ethclient.DialContext(ctx, n.endpoint)
}

// Client constructs a signing client for this node. This is useful when
// instantiating a contract binding against the local chain.
func (n *Node) Client(ctx context.Context, wallet *web3.Wallet) (*web3.Client, error) {
	return web3.NewClientWithChainID(ctx, n.endpoint, wallet, n.chainID, n.logger)
}

// Close terminates the anvil subprocess and reaps it.
func (n *Node) Close() error {
	if n.cmd.Process == nil {
		return nil
	}
	if err := n.cmd.Process.Kill(); err != nil {
		return err
	}
	_ = n.cmd.Wait()
	return nil
}
