// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package web3

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/sunscreen-tech/web3/utils"
)

const (
	// If the base fee rises between estimation and inclusion, pay up to 3x
	// the current estimate.
	baseFeeFactor = 3

	// Gas for a plain value transfer.
	transferGasLimit = 21_000

	defaultTxInclusionTimeout = 30 * time.Second
)

// Client signs and submits transactions from a single wallet over an HTTP
// provider. It is the counterpart of instantiating a contract binding: the
// caller supplies codec-encoded bytes as calldata, the client handles nonces,
// fees, signing, and receipt polling.
type Client struct {
	eth                *ethclient.Client
	wallet             *Wallet
	chainID            *big.Int
	nonceLock          sync.Mutex
	currentNonce       uint64
	nonceInitialized   bool
	txInclusionTimeout time.Duration
	logger             *zap.Logger
}

// NewClient dials rpcURL and queries the endpoint for its chain ID.
func NewClient(ctx context.Context, rpcURL string, wallet *Wallet, logger *zap.Logger) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		logger.Error(
			"Failed to dial rpc endpoint",
			zap.String("rpcURL", rpcURL),
			zap.Error(err),
		)
		return nil, otherError(err, "dial rpc endpoint")
	}
	chainID, err := eth.ChainID(ctx)
	if err != nil {
		logger.Error(
			"Failed to get chain ID from endpoint",
			zap.Error(err),
		)
		return nil, otherError(err, "query chain id")
	}
	return newClient(eth, wallet, chainID, logger), nil
}

// NewClientWithChainID dials rpcURL and trusts the supplied chain ID instead
// of querying the endpoint. Use this with a known network descriptor.
func NewClientWithChainID(
	ctx context.Context,
	rpcURL string,
	wallet *Wallet,
	chainID uint64,
	logger *zap.Logger,
) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		logger.Error(
			"Failed to dial rpc endpoint",
			zap.String("rpcURL", rpcURL),
			zap.Error(err),
		)
		return nil, otherError(err, "dial rpc endpoint")
	}
	return newClient(eth, wallet, new(big.Int).SetUint64(chainID), logger), nil
}

func newClient(eth *ethclient.Client, wallet *Wallet, chainID *big.Int, logger *zap.Logger) *Client {
	return &Client{
		eth:                eth,
		wallet:             wallet,
		chainID:            chainID,
		txInclusionTimeout: defaultTxInclusionTimeout,
		logger:             logger.With(zap.String("chainID", chainID.String())),
	}
}

// Eth exposes the underlying RPC client for calls this wrapper does not
// cover.
func (c *Client) Eth() *ethclient.Client {
	return c.eth
}

// ChainID returns the chain identifier transactions are signed for.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// SenderAddress returns the wallet address transactions are sent from.
func (c *Client) SenderAddress() common.Address {
	return c.wallet.Address()
}

// Balance returns the wei balance of addr at the latest block.
func (c *Client) Balance(ctx context.Context, addr common.Address) (*uint256.Int, error) {
	cctx, cancel := context.WithTimeout(ctx, utils.DefaultRPCTimeout)
	defer cancel()
	bal, err := c.eth.BalanceAt(cctx, addr, nil)
	if err != nil {
		return nil, otherError(err, "query balance")
	}
	return weiFromBig(bal)
}

// weiFromBig converts an RPC-supplied big integer into the 256-bit word
// type, rejecting values that do not fit.
func weiFromBig(v *big.Int) (*uint256.Int, error) {
	w, overflow := uint256.FromBig(v)
	if overflow {
		return nil, otherError(nil, fmt.Sprintf("value %s overflows 256 bits", v))
	}
	return w, nil
}

// SendEther transfers value wei to the given address and waits for the
// receipt.
func (c *Client) SendEther(ctx context.Context, to common.Address, value *uint256.Int) (*types.Receipt, error) {
	return c.SendTransaction(ctx, &to, value, nil, transferGasLimit)
}

// SendTransaction constructs, signs, and broadcasts a transaction carrying
// the provided calldata, then waits for its receipt. The max fee per gas is
// the current base fee estimate multiplied by the base fee factor plus the
// suggested tip.
func (c *Client) SendTransaction(
	ctx context.Context,
	to *common.Address,
	value *uint256.Int,
	callData []byte,
	gasLimit uint64,
) (*types.Receipt, error) {
	headerCtx, headerCancel := context.WithTimeout(ctx, utils.DefaultRPCTimeout)
	defer headerCancel()
	header, err := c.eth.HeaderByNumber(headerCtx, nil)
	if err != nil {
		c.logger.Error(
			"Failed to get latest header",
			zap.Error(err),
		)
		return nil, otherError(err, "query latest header")
	}
	baseFee := header.BaseFee
	if baseFee == nil {
		// Pre-London chain; dynamic-fee txs still work with a zero base fee.
		baseFee = big.NewInt(0)
	}
	maxBaseFee := new(big.Int).Mul(baseFee, big.NewInt(baseFeeFactor))

	gasTipCtx, gasTipCancel := context.WithTimeout(ctx, utils.DefaultRPCTimeout)
	defer gasTipCancel()
	gasTipCap, err := c.eth.SuggestGasTipCap(gasTipCtx)
	if err != nil {
		c.logger.Error(
			"Failed to get gas tip cap",
			zap.Error(err),
		)
		return nil, otherError(err, "query gas tip cap")
	}
	gasFeeCap := new(big.Int).Add(maxBaseFee, gasTipCap)

	// Synchronize nonce access so that transactions go out in nonce order.
	c.nonceLock.Lock()
	if !c.nonceInitialized {
		nonceCtx, nonceCancel := context.WithTimeout(ctx, utils.DefaultRPCTimeout)
		pendingNonce, err := c.eth.PendingNonceAt(nonceCtx, c.wallet.Address())
		nonceCancel()
		if err != nil {
			c.nonceLock.Unlock()
			c.logger.Error(
				"Failed to get pending nonce",
				zap.Error(err),
			)
			return nil, otherError(err, "query pending nonce")
		}
		c.currentNonce = pendingNonce
		c.nonceInitialized = true
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   c.chainID,
		Nonce:     c.currentNonce,
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
		Gas:       gasLimit,
		To:        to,
		Value:     value.ToBig(),
		Data:      callData,
	})
	signedTx, err := c.wallet.SignTx(tx, c.chainID)
	if err != nil {
		c.nonceLock.Unlock()
		c.logger.Error(
			"Failed to sign transaction",
			zap.Error(err),
		)
		return nil, err
	}

	sendCtx, sendCancel := context.WithTimeout(ctx, utils.DefaultRPCTimeout)
	defer sendCancel()
	if err := c.eth.SendTransaction(sendCtx, signedTx); err != nil {
		c.nonceLock.Unlock()
		c.logger.Error(
			"Failed to send transaction",
			zap.Error(err),
		)
		return nil, otherError(err, "send transaction")
	}
	c.logger.Info(
		"Sent transaction",
		zap.String("txID", signedTx.Hash().String()),
		zap.Uint64("nonce", c.currentNonce),
	)
	c.currentNonce++
	c.nonceLock.Unlock()

	return c.waitForReceipt(ctx, signedTx.Hash())
}

func (c *Client) waitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	operation := func() (err error) {
		callCtx, cancel := context.WithTimeout(ctx, utils.DefaultRPCTimeout)
		defer cancel()
		receipt, err = c.eth.TransactionReceipt(callCtx, txHash)
		return err
	}
	err := utils.WithRetriesTimeout(c.logger, operation, c.txInclusionTimeout, "waitForReceipt")
	if err != nil {
		c.logger.Error(
			"Failed to get transaction receipt",
			zap.String("txID", txHash.String()),
			zap.Error(err),
		)
		return nil, otherError(err, "wait for receipt")
	}
	return receipt, nil
}

// Close tears down the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}
