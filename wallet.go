// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package web3

import (
	"crypto/ecdsa"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet wraps a secp256k1 signing key and its derived address. The key is
// owned exclusively by the caller; this layer never inspects it beyond
// raw-byte extraction.
type Wallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewWallet generates a fresh signing key.
func NewWallet() (*Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, walletError(err, "generate key")
	}
	return wrapKey(key), nil
}

// WalletFromBytes reconstructs a wallet from the raw 32-byte private scalar.
// The bytes are rejected if the length is wrong or the scalar is zero or not
// below the curve order.
func WalletFromBytes(b []byte) (*Wallet, error) {
	key, err := crypto.ToECDSA(b)
	if err != nil {
		return nil, walletError(err, "invalid private key bytes")
	}
	return wrapKey(key), nil
}

// WalletFromHex reconstructs a wallet from a hex-encoded private scalar, with
// or without the 0x prefix.
func WalletFromHex(s string) (*Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, walletError(err, "invalid private key hex")
	}
	return wrapKey(key), nil
}

func wrapKey(key *ecdsa.PrivateKey) *Wallet {
	return &Wallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// Address returns the account address derived from the signing key.
func (w *Wallet) Address() common.Address {
	return w.address
}

// Bytes returns the raw 32-byte private scalar. This is the canonical form
// required by the signing library, distinct from the serialization used for
// FHE types.
func (w *Wallet) Bytes() []byte {
	return crypto.FromECDSA(w.key)
}

// SignTx signs the transaction for the given chain ID.
func (w *Wallet) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), w.key)
	if err != nil {
		return nil, walletError(err, "sign transaction")
	}
	return signed, nil
}

// ReadWallet reads a signing key from a file containing exactly the raw
// private scalar.
func ReadWallet(path string) (*Wallet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(err, "read wallet file")
	}
	return WalletFromBytes(b)
}

// WriteFile persists the raw private scalar to path, replacing any previous
// contents.
func (w *Wallet) WriteFile(path string) error {
	if err := os.WriteFile(path, w.Bytes(), keyFileMode); err != nil {
		return ioError(err, "write wallet file")
	}
	return nil
}
