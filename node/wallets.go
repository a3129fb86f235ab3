// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node

import (
	"sync"

	"github.com/sunscreen-tech/web3"
)

// Mnemonic seeds anvil's deterministic accounts. The Alice and Bob wallets
// below exist whenever anvil is launched with this mnemonic, which Spawn
// always does.
const Mnemonic = "gas monster ski craft below illegal discover limit dog bundle bus artefact"

const (
	aliceKeyHex = "0x1c0eb5244c165957525ef389fc14fac4424feaaefabf87c7e4e15bcc7b425e15"
	bobKeyHex   = "0x3b42a2df3c658b156b8240e1891723fab65ae0b97f9f5bba2abd5e240065baa1"
)

// Alice is a funded test user.
//
// Public address: 0xb5f27c716e44ffe48fd6622983c651355ad8c75a
var Alice = sync.OnceValue(func() *web3.Wallet {
	return mustWallet(aliceKeyHex)
})

// Bob is a funded test user.
//
// Public address: 0x00d88e763c5764e69dd667fa8073d48022a4afef
var Bob = sync.OnceValue(func() *web3.Wallet {
	return mustWallet(bobKeyHex)
})

func mustWallet(hexKey string) *web3.Wallet {
	w, err := web3.WalletFromHex(hexKey)
	if err != nil {
		// The keys above are compile-time constants; they cannot be invalid.
		panic(err)
	}
	return w
}
