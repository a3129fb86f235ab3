// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package web3

import (
	"github.com/holiman/uint256"

	"github.com/sunscreen-tech/web3/fhe"
)

// The FHE runtime and the chain client both represent 256-bit unsigned
// integers as four 64-bit limbs, least significant first. The two conversions
// below transpose only the container type, never the numeric value, and are
// exact inverses of each other over all 2^256 values.

// ToChainWord converts a runtime integer into the chain client's word type.
func ToChainWord(x fhe.Unsigned256) *uint256.Int {
	w := uint256.Int(x)
	return &w
}

// ToRuntimeUint converts a chain word into the runtime's integer type.
func ToRuntimeUint(x *uint256.Int) fhe.Unsigned256 {
	return fhe.Unsigned256(*x)
}
