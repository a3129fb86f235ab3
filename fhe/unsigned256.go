// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fhe

import (
	"fmt"
	"math/big"
)

// Unsigned256 is the runtime-side 256-bit unsigned integer: four 64-bit
// limbs, least significant first. The limb width is fixed at 64 bits by the
// type definition on every architecture.
type Unsigned256 [4]uint64

const (
	// limbBits is the width of one plaintext slot limb. Small enough that a
	// slot sum stays below the plaintext modulus across many homomorphic
	// additions.
	limbBits = 16

	// numLimbs is the number of plaintext slots occupied by one value.
	numLimbs = 256 / limbBits
)

// Uint256 returns the Unsigned256 with the given low word.
func Uint256(v uint64) Unsigned256 {
	return Unsigned256{v}
}

// Uint256FromBytes interprets b as a big-endian unsigned integer of at most
// 32 bytes.
func Uint256FromBytes(b []byte) (Unsigned256, error) {
	if len(b) > 32 {
		return Unsigned256{}, fmt.Errorf("value is %d bytes, want at most 32", len(b))
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	var u Unsigned256
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			u[3-i] = u[3-i]<<8 | uint64(buf[i*8+j])
		}
	}
	return u, nil
}

// Uint256FromBig reduces v modulo 2^256. Negative values are rejected.
func Uint256FromBig(v *big.Int) (Unsigned256, error) {
	if v.Sign() < 0 {
		return Unsigned256{}, fmt.Errorf("value %s is negative", v)
	}
	reduced := new(big.Int).And(v, maxUint256)
	b := reduced.Bytes()
	return Uint256FromBytes(b)
}

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// Uint64 returns the low word of u.
func (u Unsigned256) Uint64() uint64 {
	return u[0]
}

// IsZero reports whether u is zero.
func (u Unsigned256) IsZero() bool {
	return u == Unsigned256{}
}

// Bytes returns u as a 32-byte big-endian value.
func (u Unsigned256) Bytes() []byte {
	b := make([]byte, 32)
	for i := 0; i < 4; i++ {
		limb := u[3-i]
		for j := 7; j >= 0; j-- {
			b[i*8+j] = byte(limb)
			limb >>= 8
		}
	}
	return b
}

// Big returns u as a math/big integer.
func (u Unsigned256) Big() *big.Int {
	return new(big.Int).SetBytes(u.Bytes())
}

// String returns the decimal representation of u.
func (u Unsigned256) String() string {
	return u.Big().String()
}

// slots splits u into numLimbs base-2^limbBits limbs, least significant
// first, for encoding into plaintext slots.
func (u Unsigned256) slots() []uint64 {
	out := make([]uint64, numLimbs)
	perWord := 64 / limbBits
	for i, word := range u {
		for j := 0; j < perWord; j++ {
			out[i*perWord+j] = (word >> (j * limbBits)) & (1<<limbBits - 1)
		}
	}
	return out
}

// uint256FromSlots recomposes a slot vector into an Unsigned256. Slot values
// may exceed 2^limbBits after homomorphic additions; carries are resolved
// here, and the result is reduced modulo 2^256.
func uint256FromSlots(slots []uint64) (Unsigned256, error) {
	if len(slots) < numLimbs {
		return Unsigned256{}, fmt.Errorf("slot vector has %d entries, want at least %d", len(slots), numLimbs)
	}
	acc := new(big.Int)
	limb := new(big.Int)
	for i := numLimbs - 1; i >= 0; i-- {
		acc.Lsh(acc, limbBits)
		acc.Add(acc, limb.SetUint64(slots[i]))
	}
	return Uint256FromBig(acc)
}
