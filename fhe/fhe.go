// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fhe wraps a BFV fully-homomorphic-encryption runtime for use in
// smart-contract applications: 256-bit unsigned values are encrypted into
// ciphertexts that support homomorphic addition, and every key and ciphertext
// type carries the binary serialization the codec and keystore layers ride
// on.
package fhe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/schemes/bfv"
)

// PublicKey is the FHE encryption key. Immutable once constructed.
type PublicKey struct {
	rlwe.PublicKey
}

// PrivateKey is the FHE decryption key. Immutable once constructed.
type PrivateKey struct {
	rlwe.SecretKey
}

// Ciphertext is an encrypted 256-bit value.
type Ciphertext struct {
	rlwe.Ciphertext
}

// Runtime holds the BFV parameters and the stateless helpers derived from
// them. A Runtime is safe to reuse across operations; keys from one Runtime
// are not interchangeable with another's unless the parameters match.
type Runtime struct {
	params bfv.Parameters
	ecd    *bfv.Encoder
	eval   *bfv.Evaluator
}

// NewRuntime constructs a runtime with the library's standard parameter set:
// ring degree 2^12 and a plaintext modulus large enough that limbwise sums
// survive many homomorphic additions before wrapping.
func NewRuntime() (*Runtime, error) {
	params, err := bfv.NewParametersFromLiteral(bfv.ParametersLiteral{
		LogN:             12,
		LogQ:             []int{45, 45},
		LogP:             []int{45},
		PlaintextModulus: 0x3ee0001,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid BFV parameters: %w", err)
	}
	return &Runtime{
		params: params,
		ecd:    bfv.NewEncoder(params),
		eval:   bfv.NewEvaluator(params, nil),
	}, nil
}

// GenerateKeys generates a fresh keypair.
func (r *Runtime) GenerateKeys() (*PublicKey, *PrivateKey, error) {
	kgen := bfv.NewKeyGenerator(r.params)
	sk := kgen.GenSecretKeyNew()
	pk := kgen.GenPublicKeyNew(sk)
	return &PublicKey{*pk}, &PrivateKey{*sk}, nil
}

// Encrypt encrypts value under pk. The value is split into base-2^16 limbs,
// one per plaintext slot, so that slotwise addition of two ciphertexts adds
// the underlying integers (carries are resolved at decryption).
func (r *Runtime) Encrypt(value Unsigned256, pk *PublicKey) (*Ciphertext, error) {
	pt := bfv.NewPlaintext(r.params, r.params.MaxLevel())
	if err := r.ecd.Encode(value.slots(), pt); err != nil {
		return nil, fmt.Errorf("encode plaintext: %w", err)
	}
	enc := bfv.NewEncryptor(r.params, &pk.PublicKey)
	ct, err := enc.EncryptNew(pt)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return &Ciphertext{*ct}, nil
}

// Decrypt decrypts ct with sk and recomposes the limbs into an Unsigned256,
// reducing modulo 2^256.
func (r *Runtime) Decrypt(ct *Ciphertext, sk *PrivateKey) (Unsigned256, error) {
	dec := bfv.NewDecryptor(r.params, &sk.SecretKey)
	pt := dec.DecryptNew(&ct.Ciphertext)
	slots := make([]uint64, r.params.MaxSlots())
	if err := r.ecd.Decode(pt, slots); err != nil {
		return Unsigned256{}, fmt.Errorf("decode plaintext: %w", err)
	}
	return uint256FromSlots(slots)
}

// Add homomorphically adds two ciphertexts. The result decrypts to the sum of
// the two underlying values modulo 2^256, provided the per-slot limb sums
// stay below the plaintext modulus.
func (r *Runtime) Add(a, b *Ciphertext) (*Ciphertext, error) {
	ct, err := r.eval.AddNew(&a.Ciphertext, &b.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("homomorphic add: %w", err)
	}
	return &Ciphertext{*ct}, nil
}
