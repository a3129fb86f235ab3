// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package web3 bridges an FHE type system with an Ethereum client stack.
//
// Smart contracts consume FHE public keys and ciphertexts as opaque byte
// blobs, so every cryptographic type needs a canonical, lossless byte
// projection. This package provides that projection (Encode/Decode), durable
// key storage on the local filesystem (ReadFile/WriteFile), conversion
// between the FHE runtime's 256-bit integer and the chain client's word type,
// and a lenient parser for human-supplied ether amounts.
//
// Encryption itself is delegated to the fhe subpackage; transaction signing
// and RPC communication are delegated to go-ethereum.
package web3
