// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package web3

import (
	"encoding"
	"os"
)

// When generating keypairs you'll need to save your private key, and it is
// often convenient to have your public key saved locally as well. For a CLI
// application the natural place for keys is the filesystem: one file per
// object, the file contents being exactly the encoded buffer.
//
// Writes use create-or-truncate semantics and are not atomic; an interrupted
// write leaves a truncated file that fails to read on the next attempt.
// Concurrent access to the same path is the caller's problem, no locking is
// performed.

const keyFileMode = 0o600

// WriteFile persists an FHE type to path, replacing any previous contents.
func WriteFile(obj encoding.BinaryMarshaler, path string) error {
	data, err := obj.MarshalBinary()
	if err != nil {
		return conversionError(err, "encode for file")
	}
	if err := os.WriteFile(path, data, keyFileMode); err != nil {
		return ioError(err, "write file")
	}
	return nil
}

// ReadFile reads an FHE type back from path.
func ReadFile[T any, PT decodable[T]](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(err, "read file")
	}
	return Decode[T, PT](data)
}
