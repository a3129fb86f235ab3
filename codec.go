// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package web3

import (
	"bufio"
	"bytes"
	"encoding"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// decodable constrains a pointer type that can reconstruct itself from the
// runtime's binary serialization stream. All FHE types (public key, private
// key, ciphertext) satisfy it.
type decodable[T any] interface {
	*T
	io.ReaderFrom
}

// Encode serializes an FHE type into calldata bytes. This is useful for
// supplying contract method arguments: contracts take FHE values as opaque
// byte strings, and this is the matching projection.
//
// Encoding is deterministic: the same object always yields byte-identical
// output.
func Encode(obj encoding.BinaryMarshaler) (hexutil.Bytes, error) {
	data, err := obj.MarshalBinary()
	if err != nil {
		return nil, conversionError(err, "encode")
	}
	return data, nil
}

// Decode reconstructs an FHE type from calldata bytes. This is useful for
// contract return values.
//
// A malformed or truncated buffer yields a KindConversion error, never a
// zero-valued object. The buffer is consumed through a bufio reader, which
// reports exhaustion as an error; the runtime's own slice-backed reader does
// not terminate on short input.
func Decode[T any, PT decodable[T]](data hexutil.Bytes) (*T, error) {
	obj := PT(new(T))
	if _, err := obj.ReadFrom(bufio.NewReader(bytes.NewReader(data))); err != nil {
		return nil, conversionError(err, "decode")
	}
	return (*T)(obj), nil
}
