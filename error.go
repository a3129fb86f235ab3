// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package web3

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes of this library. The set is closed:
// callers can switch over it exhaustively.
type Kind uint8

const (
	// KindConversion indicates a malformed or truncated byte buffer.
	KindConversion Kind = iota + 1

	// KindIO indicates a filesystem access failure.
	KindIO

	// KindWallet indicates invalid signing-key bytes.
	KindWallet

	// KindOther indicates a malformed value string or any failure that does
	// not fit the kinds above.
	KindOther
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConversion:
		return "conversion"
	case KindIO:
		return "io"
	case KindWallet:
		return "wallet"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Error is the tagged error type returned by every fallible operation in this
// library. It carries one discriminant and the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
	}
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or 0 if err does not originate from this
// library.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func conversionError(err error, msg string) *Error {
	return &Error{Kind: KindConversion, Msg: msg, Err: err}
}

func ioError(err error, msg string) *Error {
	return &Error{Kind: KindIO, Msg: msg, Err: err}
}

func walletError(err error, msg string) *Error {
	return &Error{Kind: KindWallet, Msg: msg, Err: err}
}

func otherError(err error, msg string) *Error {
	return &Error{Kind: KindOther, Msg: msg, Err: err}
}
