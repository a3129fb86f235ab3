package web3

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"conversion", conversionError(errors.New("bad bytes"), "decode"), KindConversion},
		{"io", ioError(fs.ErrNotExist, "read file"), KindIO},
		{"wallet", walletError(errors.New("invalid scalar"), ""), KindWallet},
		{"other", otherError(nil, "unrecognized unit"), KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, KindOf(tt.err))
			require.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := ioError(fs.ErrNotExist, "read file")
	require.ErrorIs(t, err, fs.ErrNotExist)

	// Wrapping again must preserve the kind.
	wrapped := fmt.Errorf("loading keys: %w", err)
	require.Equal(t, KindIO, KindOf(wrapped))
}

func TestKindOfForeignError(t *testing.T) {
	require.Equal(t, Kind(0), KindOf(errors.New("not ours")))
	require.Equal(t, Kind(0), KindOf(nil))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "conversion", KindConversion.String())
	require.Equal(t, "io", KindIO.String())
	require.Equal(t, "wallet", KindWallet.String())
	require.Equal(t, "other", KindOther.String())
	require.Equal(t, "unknown", Kind(99).String())
}
