package web3

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "0x1c0eb5244c165957525ef389fc14fac4424feaaefabf87c7e4e15bcc7b425e15"

func TestWalletFromHexDerivesAddress(t *testing.T) {
	w, err := WalletFromHex(testKeyHex)
	require.NoError(t, err)
	require.Equal(t,
		common.HexToAddress("0xb5f27c716e44ffe48fd6622983c651355ad8c75a"),
		w.Address(),
	)

	// The prefix is optional.
	w2, err := WalletFromHex(testKeyHex[2:])
	require.NoError(t, err)
	require.Equal(t, w.Address(), w2.Address())
}

func TestWalletBytesRoundTrip(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)

	b := w.Bytes()
	require.Len(t, b, 32)

	restored, err := WalletFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, w.Address(), restored.Address())
	require.True(t, bytes.Equal(b, restored.Bytes()))
}

func TestWalletFileRoundTrip(t *testing.T) {
	w, err := WalletFromHex(testKeyHex)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wallet.key")
	require.NoError(t, w.WriteFile(path))

	restored, err := ReadWallet(path)
	require.NoError(t, err)
	require.Equal(t, w.Address(), restored.Address())

	// The restored key must produce identical signatures.
	chainID := big.NewInt(574)
	to := common.HexToAddress("0x00d88e763c5764e69dd667fa8073d48022a4afef")
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     0,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       21_000,
		To:        &to,
		Value:     big.NewInt(10_000),
	})
	signed1, err := w.SignTx(tx, chainID)
	require.NoError(t, err)
	signed2, err := restored.SignTx(tx, chainID)
	require.NoError(t, err)
	require.Equal(t, signed1.Hash(), signed2.Hash())
}

func TestWalletInvalidBytes(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
	}{
		{"empty", nil},
		{"short", make([]byte, 16)},
		{"long", make([]byte, 33)},
		{"zero scalar", make([]byte, 32)},
		{"above curve order", bytes.Repeat([]byte{0xff}, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WalletFromBytes(tt.b)
			require.Error(t, err)
			require.Equal(t, KindWallet, KindOf(err))
		})
	}
}

func TestReadWalletMissingFile(t *testing.T) {
	_, err := ReadWallet(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	require.Equal(t, KindIO, KindOf(err))
}

func TestReadWalletMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.key")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	_, err := ReadWallet(path)
	require.Error(t, err)
	require.Equal(t, KindWallet, KindOf(err))
}
