package web3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunscreen-tech/web3/fhe"
)

func TestKeystoreRoundTrip(t *testing.T) {
	runtime, pk, sk := newTestRuntime(t)
	dir := t.TempDir()

	pkPath := filepath.Join(dir, "public.key")
	skPath := filepath.Join(dir, "private.key")
	require.NoError(t, WriteFile(pk, pkPath))
	require.NoError(t, WriteFile(sk, skPath))

	readPk, err := ReadFile[fhe.PublicKey](pkPath)
	require.NoError(t, err)
	readSk, err := ReadFile[fhe.PrivateKey](skPath)
	require.NoError(t, err)

	ct, err := runtime.Encrypt(fhe.Uint256(11), readPk)
	require.NoError(t, err)
	value, err := runtime.Decrypt(ct, readSk)
	require.NoError(t, err)
	require.Equal(t, fhe.Uint256(11), value)
}

func TestKeystoreFileContentsAreExactlyTheEncoding(t *testing.T) {
	runtime, pk, _ := newTestRuntime(t)
	ct, err := runtime.Encrypt(fhe.Uint256(5), pk)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "value.ct")
	require.NoError(t, WriteFile(ct, path))

	encoded, err := Encode(ct)
	require.NoError(t, err)
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte(encoded), contents)
}

func TestKeystoreOverwrite(t *testing.T) {
	runtime, pk, sk := newTestRuntime(t)
	path := filepath.Join(t.TempDir(), "value.ct")

	first, err := runtime.Encrypt(fhe.Uint256(1), pk)
	require.NoError(t, err)
	require.NoError(t, WriteFile(first, path))

	second, err := runtime.Encrypt(fhe.Uint256(2), pk)
	require.NoError(t, err)
	require.NoError(t, WriteFile(second, path))

	// A read must return only the newly written object.
	read, err := ReadFile[fhe.Ciphertext](path)
	require.NoError(t, err)
	value, err := runtime.Decrypt(read, sk)
	require.NoError(t, err)
	require.Equal(t, fhe.Uint256(2), value)
}

func TestKeystoreMissingFile(t *testing.T) {
	_, err := ReadFile[fhe.PublicKey](filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	require.Equal(t, KindIO, KindOf(err))
}

func TestKeystoreTruncatedFile(t *testing.T) {
	// An interrupted write leaves a truncated file; the next read must fail
	// cleanly rather than return a partial object.
	runtime, pk, _ := newTestRuntime(t)
	ct, err := runtime.Encrypt(fhe.Uint256(3), pk)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "value.ct")
	require.NoError(t, WriteFile(ct, path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, contents[:len(contents)/2], 0o600))

	_, err = ReadFile[fhe.Ciphertext](path)
	require.Error(t, err)
	require.Equal(t, KindConversion, KindOf(err))
}

func TestKeystoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.key")
	require.NoError(t, os.WriteFile(path, []byte("not a key"), 0o600))

	_, err := ReadFile[fhe.PublicKey](path)
	require.Error(t, err)
	require.Equal(t, KindConversion, KindOf(err))
}
