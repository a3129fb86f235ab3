package fhe

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint256BytesRoundTrip(t *testing.T) {
	var buf [32]byte
	for i := 0; i < 100; i++ {
		_, err := rand.Read(buf[:])
		require.NoError(t, err)

		u, err := Uint256FromBytes(buf[:])
		require.NoError(t, err)
		require.Equal(t, buf[:], u.Bytes())
	}
}

func TestUint256FromBytesShortInput(t *testing.T) {
	u, err := Uint256FromBytes([]byte{0x01, 0x00})
	require.NoError(t, err)
	require.Equal(t, uint64(256), u.Uint64())
}

func TestUint256FromBytesTooLong(t *testing.T) {
	_, err := Uint256FromBytes(make([]byte, 33))
	require.Error(t, err)
}

func TestUint256FromBigReducesModulo(t *testing.T) {
	// 2^256 + 5 reduces to 5.
	v := new(big.Int).Lsh(big.NewInt(1), 256)
	v.Add(v, big.NewInt(5))
	u, err := Uint256FromBig(v)
	require.NoError(t, err)
	require.Equal(t, Uint256(5), u)
}

func TestUint256FromBigRejectsNegative(t *testing.T) {
	_, err := Uint256FromBig(big.NewInt(-1))
	require.Error(t, err)
}

func TestUint256BigAndString(t *testing.T) {
	u := Uint256(1234567890)
	require.Equal(t, "1234567890", u.String())
	require.Equal(t, int64(1234567890), u.Big().Int64())
	require.False(t, u.IsZero())
	require.True(t, Uint256(0).IsZero())
}

func TestSlotsRoundTrip(t *testing.T) {
	var buf [32]byte
	for i := 0; i < 100; i++ {
		_, err := rand.Read(buf[:])
		require.NoError(t, err)

		u, err := Uint256FromBytes(buf[:])
		require.NoError(t, err)

		slots := u.slots()
		require.Len(t, slots, numLimbs)
		for _, s := range slots {
			require.Less(t, s, uint64(1)<<limbBits)
		}

		back, err := uint256FromSlots(slots)
		require.NoError(t, err)
		require.Equal(t, u, back)
	}
}

func TestSlotsCarryResolution(t *testing.T) {
	// Slotwise sums above 2^16 must carry into the next limb.
	a := Uint256(0xffff)
	b := Uint256(1)
	slots := a.slots()
	for i, s := range b.slots() {
		slots[i] += s
	}
	sum, err := uint256FromSlots(slots)
	require.NoError(t, err)
	require.Equal(t, Uint256(0x10000), sum)
}

func TestSlotsTooShort(t *testing.T) {
	_, err := uint256FromSlots(make([]uint64, numLimbs-1))
	require.Error(t, err)
}
