package web3

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestWeiFromBig(t *testing.T) {
	v, err := weiFromBig(big.NewInt(1_000_000))
	require.NoError(t, err)
	require.True(t, uint256.NewInt(1_000_000).Eq(v))
}

func TestWeiFromBigOverflow(t *testing.T) {
	over := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err := weiFromBig(over)
	require.Error(t, err)
	require.Equal(t, KindOther, KindOf(err))
}
