package common_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/nep5-ledger/common"
	"github.com/nspcc-dev/nep5-ledger/storage"
)

func TestAmountRoundTrip(t *testing.T) {
	s := storage.NewMemoryStore()
	key := []byte("key")

	_, ok := common.GetAmount(s, key)
	require.False(t, ok)

	for _, amount := range []uint64{0, 1, 100, math.MaxUint64} {
		common.PutAmount(s, key, amount)
		v, ok := common.GetAmount(s, key)
		require.True(t, ok)
		require.Equal(t, amount, v)
	}
}

// An explicit zero record is distinguishable from an absent one.
func TestAmountExplicitZero(t *testing.T) {
	s := storage.NewMemoryStore()
	key := []byte("key")

	common.PutAmount(s, key, 0)
	v, ok := common.GetAmount(s, key)
	require.True(t, ok)
	require.EqualValues(t, 0, v)
}

func TestGetAmountMalformed(t *testing.T) {
	s := storage.NewMemoryStore()
	key := []byte("key")

	s.Put(key, []byte("not an amount"))
	require.Panics(t, func() { common.GetAmount(s, key) })
}

func TestDecodeAmount(t *testing.T) {
	_, ok := common.DecodeAmount(nil)
	require.False(t, ok)
	_, ok = common.DecodeAmount(make([]byte, common.AmountSize-1))
	require.False(t, ok)

	v, ok := common.DecodeAmount([]byte{0, 0, 0, 0, 0, 0, 1, 2})
	require.True(t, ok)
	require.EqualValues(t, 258, v)
}
