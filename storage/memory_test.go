package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/nep5-ledger/storage"
)

func TestMemoryStore(t *testing.T) {
	s := storage.NewMemoryStore()

	_, ok := s.Get([]byte("key"))
	require.False(t, ok)

	s.Put([]byte("key"), []byte("value"))
	v, ok := s.Get([]byte("key"))
	require.True(t, ok)
	require.Equal(t, []byte("value"), v)

	s.Put([]byte("key"), []byte("other"))
	v, ok = s.Get([]byte("key"))
	require.True(t, ok)
	require.Equal(t, []byte("other"), v)

	s.Delete([]byte("key"))
	_, ok = s.Get([]byte("key"))
	require.False(t, ok)

	// deleting a missing key is a no-op
	s.Delete([]byte("key"))
}

func TestMemoryStoreEmptyValue(t *testing.T) {
	s := storage.NewMemoryStore()

	s.Put([]byte("key"), nil)
	v, ok := s.Get([]byte("key"))
	require.True(t, ok)
	require.Empty(t, v)
}

func TestMemoryStoreValueIsolation(t *testing.T) {
	s := storage.NewMemoryStore()

	value := []byte("value")
	s.Put([]byte("key"), value)
	value[0] = 'X'

	v, ok := s.Get([]byte("key"))
	require.True(t, ok)
	require.Equal(t, []byte("value"), v)

	v[0] = 'X'
	v, _ = s.Get([]byte("key"))
	require.Equal(t, []byte("value"), v)
}

func TestMemoryStoreSeek(t *testing.T) {
	s := storage.NewMemoryStore()
	s.Put([]byte("ab"), []byte{1})
	s.Put([]byte("aa"), []byte{2})
	s.Put([]byte("ba"), []byte{3})

	var keys []string
	s.Seek([]byte("a"), func(key, value []byte) bool {
		keys = append(keys, string(key))
		return true
	})
	require.Equal(t, []string{"aa", "ab"}, keys)

	keys = nil
	s.Seek(nil, func(key, value []byte) bool {
		keys = append(keys, string(key))
		return true
	})
	require.Equal(t, []string{"aa", "ab", "ba"}, keys)

	// early stop
	keys = nil
	s.Seek(nil, func(key, value []byte) bool {
		keys = append(keys, string(key))
		return false
	})
	require.Equal(t, []string{"aa"}, keys)
}
