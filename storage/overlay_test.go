package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/nep5-ledger/storage"
)

func TestOverlayReadThrough(t *testing.T) {
	backing := storage.NewMemoryStore()
	backing.Put([]byte("key"), []byte("value"))

	o := storage.NewOverlay(backing)

	v, ok := o.Get([]byte("key"))
	require.True(t, ok)
	require.Equal(t, []byte("value"), v)

	_, ok = o.Get([]byte("missing"))
	require.False(t, ok)
}

func TestOverlayBuffersChanges(t *testing.T) {
	backing := storage.NewMemoryStore()
	backing.Put([]byte("old"), []byte("value"))

	o := storage.NewOverlay(backing)
	o.Put([]byte("new"), []byte("fresh"))
	o.Delete([]byte("old"))

	// visible through the overlay
	v, ok := o.Get([]byte("new"))
	require.True(t, ok)
	require.Equal(t, []byte("fresh"), v)
	_, ok = o.Get([]byte("old"))
	require.False(t, ok)

	// not visible in the backing store until Persist
	_, ok = backing.Get([]byte("new"))
	require.False(t, ok)
	v, ok = backing.Get([]byte("old"))
	require.True(t, ok)
	require.Equal(t, []byte("value"), v)
}

func TestOverlayPersist(t *testing.T) {
	backing := storage.NewMemoryStore()
	backing.Put([]byte("old"), []byte("value"))

	o := storage.NewOverlay(backing)
	o.Put([]byte("new"), []byte("fresh"))
	o.Delete([]byte("old"))
	o.Persist()

	v, ok := backing.Get([]byte("new"))
	require.True(t, ok)
	require.Equal(t, []byte("fresh"), v)
	_, ok = backing.Get([]byte("old"))
	require.False(t, ok)
}

func TestOverlayDiscard(t *testing.T) {
	backing := storage.NewMemoryStore()
	backing.Put([]byte("key"), []byte("value"))

	// an overlay dropped without Persist changes nothing
	o := storage.NewOverlay(backing)
	o.Put([]byte("key"), []byte("changed"))
	o.Put([]byte("extra"), []byte{1})

	v, ok := backing.Get([]byte("key"))
	require.True(t, ok)
	require.Equal(t, []byte("value"), v)
	_, ok = backing.Get([]byte("extra"))
	require.False(t, ok)
}

func TestOverlaySeekMergesChanges(t *testing.T) {
	backing := storage.NewMemoryStore()
	backing.Put([]byte("aa"), []byte{1})
	backing.Put([]byte("ab"), []byte{2})
	backing.Put([]byte("ac"), []byte{3})

	o := storage.NewOverlay(backing)
	o.Put([]byte("ab"), []byte{20})
	o.Put([]byte("ad"), []byte{4})
	o.Delete([]byte("ac"))

	got := make(map[string]byte)
	var keys []string
	o.Seek([]byte("a"), func(key, value []byte) bool {
		keys = append(keys, string(key))
		got[string(key)] = value[0]
		return true
	})

	require.Equal(t, []string{"aa", "ab", "ad"}, keys)
	require.Equal(t, map[string]byte{"aa": 1, "ab": 20, "ad": 4}, got)
}
