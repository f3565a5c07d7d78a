package storage

import (
	"sort"
	"strings"

	"github.com/nspcc-dev/nep5-ledger/common"
)

// Overlay is a write-back layer on top of a backing Store. Reads fall
// through to the backing store, mutations are buffered locally until
// Persist flushes them down. An Overlay dropped without Persist leaves
// the backing store untouched, which is how the host makes every
// invocation all-or-nothing.
//
// Overlay is not safe for concurrent use: each invocation runs on its
// own instance.
type Overlay struct {
	backing common.Store
	// buffered changes, nil value marks a delete
	changes map[string][]byte
}

// NewOverlay creates an Overlay over the given backing store.
func NewOverlay(backing common.Store) *Overlay {
	return &Overlay{
		backing: backing,
		changes: make(map[string][]byte),
	}
}

// Get implements common.Store.
func (o *Overlay) Get(key []byte) ([]byte, bool) {
	if value, ok := o.changes[string(key)]; ok {
		if value == nil {
			return nil, false
		}
		return copyBytes(value), true
	}
	return o.backing.Get(key)
}

// Put implements common.Store.
func (o *Overlay) Put(key, value []byte) {
	if value == nil {
		value = []byte{}
	}
	o.changes[string(key)] = copyBytes(value)
}

// Delete implements common.Store.
func (o *Overlay) Delete(key []byte) {
	o.changes[string(key)] = nil
}

// Seek implements common.Store. It merges buffered changes over the
// backing store view.
func (o *Overlay) Seek(prefix []byte, f func(key, value []byte) bool) {
	merged := make(map[string][]byte)
	o.backing.Seek(prefix, func(key, value []byte) bool {
		merged[string(key)] = value
		return true
	})
	for k, v := range o.changes {
		if !strings.HasPrefix(k, string(prefix)) {
			continue
		}
		if v == nil {
			delete(merged, k)
		} else {
			merged[k] = v
		}
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !f([]byte(k), copyBytes(merged[k])) {
			return
		}
	}
}

// Persist flushes all buffered changes to the backing store and resets
// the buffer.
func (o *Overlay) Persist() {
	for k, v := range o.changes {
		if v == nil {
			o.backing.Delete([]byte(k))
		} else {
			o.backing.Put([]byte(k), v)
		}
	}
	o.changes = make(map[string][]byte)
}
