// Package storage provides Store implementations for the token ledger: an
// in-memory map store, a write-back overlay used for per-invocation
// commit semantics and a BoltDB-backed persistent store.
package storage

import (
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store keeping all records in a map. It is
// safe for concurrent use.
type MemoryStore struct {
	mtx sync.RWMutex
	mem map[string][]byte
}

// NewMemoryStore creates a new empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mem: make(map[string][]byte),
	}
}

// Get implements common.Store.
func (s *MemoryStore) Get(key []byte) ([]byte, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	value, ok := s.mem[string(key)]
	if !ok {
		return nil, false
	}
	return copyBytes(value), true
}

// Put implements common.Store.
func (s *MemoryStore) Put(key, value []byte) {
	if value == nil {
		value = []byte{}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.mem[string(key)] = copyBytes(value)
}

// Delete implements common.Store.
func (s *MemoryStore) Delete(key []byte) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.mem, string(key))
}

// Seek implements common.Store.
func (s *MemoryStore) Seek(prefix []byte, f func(key, value []byte) bool) {
	s.mtx.RLock()
	keys := make([]string, 0, len(s.mem))
	for k := range s.mem {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	values := make([][]byte, len(keys))
	sort.Strings(keys)
	for i := range keys {
		values[i] = copyBytes(s.mem[keys[i]])
	}
	s.mtx.RUnlock()

	for i := range keys {
		if !f([]byte(keys[i]), values[i]) {
			return
		}
	}
}

// copyBytes clones b keeping nil distinct from an empty slice.
func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}
