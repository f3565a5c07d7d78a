package common

import "encoding/binary"

// Store is flat contract storage: a mapping from opaque byte-string keys
// to byte-string values. Get reports explicitly whether a record exists,
// so callers can distinguish an absent record from an explicit zero.
// Mutations become durable only when the host commits the invocation.
type Store interface {
	Get(key []byte) ([]byte, bool)
	Put(key, value []byte)
	Delete(key []byte)
	// Seek iterates over records whose key starts with the given prefix
	// in lexicographic key order, until f returns false.
	Seek(prefix []byte, f func(key, value []byte) bool)
}

// AmountSize is the fixed width of a stored amount value.
const AmountSize = 8

// DecodeAmount parses a stored amount value. It returns false for data of
// the wrong width.
func DecodeAmount(data []byte) (uint64, bool) {
	if len(data) != AmountSize {
		return 0, false
	}
	return binary.BigEndian.Uint64(data), true
}

// GetAmount reads the unsigned amount stored under key. The second return
// value distinguishes an absent record from an explicit zero. A record of
// the wrong width means the store was corrupted outside of the ledger, so
// GetAmount panics on it.
func GetAmount(s Store, key []byte) (uint64, bool) {
	data, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	value, ok := DecodeAmount(data)
	if !ok {
		panic("malformed amount record")
	}
	return value, true
}

// PutAmount writes the unsigned amount under key.
func PutAmount(s Store, key []byte, amount uint64) {
	data := make([]byte, AmountSize)
	binary.BigEndian.PutUint64(data, amount)
	s.Put(key, data)
}
