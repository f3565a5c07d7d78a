package storage

import (
	"bytes"
	"fmt"

	"go.etcd.io/bbolt"
)

var ledgerBucket = []byte("ledger")

// BoltStore keeps ledger records in a single-bucket BoltDB database.
// Storage failures are not part of the contract surface, so mutation
// methods panic on them.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens a BoltDB database at path, creating it if needed.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open ledger database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(ledgerBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init ledger bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Get implements common.Store.
func (s *BoltStore) Get(key []byte) ([]byte, bool) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(ledgerBucket).Get(key); v != nil {
			value = copyBytes(v)
		}
		return nil
	})
	if err != nil {
		panic(fmt.Errorf("read ledger record: %w", err))
	}
	return value, value != nil
}

// Put implements common.Store.
func (s *BoltStore) Put(key, value []byte) {
	if value == nil {
		value = []byte{}
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(ledgerBucket).Put(key, value)
	})
	if err != nil {
		panic(fmt.Errorf("write ledger record: %w", err))
	}
}

// Delete implements common.Store.
func (s *BoltStore) Delete(key []byte) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(ledgerBucket).Delete(key)
	})
	if err != nil {
		panic(fmt.Errorf("delete ledger record: %w", err))
	}
}

// Seek implements common.Store.
func (s *BoltStore) Seek(prefix []byte, f func(key, value []byte) bool) {
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(ledgerBucket).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if !f(copyBytes(k), copyBytes(v)) {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		panic(fmt.Errorf("iterate ledger records: %w", err))
	}
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
