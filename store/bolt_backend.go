package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltDataKey = []byte("data")

// BoltBackend keeps every concern's document in a single bbolt file, one
// bucket per concern. Selected through the factory for users who prefer a
// single store file over the editable per-concern JSON documents.
type BoltBackend struct {
	db *bolt.DB
}

func NewBoltBackend(filePath string) (*BoltBackend, error) {
	if filePath == "" {
		return nil, ErrInvalidInput
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %v", err)
	}
	db, err := bolt.Open(filePath, 0644, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store file %s: %v", filePath, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, concern := range allConcerns() {
			if _, err := tx.CreateBucketIfNotExists([]byte(concern)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %v", concern, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Load(concern string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(concern))
		if bucket == nil {
			return ErrUnknownConcern
		}
		stored := bucket.Get(boltDataKey)
		if stored == nil {
			return ErrNotFound
		}
		data = make([]byte, len(stored))
		copy(data, stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *BoltBackend) Save(concern string, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(concern))
		if bucket == nil {
			return ErrUnknownConcern
		}
		return bucket.Put(boltDataKey, data)
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
