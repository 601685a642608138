package blobstore

import (
	"sync"

	"github.com/boltdb/bolt"
)

var itemsBucket = []byte("Items")

// MemoryBackend keeps items in a map for the lifetime of the process.
type MemoryBackend struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string]string)}
}

func (m *MemoryBackend) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.items[key]
	return value, ok, nil
}

func (m *MemoryBackend) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// BoltBackend keeps items in the "Items" bucket of a bolt database.
type BoltBackend struct {
	db *bolt.DB
}

// NewBoltBackend creates the bucket if it doesn't exist yet.
func NewBoltBackend(db *bolt.DB) (*BoltBackend, error) {
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(itemsBucket)
		return err
	}); err != nil {
		return nil, err
	}
	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(itemsBucket).Get([]byte(key))
		if raw != nil {
			value = string(raw)
			ok = true
		}
		return nil
	})
	return value, ok, err
}

func (b *BoltBackend) Put(key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(itemsBucket).Put([]byte(key), []byte(value))
	})
}
