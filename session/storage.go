package session

import (
	"sync"

	"github.com/boltdb/bolt"
)

// Storage is a string key/value area scoped to one browser, like the
// browser's local or session storage.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

var sessionsBucket = []byte("Sessions")

// BoltStore is durable storage. Each client gets its own nested bucket
// below "Sessions", so values survive restarts.
type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	}); err != nil {
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

// Scope returns the storage of a single client.
func (s *BoltStore) Scope(clientID string) Storage {
	return boltScope{db: s.db, client: []byte(clientID)}
}

type boltScope struct {
	db     *bolt.DB
	client []byte
}

func (b boltScope) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket).Bucket(b.client)
		if bucket == nil {
			return nil
		}
		if raw := bucket.Get([]byte(key)); raw != nil {
			value = string(raw)
			ok = true
		}
		return nil
	})
	return value, ok, err
}

func (b boltScope) Set(key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.Bucket(sessionsBucket).CreateBucketIfNotExists(b.client)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), []byte(value))
	})
}

func (b boltScope) Remove(key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket).Bucket(b.client)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(key))
	})
}

// MemoryStore is ephemeral storage that lives as long as the process.
type MemoryStore struct {
	mu     sync.Mutex
	scopes map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scopes: make(map[string]map[string]string)}
}

// Scope returns the storage of a single tab.
func (m *MemoryStore) Scope(tabID string) Storage {
	return memoryScope{store: m, tab: tabID}
}

type memoryScope struct {
	store *MemoryStore
	tab   string
}

func (s memoryScope) Get(key string) (string, bool, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	value, ok := s.store.scopes[s.tab][key]
	return value, ok, nil
}

func (s memoryScope) Set(key, value string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	scope, ok := s.store.scopes[s.tab]
	if !ok {
		scope = make(map[string]string)
		s.store.scopes[s.tab] = scope
	}
	scope[key] = value
	return nil
}

func (s memoryScope) Remove(key string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	scope, ok := s.store.scopes[s.tab]
	if !ok {
		return nil
	}
	delete(scope, key)
	if len(scope) == 0 {
		delete(s.store.scopes, s.tab)
	}
	return nil
}
