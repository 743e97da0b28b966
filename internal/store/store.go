package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketDocuments = []byte("documents")

// BlobStore implements domain.BlobStore using BoltDB. Values are the
// JSON documents the entity stores hand over; this layer never looks
// inside them.
type BlobStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// Open opens (or creates) the database under dataDir. An empty dataDir
// selects memory-only mode: documents live for the process lifetime
// and nothing touches disk.
func Open(dataDir string) (*BlobStore, error) {
	if dataDir == "" {
		return &BlobStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "vidflow.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDocuments)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	// Clean up legacy JSON dump files from the pre-BoltDB era
	cleanupLegacyJSONFiles(dataDir)

	return &BlobStore{db: db, cache: make(map[string][]byte)}, nil
}

// cleanupLegacyJSONFiles removes vestigial per-store JSON files.
func cleanupLegacyJSONFiles(dataDir string) {
	matches, err := filepath.Glob(filepath.Join(dataDir, "*-storage.json"))
	if err != nil || len(matches) == 0 {
		return
	}
	for _, path := range matches {
		os.Remove(path) // Ignore errors
	}
}

func (s *BlobStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the document stored under key, or false if absent.
func (s *BlobStore) Load(key string) ([]byte, bool) {
	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	// Read from BoltDB
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return nil, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return data, true
}

// Save durably stores the document under key.
func (s *BlobStore) Save(key string, data []byte) error {
	// Update memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	// Write to BoltDB
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		return b.Put([]byte(key), data)
	})
}

// Delete removes the document stored under key.
func (s *BlobStore) Delete(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// Reset wipes every stored document.
func (s *BlobStore) Reset() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Keys returns the stored document names, for diagnostics.
func (s *BlobStore) Keys() []string {
	seen := make(map[string]bool)

	s.mu.RLock()
	for k := range s.cache {
		seen[k] = true
	}
	s.mu.RUnlock()

	if s.db != nil {
		s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketDocuments)
			if b == nil {
				return nil
			}
			return b.ForEach(func(k, _ []byte) error {
				seen[string(k)] = true
				return nil
			})
		})
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	return keys
}
