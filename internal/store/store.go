package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/mmcdole/kutubxona/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var _ domain.PreferenceStore = (*PreferenceStore)(nil)

// Bucket names
var (
	bucketPreferences = []byte("preferences")
)

// Keys within the preferences bucket
const (
	keySavedBooks = "savedBooks"
	keyDarkMode   = "darkMode"
)

// PreferenceStore implements domain.PreferenceStore using BoltDB.
type PreferenceStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// Every value read or written is mirrored here; reads hit the cache first
	cache map[string][]byte
}

// Open opens (or creates) the preference database at path.
// An empty path yields a memory-only store that forgets everything on Close.
func Open(path string) (*PreferenceStore, error) {
	if path == "" {
		return &PreferenceStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPreferences)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PreferenceStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *PreferenceStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *PreferenceStore) get(key string, dest interface{}) bool {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPreferences)
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
		return false
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *PreferenceStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketPreferences)
			return b.Put([]byte(key), data)
		})
		if err != nil {
			return err
		}
	}

	// Cache only committed values
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return nil
}

func (s *PreferenceStore) delete(key string) error {
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketPreferences)
			if b == nil {
				return nil
			}
			return b.Delete([]byte(key))
		})
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
	return nil
}

// === Saved books ===

// GetSavedBooks returns the persisted saved book IDs, false when never written.
func (s *PreferenceStore) GetSavedBooks() ([]int64, bool) {
	var ids []int64
	if !s.get(keySavedBooks, &ids) {
		return nil, false
	}
	return ids, true
}

// SetSavedBooks overwrites the persisted list.
func (s *PreferenceStore) SetSavedBooks(ids []int64) error {
	if ids == nil {
		ids = []int64{} // Stored as [] rather than null
	}
	return s.set(keySavedBooks, slices.Clone(ids))
}

// === Theme ===

func (s *PreferenceStore) GetDarkMode() (bool, bool) {
	var on bool
	ok := s.get(keyDarkMode, &on)
	return on, ok
}

func (s *PreferenceStore) SetDarkMode(on bool) error {
	return s.set(keyDarkMode, on)
}

// Reset removes every stored preference.
func (s *PreferenceStore) Reset() error {
	if err := s.delete(keySavedBooks); err != nil {
		return err
	}
	return s.delete(keyDarkMode)
}
