package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/revenland/revenland/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketPrograms = []byte("programs")
	allBuckets     = [][]byte{bucketPrograms}
)

const keyProgramList = "list"

// ProgramStore implements domain.Store using BoltDB.
type ProgramStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

var _ domain.Store = (*ProgramStore)(nil)

// NewProgramStore opens the cache for one project. Each endpoint/project pair
// gets its own database file so switching projects never shows stale data.
// An empty baseCacheDir keeps everything in memory.
func NewProgramStore(baseCacheDir, endpoint, project string) (*ProgramStore, error) {
	if baseCacheDir == "" {
		return &ProgramStore{cache: make(map[string][]byte)}, nil
	}

	dir := filepath.Join(baseCacheDir, hashProject(endpoint, project))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "revenland.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ProgramStore{db: db, cache: make(map[string][]byte)}, nil
}

func hashProject(endpoint, project string) string {
	normalized := strings.TrimRight(strings.ToLower(endpoint), "/") + "|" + project
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *ProgramStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *ProgramStore) get(bucket []byte, key string, dest any) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
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
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *ProgramStore) set(bucket []byte, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (s *ProgramStore) delete(bucket []byte, key string) {
	s.mu.Lock()
	delete(s.cache, string(bucket)+":"+key)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bucket); b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// GetPrograms returns the last saved program list
func (s *ProgramStore) GetPrograms() (domain.ProgramSnapshot, bool) {
	var snap domain.ProgramSnapshot
	ok := s.get(bucketPrograms, keyProgramList, &snap)
	return snap, ok
}

// SavePrograms replaces the saved program list
func (s *ProgramStore) SavePrograms(snapshot domain.ProgramSnapshot) error {
	return s.set(bucketPrograms, keyProgramList, snapshot)
}

// InvalidatePrograms drops the saved program list
func (s *ProgramStore) InvalidatePrograms() {
	s.delete(bucketPrograms, keyProgramList)
}

// InvalidateAll wipes the entire cache
func (s *ProgramStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range allBuckets {
			b := tx.Bucket(bucket)
			if b == nil {
				continue
			}
			c := b.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				if err := b.Delete(k); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
