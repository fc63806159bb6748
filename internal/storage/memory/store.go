// Package memory implements an in-process storage.Provider. It backs tests
// and sessions whose configured store could not be opened.
package memory

import (
	"sort"
	"sync"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/storage"
)

// Store keeps entries in a map. Data survives Close/Load on the same value,
// which lets tests simulate a reload against the same medium.
type Store struct {
	mu         sync.RWMutex
	entries    map[string][]byte
	loaded     bool
	failWrites error
}

// New returns an empty, loaded memory store
func New() *Store {
	return &Store{entries: make(map[string][]byte), loaded: true}
}

func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string][]byte)
	s.loaded = true
	return nil
}

func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	return nil
}

// FailWrites makes every subsequent Set and Delete return err. Pass nil to
// restore normal behavior.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = err
}

func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, storage.ErrNotLoaded
	}
	data, ok := s.entries[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return storage.ErrNotLoaded
	}
	if s.failWrites != nil {
		return s.failWrites
	}
	data := make([]byte, len(value))
	copy(data, value)
	s.entries[key] = data
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return storage.ErrNotLoaded
	}
	if s.failWrites != nil {
		return s.failWrites
	}
	delete(s.entries, key)
	return nil
}

func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, storage.ErrNotLoaded
	}
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) GetConfigPath() string {
	return constants.MemoryConfigPath
}
