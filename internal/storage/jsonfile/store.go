// Package jsonfile implements storage.Provider as a single JSON document on
// disk, rewritten after every mutation.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/storage"
)

// document is the on-disk layout. Values are kept as the raw encoded text so
// a malformed entry never prevents the rest of the file from loading.
type document struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

type Store struct {
	path string
	doc  *document
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("%w at %s", storage.ErrAlreadyInitialized, s.path)
	}

	s.doc = &document{
		Version: constants.JSONStoreVersion,
		Entries: make(map[string]string),
	}
	return s.save()
}

func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return storage.ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > constants.JSONStoreVersion {
		return fmt.Errorf("storage version %d is newer than supported version %d", doc.Version, constants.JSONStoreVersion)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]string)
	}

	s.doc = doc
	return nil
}

func (s *Store) Close() error {
	s.doc = nil
	return nil
}

// save writes to a sibling temp file and renames it over the target so a
// crash mid-write never leaves a truncated document.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *Store) Get(key string) ([]byte, error) {
	if s.doc == nil {
		return nil, storage.ErrNotLoaded
	}
	value, ok := s.doc.Entries[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return []byte(value), nil
}

func (s *Store) Set(key string, value []byte) error {
	if s.doc == nil {
		return storage.ErrNotLoaded
	}
	previous, existed := s.doc.Entries[key]
	s.doc.Entries[key] = string(value)
	if err := s.save(); err != nil {
		// keep the in-memory document in step with the file
		if existed {
			s.doc.Entries[key] = previous
		} else {
			delete(s.doc.Entries, key)
		}
		return err
	}
	return nil
}

func (s *Store) Delete(key string) error {
	if s.doc == nil {
		return storage.ErrNotLoaded
	}
	if _, ok := s.doc.Entries[key]; !ok {
		return nil
	}
	delete(s.doc.Entries, key)
	return s.save()
}

func (s *Store) Keys() ([]string, error) {
	if s.doc == nil {
		return nil, storage.ErrNotLoaded
	}
	keys := make([]string, 0, len(s.doc.Entries))
	for k := range s.doc.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// GetConfigPath returns the path to the backing file.
//
// Running multiple dashlit processes against the same file at the same time
// is not supported; the last writer wins for the whole document.
func (s *Store) GetConfigPath() string {
	return s.path
}
