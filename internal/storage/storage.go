package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Store encodes values as JSON over a Provider. It is the only type the
// state layer talks to.
type Store struct {
	provider Provider
}

// NewStore wraps a loaded (or initialized) provider
func NewStore(provider Provider) *Store {
	return &Store{provider: provider}
}

// Provider returns the underlying provider
func (s *Store) Provider() Provider {
	return s.provider
}

// Get decodes the value stored under key into v. It returns ErrNotFound when
// the key is absent (a stored JSON null counts as absent) and a *DecodeError
// when the stored bytes do not decode into v, including objects carrying
// fields v does not declare. Other errors come from the provider read.
func (s *Store) Get(key string, v any) error {
	data, err := s.provider.Get(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("reading %q: %w", key, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrNotFound
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &DecodeError{Key: key, Err: err}
	}
	if dec.More() {
		return &DecodeError{Key: key, Err: errors.New("unexpected data after JSON value")}
	}
	return nil
}

// Set encodes v and writes it under key. Every failure is returned as a
// *PersistError.
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &PersistError{Key: key, Err: err}
	}
	if err := s.provider.Set(key, data); err != nil {
		return &PersistError{Key: key, Err: err}
	}
	return nil
}

// Raw returns the encoded value under key as stored
func (s *Store) Raw(key string) ([]byte, bool) {
	data, err := s.provider.Get(key)
	if err != nil {
		return nil, false
	}
	return data, true
}
