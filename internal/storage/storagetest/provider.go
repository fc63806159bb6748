// Package storagetest holds the behavior every storage.Provider must share.
// Backend tests call Run with a factory returning a loaded provider.
package storagetest

import (
	"errors"
	"slices"
	"testing"

	"github.com/julianstephens/dashlit/internal/storage"
)

// Factory returns a provider that has already been initialized or loaded.
type Factory func(t *testing.T) storage.Provider

func Run(t *testing.T, newProvider Factory) {
	t.Run("missing key", func(t *testing.T) {
		p := newProvider(t)
		if _, err := p.Get("nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		p := newProvider(t)
		if err := p.Set("goals", []byte(`[{"id":"a","text":"x","done":false}]`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := p.Get("goals")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != `[{"id":"a","text":"x","done":false}]` {
			t.Errorf("Get() = %s", got)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		p := newProvider(t)
		_ = p.Set("theme", []byte(`"light"`))
		if err := p.Set("theme", []byte(`"dark"`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, _ := p.Get("theme")
		if string(got) != `"dark"` {
			t.Errorf("Get() = %s, want \"dark\"", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		p := newProvider(t)
		_ = p.Set("note", []byte(`"hi"`))
		if err := p.Delete("note"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := p.Get("note"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
		}
		if err := p.Delete("note"); err != nil {
			t.Errorf("Delete() of missing key error = %v", err)
		}
	})

	t.Run("keys sorted", func(t *testing.T) {
		p := newProvider(t)
		for _, k := range []string{"theme", "goals", "mood"} {
			if err := p.Set(k, []byte(`1`)); err != nil {
				t.Fatalf("Set(%q) error = %v", k, err)
			}
		}
		keys, err := p.Keys()
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		want := []string{"goals", "mood", "theme"}
		if !slices.Equal(keys, want) {
			t.Errorf("Keys() = %v, want %v", keys, want)
		}
	})

	t.Run("returned bytes are a copy", func(t *testing.T) {
		p := newProvider(t)
		_ = p.Set("note", []byte(`"abc"`))
		got, _ := p.Get("note")
		got[1] = 'z'
		again, _ := p.Get("note")
		if string(again) != `"abc"` {
			t.Errorf("stored value changed through returned slice: %s", again)
		}
	})

	t.Run("survives close and load", func(t *testing.T) {
		p := newProvider(t)
		_ = p.Set("mood", []byte(`{"value":"🙂","note":""}`))
		if err := p.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if err := p.Load(); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		got, err := p.Get("mood")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != `{"value":"🙂","note":""}` {
			t.Errorf("Get() = %s", got)
		}
	})

	t.Run("closed provider rejects entries", func(t *testing.T) {
		p := newProvider(t)
		_ = p.Close()
		if err := p.Set("goals", []byte(`[]`)); err == nil {
			t.Error("Set() on closed provider should fail")
		}
	})
}
