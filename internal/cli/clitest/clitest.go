// Package clitest builds command contexts backed by a throwaway SQLite store.
package clitest

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/dashboard"
	"github.com/julianstephens/dashlit/internal/ids"
	"github.com/julianstephens/dashlit/internal/storage/sqlite"
	"github.com/julianstephens/dashlit/internal/theme"
)

// Now is the fixed clock used by contexts from NewContext
var Now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// Options returns deterministic dashboard options
func Options() dashboard.Options {
	return dashboard.Options{
		IDs:    ids.NewSequence("g"),
		TxIDs:  ids.NewSequence("tx"),
		Clock:  func() time.Time { return Now },
		System: theme.Static(false),
	}
}

// NewContext returns an initialized context and the buffer it prints to
func NewContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	ctx := cli.NewContext(store, Options())
	out := &bytes.Buffer{}
	ctx.Out = out
	return ctx, out
}

// Reload drops the context's widgets so the next command hydrates from disk
func Reload(ctx *cli.Context, out *bytes.Buffer) {
	ctx.Reset()
	ctx.Options = Options()
	out.Reset()
}
