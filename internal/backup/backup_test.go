package backup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/storage/jsonfile"
	"github.com/julianstephens/dashlit/internal/storage/sqlite"
)

// stepClock returns a clock that advances one minute per call
func stepClock() func() time.Time {
	t := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func setupStore(t *testing.T, name string) (storage.Provider, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	var p storage.Provider = sqlite.NewStore(path)
	if filepath.Ext(name) == ".json" {
		p = jsonfile.NewStore(path)
	}
	if err := p.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := p.Set(constants.KeyTheme, []byte(`"dark"`)); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p, path
}

func getString(t *testing.T, p storage.Provider, key string) string {
	t.Helper()
	data, err := p.Get(key)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", key, err)
	}
	return string(data)
}

func TestCreateAndRestore(t *testing.T) {
	for _, name := range []string{"dashlit.db", "dashlit.json"} {
		t.Run(name, func(t *testing.T) {
			p, path := setupStore(t, name)
			mgr := NewManager(path, WithClock(stepClock()))

			backupPath, err := mgr.Create()
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if filepath.Dir(backupPath) != mgr.Dir() {
				t.Errorf("backup written to %s, want %s", backupPath, mgr.Dir())
			}
			if filepath.Ext(backupPath) != filepath.Ext(name) {
				t.Errorf("backup %s should keep the store extension", backupPath)
			}

			if err := p.Set(constants.KeyTheme, []byte(`"light"`)); err != nil {
				t.Fatal(err)
			}
			if err := p.Close(); err != nil {
				t.Fatal(err)
			}

			previous, err := mgr.Restore(backupPath)
			if err != nil {
				t.Fatalf("Restore() error = %v", err)
			}
			if previous == "" {
				t.Error("Restore() should back up the current store first")
			}

			if err := p.Load(); err != nil {
				t.Fatalf("Load() after restore error = %v", err)
			}
			if got := getString(t, p, constants.KeyTheme); got != `"dark"` {
				t.Errorf("theme after restore = %s, want \"dark\"", got)
			}

			backups, err := mgr.List()
			if err != nil {
				t.Fatal(err)
			}
			if len(backups) != 2 || backups[0].Path != previous {
				t.Errorf("List() = %+v, want the pre-restore backup first", backups)
			}
		})
	}
}

func TestRotation(t *testing.T) {
	_, path := setupStore(t, "dashlit.db")
	mgr := NewManager(path, WithClock(stepClock()), WithKeep(3))

	var created []string
	for range 5 {
		p, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		created = append(created, p)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(backups))
	}
	for i, b := range backups {
		if want := created[len(created)-1-i]; b.Path != want {
			t.Errorf("backups[%d] = %s, want %s", i, b.Path, want)
		}
		if b.Size == 0 {
			t.Errorf("backups[%d] is empty", i)
		}
	}
}

func TestSameSecondGetsCounter(t *testing.T) {
	_, path := setupStore(t, "dashlit.json")
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	mgr := NewManager(path, WithClock(func() time.Time { return fixed }))

	first, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(mgr.Dir(), "dashlit-20240301-090000-1.json"); second != want {
		t.Errorf("second backup = %s, want %s", second, want)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 || backups[0].Path != second || backups[1].Path != first {
		t.Errorf("List() = %+v", backups)
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	_, path := setupStore(t, "dashlit.db")
	mgr := NewManager(path, WithClock(stepClock()))
	if _, err := mgr.Create(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"notes.txt", "dashlit-latest.db", "dashlit-20240301-0900.db", "dashlit-20240301-090000-x.db"} {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("len(List()) = %d, want 1: %+v", len(backups), backups)
	}
}

func TestListWithoutDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "dashlit.db"))
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("List() = %+v, want empty", backups)
	}
}

func TestRestoreRejectsCorruptBackup(t *testing.T) {
	for _, name := range []string{"dashlit.db", "dashlit.json"} {
		t.Run(name, func(t *testing.T) {
			p, path := setupStore(t, name)
			mgr := NewManager(path)

			bad := filepath.Join(t.TempDir(), "bad"+filepath.Ext(name))
			if err := os.WriteFile(bad, []byte("this is not a store"), 0600); err != nil {
				t.Fatal(err)
			}
			if err := p.Close(); err != nil {
				t.Fatal(err)
			}

			if _, err := mgr.Restore(bad); err == nil {
				t.Fatal("Restore() of a corrupt file should fail")
			}
			if err := p.Load(); err != nil {
				t.Fatal(err)
			}
			if got := getString(t, p, constants.KeyTheme); got != `"dark"` {
				t.Errorf("store changed after failed restore: %s", got)
			}
		})
	}
}

func TestMissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "dashlit.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("Create() without a store should fail")
	}

	mem := NewManager(constants.MemoryConfigPath)
	if _, err := mem.Create(); !errors.Is(err, ErrNoFile) {
		t.Errorf("Create() on memory store error = %v, want ErrNoFile", err)
	}
}

func TestResolve(t *testing.T) {
	_, path := setupStore(t, "dashlit.db")
	mgr := NewManager(path, WithClock(stepClock()))
	created, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	for _, ref := range []string{created, filepath.Base(created)} {
		got, err := mgr.Resolve(ref)
		if err != nil || got != created {
			t.Errorf("Resolve(%q) = %q, %v", ref, got, err)
		}
	}
	if _, err := mgr.Resolve("dashlit-19990101-000000.db"); err == nil {
		t.Error("Resolve() of a missing backup should fail")
	}
}
