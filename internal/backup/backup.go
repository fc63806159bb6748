// Package backup keeps timestamped copies of the store file in a backups
// directory next to it and restores them.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/storage/jsonfile"
	"github.com/julianstephens/dashlit/internal/storage/sqlite"
)

const (
	DirName     = "backups"
	filePrefix  = constants.AppName + "-"
	stampFormat = "20060102-150405"
)

// ErrNoFile is returned for stores that have no file to copy
var ErrNoFile = errors.New("backups need a file-backed store")

// Info describes one backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

type Manager struct {
	storePath string
	dir       string
	keep      int
	now       func() time.Time
}

type Option func(*Manager)

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithKeep sets how many backups survive rotation
func WithKeep(n int) Option {
	return func(m *Manager) { m.keep = n }
}

func NewManager(storePath string, opts ...Option) *Manager {
	m := &Manager{
		storePath: storePath,
		dir:       filepath.Join(filepath.Dir(storePath), DirName),
		keep:      constants.MaxBackups,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) isJSON() bool {
	return strings.EqualFold(filepath.Ext(m.storePath), ".json")
}

func (m *Manager) suffix() string {
	if m.isJSON() {
		return ".json"
	}
	return ".db"
}

// Create copies the store into the backup directory and prunes the oldest
// backups beyond the retention limit.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("failed to rotate old backups", "dir", m.dir, "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if m.storePath == constants.MemoryConfigPath {
		return "", ErrNoFile
	}
	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	dest, err := m.nextName()
	if err != nil {
		return "", err
	}

	if m.isJSON() {
		err = copyFile(m.storePath, dest)
	} else {
		err = m.vacuumInto(dest)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up store: %w", err)
	}
	logger.Info("backup created", "path", dest)
	return dest, nil
}

func (m *Manager) nextName() (string, error) {
	stamp := m.now().Format(stampFormat)
	path := filepath.Join(m.dir, filePrefix+stamp+m.suffix())
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if n > 100 {
			return "", errors.New("failed to generate unique backup filename")
		}
		path = filepath.Join(m.dir, fmt.Sprintf("%s%s-%d%s", filePrefix, stamp, n, m.suffix()))
	}
}

// vacuumInto writes a compacted copy through SQLite so a backup taken while
// another process holds the database is still consistent.
func (m *Manager) vacuumInto(dest string) error {
	src := sqlite.NewStore(m.storePath)
	defer src.Close()
	if err := src.Load(); err != nil {
		return fmt.Errorf("source store is not usable: %w", err)
	}
	if _, err := src.GetDB().Exec("VACUUM INTO ?", dest); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		return copyFile(m.storePath, dest)
	}
	return nil
}

// List returns the backups newest first. Files that do not follow the
// naming scheme are ignored.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := m.parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.dir, entry.Name()),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	slices.SortFunc(backups, func(a, b Info) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(b.Path, a.Path)
	})
	return backups, nil
}

// parseName accepts dashlit-YYYYMMDD-HHMMSS.ext with an optional -N counter
func (m *Manager) parseName(name string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(name, filePrefix)
	if !ok {
		return time.Time{}, false
	}
	rest, ok = strings.CutSuffix(rest, m.suffix())
	if !ok || len(rest) < len(stampFormat) {
		return time.Time{}, false
	}
	if counter := rest[len(stampFormat):]; counter != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(counter, "-"))
		if err != nil || n < 1 || counter[0] != '-' {
			return time.Time{}, false
		}
	}
	ts, err := time.ParseInLocation(stampFormat, rest[:len(stampFormat)], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for _, b := range backups[min(m.keep, len(backups)):] {
		if err := os.Remove(b.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", b.Path, err)
		}
	}
	return nil
}

// Resolve turns a file name from List output into a path. Paths that exist
// as given are returned unchanged.
func (m *Manager) Resolve(ref string) (string, error) {
	candidates := []string{ref}
	if !filepath.IsAbs(ref) {
		candidates = append(candidates, filepath.Join(m.dir, ref))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("backup file not found: %s", ref)
}

// Restore replaces the store file with backupPath. The current store is
// backed up first and that path is returned. The caller must close its
// provider before calling and load it again afterwards.
func (m *Manager) Restore(backupPath string) (string, error) {
	if m.storePath == constants.MemoryConfigPath {
		return "", ErrNoFile
	}
	if err := m.verify(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous string
	if _, err := os.Stat(m.storePath); err == nil {
		if previous, err = m.create(); err != nil {
			return "", fmt.Errorf("failed to back up current store before restore: %w", err)
		}
	}

	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tmp); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return "", fmt.Errorf("failed to restore store: %w", err)
	}
	logger.Info("store restored", "from", backupPath, "previous", previous)
	return previous, nil
}

// verify opens the backup with the matching provider, which checks the file
// format and schema version.
func (m *Manager) verify(path string) error {
	var p storage.Provider = sqlite.NewStore(path)
	if m.isJSON() {
		p = jsonfile.NewStore(path)
	}
	defer p.Close()
	return p.Load()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
