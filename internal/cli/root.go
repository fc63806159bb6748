package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/dashboard"
	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/storage/jsonfile"
	"github.com/julianstephens/dashlit/internal/storage/memory"
	"github.com/julianstephens/dashlit/internal/storage/sqlite"
	"github.com/julianstephens/dashlit/internal/theme"
)

// Context is handed to every command's Run method
type Context struct {
	Provider storage.Provider
	Options  dashboard.Options
	Out      io.Writer

	// Degraded is set when the configured store could not be opened and the
	// session runs on an in-memory store instead.
	Degraded bool

	dash *dashboard.Dashboard
}

func NewContext(provider storage.Provider, opts dashboard.Options) *Context {
	return &Context{Provider: provider, Options: opts, Out: os.Stdout}
}

// Dashboard builds the widgets on first use. The provider must already be
// loaded or initialized.
func (c *Context) Dashboard() *dashboard.Dashboard {
	if c.dash == nil {
		c.dash = dashboard.New(storage.NewStore(c.Provider), c.Options)
	}
	return c.dash
}

// Reset drops the widgets so the next Dashboard call hydrates again
func (c *Context) Reset() {
	c.dash = nil
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Open loads the provider for a normal command. A store that does not exist
// yet is created. Any other failure is logged and the session falls back to
// an in-memory store so the dashboard stays usable.
func (c *Context) Open() {
	err := c.Provider.Load()
	if err == nil {
		return
	}

	if errors.Is(err, storage.ErrNotInitialized) {
		logger.Info("creating storage", "path", c.Provider.GetConfigPath())
		if err = c.Provider.Init(); err == nil {
			return
		}
	}

	logger.Warn("could not open storage, changes will not be saved", "path", c.Provider.GetConfigPath(), "error", err)
	c.Provider = memory.New()
	c.Degraded = true
	c.Reset()
}

// NewProvider picks a backend from the config value: ":memory:" selects the
// in-memory store, a .json path the JSON file store, anything else SQLite.
func NewProvider(config string) storage.Provider {
	switch {
	case config == constants.MemoryConfigPath:
		return memory.New()
	case strings.EqualFold(filepath.Ext(config), ".json"):
		return jsonfile.NewStore(config)
	default:
		return sqlite.NewStore(config)
	}
}

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ParseThemeFallback maps the --theme-fallback value to a system preference
func ParseThemeFallback(value string) (theme.SystemPreference, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return theme.Terminal{}, nil
	case "light":
		return theme.Static(false), nil
	case "dark":
		return theme.Static(true), nil
	default:
		return nil, fmt.Errorf("invalid theme fallback %q (want auto, light or dark)", value)
	}
}

// ResolveRef finds an item by exact id, by its 1-based position as printed
// by the list commands, or by a unique id prefix.
func ResolveRef(ref string, ids []string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("empty reference")
	}
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(ids) {
			return "", fmt.Errorf("no item at position %d (have %d)", n, len(ids))
		}
		return ids[n-1], nil
	}

	var match string
	for _, id := range ids {
		if strings.HasPrefix(id, ref) {
			if match != "" {
				return "", fmt.Errorf("reference %q is ambiguous", ref)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no item matches %q", ref)
	}
	return match, nil
}
