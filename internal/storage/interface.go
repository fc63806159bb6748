package storage

// Provider is a flat, string-keyed byte store. Implementations persist
// every Set before returning and are not required to be safe for concurrent
// use by multiple goroutines.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entries. Get returns ErrNotFound for a missing key.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
