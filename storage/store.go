package storage

import (
	"fmt"
	"path/filepath"

	"clearit/config"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"
)

// Store is a namespaced boolean key-value port.
// Misses resolve to the fallback and writes are fire-and-forget.
type Store interface {
	Bool(key string, fallback bool) bool
	SetBool(key string, value bool)
}

// KeyLister is implemented by backends that can enumerate stored keys
type KeyLister interface {
	Keys() []string
}

// Closer is implemented by backends holding resources
type Closer interface {
	Close() error
}

// Open selects the backend named in cfg.
// prefs is only consulted for the preferences backend and may be nil otherwise.
func Open(cfg *config.Config, prefs fyne.Preferences, logger *zap.Logger) (Store, error) {
	switch cfg.Store {
	case config.StoreFile:
		path := filepath.Join(cfg.DataDir, cfg.Namespace+".json")
		return NewFileStore(path, logger)
	case config.StorePreferences:
		if prefs == nil {
			return nil, fmt.Errorf("store %q needs the GUI application", cfg.Store)
		}
		return NewPreferencesStore(prefs, cfg.Namespace), nil
	case config.StoreSQLite:
		path := filepath.Join(cfg.DataDir, "clearit.db")
		return NewSQLStore(path, cfg.Namespace, logger)
	case config.StoreMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

// Close releases the store if it holds resources
func Close(s Store) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}
