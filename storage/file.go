package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"clearit/logging"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileStore persists booleans as a flat JSON object in one file
type FileStore struct {
	path   string
	logger *zap.Logger

	mu     sync.RWMutex
	values map[string]bool
}

// NewFileStore opens the store at path, creating its directory.
// A missing file is an empty store.
func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &FileStore{
		path:   path,
		logger: logging.OrNop(logger).With(zap.String("store", path)),
		values: map[string]bool{},
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Bool returns the stored value or fallback
func (s *FileStore) Bool(key string, fallback bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

// SetBool stores value and writes the file. Write failures are logged.
func (s *FileStore) SetBool(key string, value bool) {
	s.mu.Lock()
	s.values[key] = value
	data, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("encode settings", zap.Error(err))
		return
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		s.logger.Error("write settings", zap.String("key", key), zap.Error(err))
		return
	}
	s.logger.Debug("setting saved", zap.String("key", key), zap.Bool("value", value))
}

// Keys returns the stored keys, sorted
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reload re-reads the file, replacing in-memory values. Entries that are not
// booleans are skipped and an unparsable file is treated as empty, so reads
// fall back to defaults. Only I/O errors other than a missing file are returned.
func (s *FileStore) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.replace(map[string]bool{})
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}

	s.replace(s.decode(data))
	return nil
}

func (s *FileStore) decode(data []byte) map[string]bool {
	values := map[string]bool{}
	if len(data) == 0 {
		return values
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("settings file unreadable, using defaults", zap.Error(err))
		return values
	}

	for key, msg := range raw {
		var v bool
		if err := json.Unmarshal(msg, &v); err != nil {
			s.logger.Warn("ignoring non-boolean setting", zap.String("key", key), zap.ByteString("value", msg))
			continue
		}
		values[key] = v
	}
	return values
}

func (s *FileStore) replace(values map[string]bool) {
	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
}

// Watch reloads the store whenever the file changes on disk and then calls
// onChange. It blocks until ctx is done.
func (s *FileStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so the rename in writeFileAtomic is seen
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.logger.Warn("reload settings", zap.Error(err))
				continue
			}
			s.logger.Debug("settings changed on disk", zap.String("op", event.Op.String()))
			if onChange != nil {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
