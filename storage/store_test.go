package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"clearit/config"
	"clearit/models"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip exercises the Store contract shared by every backend
func roundTrip(t *testing.T, s Store) {
	t.Helper()

	assert.True(t, s.Bool(models.KeyAutoClear, true), "miss should return fallback")
	assert.False(t, s.Bool(models.KeyGoHome, false), "miss should return fallback")

	s.SetBool(models.KeyAutoClear, false)
	s.SetBool(models.KeyGoHome, true)

	assert.False(t, s.Bool(models.KeyAutoClear, true))
	assert.True(t, s.Bool(models.KeyGoHome, false))

	s.SetBool(models.KeyAutoClear, true)
	assert.True(t, s.Bool(models.KeyAutoClear, false))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	roundTrip(t, s)
	assert.True(t, s.Has(models.KeyGoHome))
	assert.False(t, s.Has(models.KeyDarkMode))
	assert.Equal(t, 2, s.Len())
}

func TestPreferencesStore(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := NewPreferencesStore(a.Preferences(), "ClipboardSettings")
	roundTrip(t, s)

	assert.True(t, a.Preferences().Bool("ClipboardSettings.go_home"))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ClipboardSettings.json")

	s, err := NewFileStore(path, nil)
	require.NoError(t, err)
	roundTrip(t, s)
	assert.Equal(t, []string{models.KeyAutoClear, models.KeyGoHome}, s.Keys())

	reopened, err := NewFileStore(path, nil)
	require.NoError(t, err)
	assert.True(t, reopened.Bool(models.KeyGoHome, false), "value should survive reopen")
}

func TestFileStoreSkipsNonBooleanValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ClipboardSettings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auto_clear": false, "go_home": "yes"}`), 0644))

	s, err := NewFileStore(path, nil)
	require.NoError(t, err)

	assert.False(t, s.Bool(models.KeyAutoClear, true), "valid entry should be kept")
	assert.True(t, s.Bool(models.KeyGoHome, true), "non-boolean entry should fall back")
	assert.Equal(t, []string{models.KeyAutoClear}, s.Keys())
}

func TestFileStoreUnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ClipboardSettings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s, err := NewFileStore(path, nil)
	require.NoError(t, err)
	assert.True(t, s.Bool(models.KeyAutoClear, true))
	assert.Empty(t, s.Keys())

	s.SetBool(models.KeyAutoClear, false)
	reopened, err := NewFileStore(path, nil)
	require.NoError(t, err)
	assert.False(t, reopened.Bool(models.KeyAutoClear, true), "a write replaces the broken file")
}

func TestOpenWithCorruptFile(t *testing.T) {
	cfg := &config.Config{Namespace: "ClipboardSettings", DataDir: t.TempDir(), Store: config.StoreFile}
	path := filepath.Join(cfg.DataDir, "ClipboardSettings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auto_clear": false, "go_home": "yes"}`), 0644))

	s, err := Open(cfg, nil, nil)
	require.NoError(t, err)
	assert.False(t, s.Bool(models.KeyAutoClear, true))
	assert.Equal(t, path, s.(*FileStore).Path())
}

func TestFileStoreWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ClipboardSettings.json")
	s, err := NewFileStore(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	go s.Watch(ctx, func() { changed <- struct{}{} })

	// Give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"use_system_theme": false}`), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected change notification")
	}
	assert.False(t, s.Bool(models.KeyUseSystemTheme, true))
}

func TestSQLStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clearit.db")

	s, err := NewSQLStore(path, "ClipboardSettings", nil)
	require.NoError(t, err)
	roundTrip(t, s)
	assert.Equal(t, []string{models.KeyAutoClear, models.KeyGoHome}, s.Keys())
	require.NoError(t, s.Close())

	other, err := NewSQLStore(path, "Other", nil)
	require.NoError(t, err)
	defer other.Close()
	assert.False(t, other.Bool(models.KeyGoHome, false), "namespaces should not share values")
}

func TestSQLStoreRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clearit.db")
	garbage := []byte("this is not a sqlite database, just some text long enough to cover a header page")
	require.NoError(t, os.WriteFile(path, garbage, 0644))

	s, err := NewSQLStore(path, "ClipboardSettings", nil)
	assert.Error(t, err)
	assert.Nil(t, s)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, garbage, data, "a failed open must leave the file alone")
}

func TestOpen(t *testing.T) {
	cfg := &config.Config{Namespace: "ClipboardSettings", DataDir: t.TempDir(), Store: config.StoreFile}

	s, err := Open(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)
	assert.NoError(t, Close(s))

	cfg.Store = config.StoreMemory
	s, err = Open(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	cfg.Store = config.StorePreferences
	_, err = Open(cfg, nil, nil)
	assert.Error(t, err, "preferences backend needs an app")

	cfg.Store = config.StoreSQLite
	s, err = Open(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &SQLStore{}, s)
	assert.NoError(t, Close(s))

	cfg.Store = "etcd"
	_, err = Open(cfg, nil, nil)
	assert.Error(t, err)
}
