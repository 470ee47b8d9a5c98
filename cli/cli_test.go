package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clearit/appearance"
	"clearit/clipboard"
	"clearit/config"
	"clearit/controller"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClipboard struct {
	content string
	err     error
}

func (f *fakeClipboard) Clear() error {
	if f.err != nil {
		return f.err
	}
	f.content = ""
	return nil
}

// run executes one clearit invocation against a data directory
func run(t *testing.T, dataDir string, clip *fakeClipboard, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CLEARIT_DATA_DIR", dataDir)

	var out bytes.Buffer
	root := NewRootCommand(Options{
		Version:      "1.2.3",
		Clipboard:    clip,
		SystemIsDark: appearance.Fixed(true),
		Out:          &out,
	})
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func TestClearCommand(t *testing.T) {
	clip := &fakeClipboard{content: "secret"}
	out, err := run(t, t.TempDir(), clip, "clear")

	require.NoError(t, err)
	assert.Equal(t, "", clip.content)
	assert.Equal(t, controller.MsgCleared+"\n", out)
}

func TestClearCommandFailure(t *testing.T) {
	clip := &fakeClipboard{content: "secret", err: errors.New("no display")}
	out, err := run(t, t.TempDir(), clip, "clear")

	assert.Error(t, err)
	assert.Equal(t, controller.MsgClearFailed+"\n", out)
}

func TestActivateHonorsAutoClear(t *testing.T) {
	dir := t.TempDir()

	clip := &fakeClipboard{content: "secret"}
	_, err := run(t, dir, clip, "activate")
	require.NoError(t, err)
	assert.Equal(t, "", clip.content)

	_, err = run(t, dir, clip, "settings", "set", "auto_clear", "false")
	require.NoError(t, err)

	clip.content = "secret"
	out, err := run(t, dir, clip, "activate")
	require.NoError(t, err)
	assert.Equal(t, "secret", clip.content)
	assert.Equal(t, "", out)
}

func TestSettingsListDefaults(t *testing.T) {
	out, err := run(t, t.TempDir(), &fakeClipboard{}, "settings", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"auto_clear", "true", "default"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"go_home", "false", "default"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"dark_mode", "true", "system"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"use_system_theme", "true", "default"}, strings.Fields(lines[3]))
}

func TestSettingsListMarksStoredValues(t *testing.T) {
	dir := t.TempDir()
	clip := &fakeClipboard{}

	_, err := run(t, dir, clip, "settings", "set", "dark_mode", "false")
	require.NoError(t, err)

	out, err := run(t, dir, clip, "settings", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"auto_clear", "true", "default"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"dark_mode", "false", "stored"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"use_system_theme", "false", "stored"}, strings.Fields(lines[3]))
}

func TestClearWithCorruptSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ClipboardSettings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auto_clear": false, "go_home": "yes"`), 0644))

	clip := &fakeClipboard{content: "secret"}
	_, err := run(t, dir, clip, "clear")

	require.NoError(t, err)
	assert.Equal(t, "", clip.content)
}

func TestSettingsListWithoutTheme(t *testing.T) {
	out, err := run(t, t.TempDir(), &fakeClipboard{}, "--no-theme", "settings", "list")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestSetDarkModeThenReset(t *testing.T) {
	dir := t.TempDir()
	clip := &fakeClipboard{}

	out, err := run(t, dir, clip, "settings", "set", "dark_mode", "false")
	require.NoError(t, err)
	assert.Equal(t, controller.MsgLightMode+"\n", out)

	out, err = run(t, dir, clip, "settings", "get", "use_system_theme")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, dir, clip, "settings", "get", "dark_mode")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out, "system appearance is no longer followed")

	_, err = run(t, dir, clip, "settings", "set", "use_system_theme", "true")
	require.NoError(t, err)

	out, err = run(t, dir, clip, "settings", "get", "dark_mode")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out, "system appearance is followed again")
}

func TestSetErrors(t *testing.T) {
	dir := t.TempDir()
	clip := &fakeClipboard{}

	_, err := run(t, dir, clip, "settings", "set", "auto_clear", "maybe")
	assert.Error(t, err)

	_, err = run(t, dir, clip, "settings", "set", "volume", "true")
	assert.ErrorIs(t, err, controller.ErrUnknownKey)

	_, err = run(t, dir, clip, "--no-theme", "settings", "set", "dark_mode", "true")
	assert.ErrorIs(t, err, controller.ErrThemeUnsupported)

	_, err = run(t, dir, clip, "settings", "get", "volume")
	assert.Error(t, err)
}

func TestEphemeralStore(t *testing.T) {
	dir := t.TempDir()
	clip := &fakeClipboard{}

	_, err := run(t, dir, clip, "--ephemeral", "settings", "set", "go_home", "true")
	require.NoError(t, err)

	out, err := run(t, dir, clip, "settings", "get", "go_home")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestNotifyForwardsToDesktop(t *testing.T) {
	t.Setenv("CLEARIT_DATA_DIR", t.TempDir())

	var sent []string
	var out bytes.Buffer
	root := NewRootCommand(Options{
		Clipboard: &fakeClipboard{},
		Desktop: func(text string) error {
			sent = append(sent, text)
			return nil
		},
		Out: &out,
	})
	root.SetArgs([]string{"--notify", "clear"})
	require.NoError(t, root.Execute())

	assert.Equal(t, []string{controller.MsgCleared}, sent)
}

func TestGUICommand(t *testing.T) {
	t.Setenv("CLEARIT_DATA_DIR", t.TempDir())

	var got *config.Config
	root := NewRootCommand(Options{
		GUI: func(cfg *config.Config, _ *zap.Logger) error {
			got = cfg
			return nil
		},
		Out: &bytes.Buffer{},
	})
	root.SetArgs([]string{"--store", "sqlite"})
	require.NoError(t, root.Execute())

	require.NotNil(t, got)
	assert.Equal(t, config.StoreSQLite, got.Store)
}

func TestFailedCommandReleasesStore(t *testing.T) {
	t.Setenv("CLEARIT_DATA_DIR", t.TempDir())

	noDisplay := fmt.Errorf("%w: no display", clipboard.ErrAccess)
	var out, errOut bytes.Buffer
	root, e := newRoot(Options{
		Clipboard:    &fakeClipboard{err: noDisplay},
		SystemIsDark: appearance.Fixed(true),
		Out:          &out,
	})
	root.SetArgs([]string{"--store", "sqlite", "clear"})
	root.SetErr(&errOut)

	err := execute(root, e)

	assert.ErrorIs(t, err, clipboard.ErrAccess)
	assert.Nil(t, e.store, "store should be closed after a failed command")
	assert.Empty(t, errOut.String(), "the error is printed once, by Execute")
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), &fakeClipboard{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "clearit 1.2.3\n", out)
}
