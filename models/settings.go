package models

// Preference keys as they appear in every store backend
const (
	KeyAutoClear      = "auto_clear"
	KeyGoHome         = "go_home"
	KeyDarkMode       = "dark_mode"
	KeyUseSystemTheme = "use_system_theme"
)

// DefaultNamespace groups the keys inside a shared store
const DefaultNamespace = "ClipboardSettings"

// Settings represents the persisted toggle values
type Settings struct {
	AutoClear      bool `json:"auto_clear"`
	GoHome         bool `json:"go_home"`
	DarkMode       bool `json:"dark_mode"`
	UseSystemTheme bool `json:"use_system_theme"`
}

// DefaultSettings returns the values a fresh store resolves to
func DefaultSettings() *Settings {
	return &Settings{
		AutoClear:      true,
		GoHome:         false, // row is hidden, action disabled
		DarkMode:       true,
		UseSystemTheme: true,
	}
}

// Keys lists every known preference key in display order
func Keys() []string {
	return []string{KeyAutoClear, KeyGoHome, KeyDarkMode, KeyUseSystemTheme}
}

// Default returns the default for a key and whether the key is known
func Default(key string) (bool, bool) {
	d := DefaultSettings()
	switch key {
	case KeyAutoClear:
		return d.AutoClear, true
	case KeyGoHome:
		return d.GoHome, true
	case KeyDarkMode:
		return d.DarkMode, true
	case KeyUseSystemTheme:
		return d.UseSystemTheme, true
	}
	return false, false
}

// Get returns the field stored under key
func (s *Settings) Get(key string) (bool, bool) {
	switch key {
	case KeyAutoClear:
		return s.AutoClear, true
	case KeyGoHome:
		return s.GoHome, true
	case KeyDarkMode:
		return s.DarkMode, true
	case KeyUseSystemTheme:
		return s.UseSystemTheme, true
	}
	return false, false
}
