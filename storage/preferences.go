package storage

import "fyne.io/fyne/v2"

// PreferencesStore stores values in the Fyne application preferences,
// prefixing every key with the namespace.
type PreferencesStore struct {
	prefs     fyne.Preferences
	namespace string
}

// NewPreferencesStore wraps prefs
func NewPreferencesStore(prefs fyne.Preferences, namespace string) *PreferencesStore {
	return &PreferencesStore{prefs: prefs, namespace: namespace}
}

func (s *PreferencesStore) key(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + "." + key
}

// Bool returns the stored value or fallback
func (s *PreferencesStore) Bool(key string, fallback bool) bool {
	return s.prefs.BoolWithFallback(s.key(key), fallback)
}

// SetBool stores value; Fyne persists it asynchronously
func (s *PreferencesStore) SetBool(key string, value bool) {
	s.prefs.SetBool(s.key(key), value)
}
