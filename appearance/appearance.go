// Package appearance reports whether the host is using a dark appearance.
package appearance

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Detector answers "is the system appearance dark?"
type Detector func() bool

// FromFyne reads the variant Fyne resolved from the OS
func FromFyne(settings fyne.Settings) Detector {
	return func() bool {
		return settings.ThemeVariant() == theme.VariantDark
	}
}

// Fixed always reports the given value
func Fixed(dark bool) Detector {
	return func() bool { return dark }
}

// System queries the platform directly, for use without a Fyne app.
// Any failure reports dark, matching the stored default.
func System() Detector {
	return func() bool {
		dark, err := systemIsDark()
		if err != nil {
			return true
		}
		return dark
	}
}
