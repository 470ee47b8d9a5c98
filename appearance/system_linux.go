//go:build linux

package appearance

import (
	"fmt"

	"github.com/rymdport/portal/settings"
)

const portalNamespace = "org.freedesktop.appearance"

// color-scheme values defined by xdg-desktop-portal
const (
	schemeNoPreference = 0
	schemePreferDark   = 1
)

func systemIsDark() (bool, error) {
	value, err := settings.ReadOne(portalNamespace, "color-scheme")
	if err != nil {
		return false, err
	}

	scheme, ok := value.(uint32)
	if !ok {
		return false, fmt.Errorf("unexpected color-scheme type %T", value)
	}
	if scheme == schemeNoPreference {
		return false, fmt.Errorf("no color-scheme preference")
	}
	return scheme == schemePreferDark, nil
}
