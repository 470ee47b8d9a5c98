//go:build !darwin && !linux && !windows

package appearance

import "errors"

func systemIsDark() (bool, error) {
	return false, errors.New("appearance detection not supported on this platform")
}
