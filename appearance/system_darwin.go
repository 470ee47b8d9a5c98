//go:build darwin

package appearance

import (
	"os/exec"
	"strings"
)

func systemIsDark() (bool, error) {
	output, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		// Key is absent in light mode
		return false, nil
	}
	return strings.TrimSpace(string(output)) == "Dark", nil
}
