package controller

// User-facing confirmation texts
const (
	MsgCleared     = "Clipboard cleared"
	MsgClearFailed = "Failed to clear clipboard"

	MsgAutoClearOn  = "Auto-clear on open enabled"
	MsgAutoClearOff = "Auto-clear on open disabled"

	MsgGoHomeOn  = "Return to home after clearing enabled"
	MsgGoHomeOff = "Return to home after clearing disabled"

	MsgDarkMode  = "Switched to dark mode"
	MsgLightMode = "Switched to light mode"
)

func pick(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}
