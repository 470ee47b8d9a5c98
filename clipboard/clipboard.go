// Package clipboard clears the primary system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/atotto/clipboard"
)

// ErrAccess wraps every failure reported by a clipboard facility
var ErrAccess = errors.New("clipboard access failed")

// Clipboard replaces the primary clipboard content with empty text
type Clipboard interface {
	Clear() error
}

// System writes to the OS clipboard through the platform tools
// (pbcopy, xclip/xsel/wl-copy, the Win32 API).
type System struct {
	write func(string) error
}

// NewSystem returns the OS clipboard
func NewSystem() *System {
	return &System{write: clipboard.WriteAll}
}

// Clear writes an empty plain-text entry
func (s *System) Clear() error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility available", ErrAccess)
	}
	if err := s.write(""); err != nil {
		return fmt.Errorf("%w: %v", ErrAccess, err)
	}
	return nil
}

// Fyne writes through the clipboard of a Fyne window
type Fyne struct {
	clip fyne.Clipboard
}

// NewFyne wraps the clipboard of a window
func NewFyne(clip fyne.Clipboard) *Fyne {
	return &Fyne{clip: clip}
}

// Clear writes an empty plain-text entry. Driver panics are reported as errors.
func (f *Fyne) Clear() (err error) {
	if f.clip == nil {
		return fmt.Errorf("%w: no clipboard", ErrAccess)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrAccess, r)
		}
	}()
	f.clip.SetContent("")
	return nil
}

var (
	_ Clipboard = (*System)(nil)
	_ Clipboard = (*Fyne)(nil)
)
