// Package notify prints confirmation messages and optionally raises them as
// desktop notifications.
package notify

import (
	"fmt"
	"io"

	"clearit/logging"

	"github.com/ncruces/zenity"
	"go.uber.org/zap"
)

// Sender delivers one desktop notification
type Sender func(text string) error

// Zenity sends through the platform notification service
func Zenity(title string) Sender {
	return func(text string) error {
		return zenity.Notify(text, zenity.Title(title), zenity.InfoIcon)
	}
}

// Console writes messages to out and, when desktop is set, also sends them
// as desktop notifications. Notification failures are logged only.
type Console struct {
	out     io.Writer
	desktop Sender
	logger  *zap.Logger
}

// NewConsole returns a Console; desktop may be nil
func NewConsole(out io.Writer, desktop Sender, logger *zap.Logger) *Console {
	return &Console{out: out, desktop: desktop, logger: logging.OrNop(logger)}
}

// Notify prints message and forwards it to the desktop sender
func (c *Console) Notify(message string) {
	fmt.Fprintln(c.out, message)
	if c.desktop == nil {
		return
	}
	if err := c.desktop(message); err != nil {
		c.logger.Warn("desktop notification", zap.Error(err))
	}
}
