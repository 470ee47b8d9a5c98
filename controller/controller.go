// Package controller maps persisted toggles to runtime state and performs
// the clipboard side effects.
package controller

import (
	"errors"
	"fmt"

	"clearit/appearance"
	"clearit/clipboard"
	"clearit/logging"
	"clearit/models"
	"clearit/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrThemeUnsupported is returned by SetDarkMode when theme support is off
	ErrThemeUnsupported = errors.New("theme toggle is not enabled")
	// ErrUnknownKey is returned by Set for keys without a toggle
	ErrUnknownKey = errors.New("unknown setting")
)

// Surface renders state and shows confirmation messages
type Surface interface {
	Render(State)
	Notify(message string)
}

// Options configures a Controller
type Options struct {
	ThemeCapable bool
	// SystemIsDark is consulted while use_system_theme is set; defaults to dark
	SystemIsDark appearance.Detector
	Logger       *zap.Logger
}

// Controller owns the toggle state of the single screen.
// It is not safe for concurrent use; call it from the UI goroutine.
type Controller struct {
	store        storage.Store
	clip         clipboard.Clipboard
	surface      Surface
	systemIsDark appearance.Detector
	themeCapable bool
	logger       *zap.Logger

	settings models.Settings
}

// New creates a controller with default settings; call Load or Activate to
// read the store.
func New(store storage.Store, clip clipboard.Clipboard, surface Surface, opts Options) *Controller {
	if surface == nil {
		surface = nopSurface{}
	}
	detect := opts.SystemIsDark
	if detect == nil {
		detect = appearance.Fixed(true)
	}
	return &Controller{
		store:        store,
		clip:         clip,
		surface:      surface,
		systemIsDark: detect,
		themeCapable: opts.ThemeCapable,
		logger:       logging.OrNop(opts.Logger),
		settings:     *models.DefaultSettings(),
	}
}

// Load reads every toggle from the store
func (c *Controller) Load() {
	defaults := models.DefaultSettings()

	c.settings.AutoClear = c.store.Bool(models.KeyAutoClear, defaults.AutoClear)
	c.settings.GoHome = c.store.Bool(models.KeyGoHome, defaults.GoHome)

	if c.themeCapable {
		c.settings.UseSystemTheme = c.store.Bool(models.KeyUseSystemTheme, defaults.UseSystemTheme)
		if c.settings.UseSystemTheme {
			c.settings.DarkMode = c.systemIsDark()
		} else {
			c.settings.DarkMode = c.store.Bool(models.KeyDarkMode, defaults.DarkMode)
		}
	} else {
		c.settings.UseSystemTheme = defaults.UseSystemTheme
		c.settings.DarkMode = defaults.DarkMode
	}

	c.logger.Debug("settings loaded",
		zap.Bool(models.KeyAutoClear, c.settings.AutoClear),
		zap.Bool(models.KeyGoHome, c.settings.GoHome),
		zap.Bool(models.KeyDarkMode, c.settings.DarkMode),
		zap.Bool(models.KeyUseSystemTheme, c.settings.UseSystemTheme),
	)
}

// Reload re-reads the store and renders, without any clipboard side effect
func (c *Controller) Reload() {
	c.Load()
	c.render()
}

// Activate runs every time the screen becomes visible: load, render and
// clear the clipboard when auto-clear is on.
func (c *Controller) Activate() {
	log := c.logger.With(zap.String("activation_id", uuid.NewString()))
	log.Debug("activated")

	c.Load()
	c.render()

	if c.settings.AutoClear {
		log.Info("auto-clear on activation")
		_ = c.Clear()
	}
}

// Clear empties the clipboard and notifies the surface. A failure is logged
// and reported with a generic message; the error is returned for callers
// that need an exit status.
func (c *Controller) Clear() error {
	if err := c.clip.Clear(); err != nil {
		c.logger.Error("clear clipboard", zap.Error(err))
		c.surface.Notify(MsgClearFailed)
		return err
	}
	c.logger.Info("clipboard cleared")
	c.surface.Notify(MsgCleared)

	// Returning to the home screen after clearing is disabled; GoHome is
	// persisted but gates nothing.
	return nil
}

// SetAutoClear persists the auto-clear toggle
func (c *Controller) SetAutoClear(on bool) {
	c.settings.AutoClear = on
	c.store.SetBool(models.KeyAutoClear, on)
	c.render()
	c.surface.Notify(pick(on, MsgAutoClearOn, MsgAutoClearOff))
}

// SetGoHome persists the dormant return-to-home toggle
func (c *Controller) SetGoHome(on bool) {
	c.settings.GoHome = on
	c.store.SetBool(models.KeyGoHome, on)
	c.render()
	c.surface.Notify(pick(on, MsgGoHomeOn, MsgGoHomeOff))
}

// SetDarkMode persists a manual theme choice. From then on the system
// appearance is no longer followed.
func (c *Controller) SetDarkMode(dark bool) error {
	if !c.themeCapable {
		return ErrThemeUnsupported
	}

	c.settings.DarkMode = dark
	c.settings.UseSystemTheme = false
	c.store.SetBool(models.KeyDarkMode, dark)
	c.store.SetBool(models.KeyUseSystemTheme, false)

	c.render()
	c.surface.Notify(pick(dark, MsgDarkMode, MsgLightMode))
	return nil
}

// Set routes a toggle change by key
func (c *Controller) Set(key string, value bool) error {
	switch key {
	case models.KeyAutoClear:
		c.SetAutoClear(value)
	case models.KeyGoHome:
		c.SetGoHome(value)
	case models.KeyDarkMode:
		return c.SetDarkMode(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Settings returns a copy of the in-memory settings
func (c *Controller) Settings() models.Settings {
	return c.settings
}

// State returns the snapshot a surface renders
func (c *Controller) State() State {
	return State{
		AutoClear:      c.settings.AutoClear,
		GoHome:         c.settings.GoHome,
		DarkMode:       c.settings.DarkMode,
		UseSystemTheme: c.settings.UseSystemTheme,
		ThemeCapable:   c.themeCapable,
		ShowGoHome:     false,
		Palette:        PaletteFor(c.settings.DarkMode),
	}
}

func (c *Controller) render() {
	c.surface.Render(c.State())
}

type nopSurface struct{}

func (nopSurface) Render(State)  {}
func (nopSurface) Notify(string) {}
