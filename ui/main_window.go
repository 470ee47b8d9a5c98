package ui

import (
	"context"
	"image/color"
	"sync"

	"clearit/appearance"
	"clearit/clipboard"
	"clearit/controller"
	"clearit/logging"
	"clearit/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// Options configures the main window
type Options struct {
	Title        string
	ThemeCapable bool
	// SystemIsDark overrides the Fyne appearance query, mainly for tests
	SystemIsDark appearance.Detector
	Logger       *zap.Logger
}

// MainWindow is the single screen of the application. It renders controller
// state and forwards user intents back to the controller.
type MainWindow struct {
	app        fyne.App
	window     fyne.Window
	controller *controller.Controller
	logger     *zap.Logger

	// mu serializes controller access between UI callbacks, lifecycle
	// events and the file watcher. Render runs with mu held.
	mu sync.Mutex
	// backgrounded is set once the window has left the foreground; guarded by mu
	backgrounded bool

	// shownMu guards shown, the values last pushed into the checks. A check
	// change matching shown is the echo of a render, not a user intent.
	shownMu sync.Mutex
	shown   controller.State

	title          *canvas.Text
	status         *widget.Label
	clearButton    *widget.Button
	themeCheck     *widget.Check
	autoClearCheck *widget.Check
	goHomeCheck    *widget.Check
	themeRow       *Card
	autoClearRow   *Card
	goHomeRow      *Card
}

// NewMainWindow creates the window on a and wires it to store
func NewMainWindow(a fyne.App, store storage.Store, opts Options) *MainWindow {
	if opts.Title == "" {
		opts.Title = "ClearIt"
	}
	detect := opts.SystemIsDark
	if detect == nil {
		detect = appearance.FromFyne(a.Settings())
	}

	window := a.NewWindow(opts.Title)
	window.Resize(fyne.NewSize(360, 420))

	mw := &MainWindow{
		app:    a,
		window: window,
		logger: logging.OrNop(opts.Logger).Named("ui"),
	}
	mw.controller = controller.New(store, clipboard.NewFyne(window.Clipboard()), mw, controller.Options{
		ThemeCapable: opts.ThemeCapable,
		SystemIsDark: detect,
		Logger:       opts.Logger,
	})

	mw.setupUI(opts.Title)
	mw.setupLifecycle()

	mw.controller.Load()
	mw.Render(mw.controller.State())

	return mw
}

// Controller returns the toggle controller behind the window
func (mw *MainWindow) Controller() *controller.Controller {
	return mw.controller
}

// Window returns the underlying Fyne window
func (mw *MainWindow) Window() fyne.Window {
	return mw.window
}

// ShowAndRun shows the window and runs the application
func (mw *MainWindow) ShowAndRun() {
	mw.window.ShowAndRun()
}

// setupUI builds the widget tree
func (mw *MainWindow) setupUI(title string) {
	mw.title = canvas.NewText(title, theme.ForegroundColor())
	mw.title.TextSize = theme.TextSize() * 2
	mw.title.TextStyle = fyne.TextStyle{Bold: true}
	mw.title.Alignment = fyne.TextAlignCenter

	mw.clearButton = widget.NewButtonWithIcon("Clear clipboard", theme.ContentClearIcon(), func() {
		mw.withController(func(c *controller.Controller) { _ = c.Clear() })
	})
	mw.clearButton.Importance = widget.HighImportance

	mw.themeCheck = widget.NewCheck("", func(on bool) {
		if mw.isShown(func(s controller.State) bool { return s.DarkMode == on }) {
			return
		}
		mw.withController(func(c *controller.Controller) {
			if err := c.SetDarkMode(on); err != nil {
				mw.logger.Warn("theme toggle", zap.Error(err))
			}
		})
	})
	mw.autoClearCheck = widget.NewCheck("", func(on bool) {
		if mw.isShown(func(s controller.State) bool { return s.AutoClear == on }) {
			return
		}
		mw.withController(func(c *controller.Controller) { c.SetAutoClear(on) })
	})
	mw.goHomeCheck = widget.NewCheck("", func(on bool) {
		if mw.isShown(func(s controller.State) bool { return s.GoHome == on }) {
			return
		}
		mw.withController(func(c *controller.Controller) { c.SetGoHome(on) })
	})

	mw.themeRow = NewCard(settingRow("Dark mode", mw.themeCheck), controller.PaletteFor(true).Card)
	mw.autoClearRow = NewCard(settingRow("Clear when opened", mw.autoClearCheck), controller.PaletteFor(true).Card)
	mw.goHomeRow = NewCard(settingRow("Return to home after clearing", mw.goHomeCheck), controller.PaletteFor(true).Card)

	mw.status = widget.NewLabel("")
	mw.status.Alignment = fyne.TextAlignCenter
	mw.status.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		mw.title,
		layoutSpacer(),
		mw.clearButton,
		layoutSpacer(),
		mw.themeRow,
		mw.autoClearRow,
		mw.goHomeRow,
		mw.status,
	)
	mw.window.SetContent(container.NewPadded(content))
}

// setupLifecycle runs the activation flow on start and on every return to
// the foreground.
func (mw *MainWindow) setupLifecycle() {
	lc := mw.app.Lifecycle()
	lc.SetOnStarted(func() {
		mw.withController(func(c *controller.Controller) { c.Activate() })
	})
	lc.SetOnExitedForeground(func() {
		mw.mu.Lock()
		mw.backgrounded = true
		mw.mu.Unlock()
	})
	lc.SetOnEnteredForeground(func() {
		mw.withController(func(c *controller.Controller) {
			if !mw.backgrounded {
				return
			}
			mw.backgrounded = false
			c.Activate()
		})
	})
}

// WatchStore refreshes the window when the file store changes on disk.
// It blocks until ctx is done.
func (mw *MainWindow) WatchStore(ctx context.Context, store *storage.FileStore) error {
	return store.Watch(ctx, func() {
		mw.withController(func(c *controller.Controller) { c.Reload() })
	})
}

func (mw *MainWindow) withController(fn func(*controller.Controller)) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	fn(mw.controller)
}

func (mw *MainWindow) isShown(match func(controller.State) bool) bool {
	mw.shownMu.Lock()
	defer mw.shownMu.Unlock()
	return match(mw.shown)
}

// Render implements controller.Surface. The caller holds mu, except while
// the window is being built.
func (mw *MainWindow) Render(state controller.State) {
	mw.shownMu.Lock()
	mw.shown = state
	mw.shownMu.Unlock()

	mw.app.Settings().SetTheme(newPaletteTheme(state.DarkMode, state.Palette))

	mw.title.Color = state.Palette.Text
	mw.title.Refresh()

	mw.themeCheck.SetChecked(state.DarkMode)
	mw.autoClearCheck.SetChecked(state.AutoClear)
	mw.goHomeCheck.SetChecked(state.GoHome)

	for _, row := range []*Card{mw.themeRow, mw.autoClearRow, mw.goHomeRow} {
		row.SetFill(state.Palette.Card)
	}

	if state.ThemeCapable {
		mw.themeRow.Show()
	} else {
		mw.themeRow.Hide()
	}
	if state.ShowGoHome {
		mw.goHomeRow.Show()
	} else {
		mw.goHomeRow.Hide()
	}
}

// Notify implements controller.Surface
func (mw *MainWindow) Notify(message string) {
	mw.status.SetText(message)
	mw.logger.Debug("notify", zap.String("message", message))
}

func settingRow(label string, check *widget.Check) fyne.CanvasObject {
	return container.NewBorder(nil, nil, nil, check, widget.NewLabel(label))
}

func layoutSpacer() fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, theme.Padding()*2))
	return spacer
}
