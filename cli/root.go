// Package cli provides the cobra commands of clearit.
package cli

import (
	"fmt"
	"io"
	"os"

	"clearit/appearance"
	"clearit/clipboard"
	"clearit/config"
	"clearit/controller"
	"clearit/logging"
	"clearit/notify"
	"clearit/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// GUIFunc launches the graphical window. It owns store creation because the
// preferences backend needs the Fyne app.
type GUIFunc func(cfg *config.Config, logger *zap.Logger) error

// Options injects the collaborators that differ between production and tests
type Options struct {
	Version   string
	GUI       GUIFunc
	Clipboard clipboard.Clipboard

	// SystemIsDark defaults to appearance.System
	SystemIsDark appearance.Detector
	// Desktop overrides the zenity sender used when notify is enabled
	Desktop notify.Sender

	Out io.Writer
}

// env is the per-invocation state shared by subcommands
type env struct {
	opts   Options
	cfg    *config.Config
	logger *zap.Logger
	store  storage.Store
	out    io.Writer

	configPath string
	storeName  string
	ephemeral  bool
	noTheme    bool
	notify     bool
	logLevel   string
}

// NewRootCommand builds the command tree
func NewRootCommand(opts Options) *cobra.Command {
	root, _ := newRoot(opts)
	return root
}

func newRoot(opts Options) (*cobra.Command, *env) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	e := &env{opts: opts, out: opts.Out}

	root := &cobra.Command{
		Use:   "clearit",
		Short: "Clear the system clipboard",
		Long: `ClearIt clears the system clipboard.

Run without a subcommand to open the window. The window clears the clipboard
every time it comes to the foreground unless auto-clear is turned off.
The subcommands share the same settings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}
			return e.setup(cmd.Name() != "gui" && cmd != cmd.Root())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runGUI()
		},
	}
	root.SetOut(opts.Out)

	flags := root.PersistentFlags()
	flags.StringVar(&e.configPath, "config", "", "config file (default <data_dir>/config.yaml)")
	flags.StringVar(&e.storeName, "store", "", "settings backend: file, preferences, sqlite or memory")
	flags.BoolVar(&e.ephemeral, "ephemeral", false, "keep settings in memory only")
	flags.BoolVar(&e.noTheme, "no-theme", false, "disable the dark mode toggle")
	flags.BoolVar(&e.notify, "notify", false, "also show messages as desktop notifications")
	flags.StringVar(&e.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newGUICommand(e),
		newClearCommand(e),
		newActivateCommand(e),
		newSettingsCommand(e),
		newVersionCommand(e),
	)
	return root, e
}

// Execute runs the root command and exits non-zero on failure
func Execute(opts Options) {
	root, e := newRoot(opts)
	if err := execute(root, e); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs root and releases the store and logger even when the command
// failed, since cobra skips PersistentPostRunE after a RunE error.
func execute(root *cobra.Command, e *env) error {
	err := root.Execute()
	if closeErr := e.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// setup loads config, builds the logger and, when withStore is set, opens
// the settings store.
func (e *env) setup(withStore bool) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if e.storeName != "" {
		cfg.Store = e.storeName
	}
	if e.ephemeral {
		cfg.Store = config.StoreMemory
	}
	if e.noTheme {
		cfg.ThemeSupport = false
	}
	if e.notify {
		cfg.Notify = true
	}
	if e.logLevel != "" {
		cfg.Log.Level = e.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	e.logger = logger

	if !withStore {
		return nil
	}
	store, err := storage.Open(cfg, nil, logger)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	e.store = store
	return nil
}

func (e *env) close() error {
	var err error
	if e.store != nil {
		err = storage.Close(e.store)
		e.store = nil
	}
	if e.logger != nil {
		_ = e.logger.Sync()
	}
	return err
}

func (e *env) runGUI() error {
	if e.opts.GUI == nil {
		return fmt.Errorf("this build has no graphical interface")
	}
	return e.opts.GUI(e.cfg, e.logger)
}

// controller builds a controller printing to the console surface
func (e *env) controller() *controller.Controller {
	clip := e.opts.Clipboard
	if clip == nil {
		clip = clipboard.NewSystem()
	}
	detect := e.opts.SystemIsDark
	if detect == nil {
		detect = appearance.System()
	}

	var desktop notify.Sender
	if e.cfg.Notify {
		desktop = e.opts.Desktop
		if desktop == nil {
			desktop = notify.Zenity("ClearIt")
		}
	}

	surface := consoleSurface{notify.NewConsole(e.out, desktop, e.logger)}
	return controller.New(e.store, clip, surface, controller.Options{
		ThemeCapable: e.cfg.ThemeSupport,
		SystemIsDark: detect,
		Logger:       e.logger,
	})
}

// consoleSurface prints messages; state is printed by the settings commands
type consoleSurface struct {
	*notify.Console
}

func (consoleSurface) Render(controller.State) {}
