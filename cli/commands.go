package cli

import (
	"fmt"
	"strconv"

	"clearit/models"
	"clearit/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGUICommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the window (default)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return e.runGUI()
		},
	}
}

func newClearCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the clipboard now",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return e.controller().Clear()
		},
	}
}

func newActivateCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Run the on-open flow: clear the clipboard if auto-clear is on",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			e.controller().Activate()
			return nil
		},
	}
}

func newSettingsCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every setting with its effective value",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := e.controller()
			c.Load()
			s := c.Settings()

			lister, canList := e.store.(storage.KeyLister)
			stored := map[string]bool{}
			if canList {
				for _, key := range lister.Keys() {
					stored[key] = true
				}
			}

			for _, key := range visibleKeys(e.cfg.ThemeSupport) {
				v, _ := s.Get(key)
				if !canList {
					fmt.Fprintf(e.out, "%-18s %t\n", key, v)
					continue
				}
				fmt.Fprintf(e.out, "%-18s %-6t %s\n", key, v, valueSource(key, s, stored))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "get <key>",
		Short:     "Print one setting",
		Args:      cobra.ExactArgs(1),
		ValidArgs: models.Keys(),
		RunE: func(_ *cobra.Command, args []string) error {
			c := e.controller()
			c.Load()
			s := c.Settings()
			v, ok := s.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown setting %q", args[0])
			}
			fmt.Fprintln(e.out, v)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <true|false>",
		Short: "Change one setting",
		Long: `Change one setting.

Setting dark_mode stops following the system appearance. Setting
use_system_theme back to true is the only way to follow it again.`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: models.Keys(),
		RunE: func(_ *cobra.Command, args []string) error {
			key := args[0]
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: want true or false", args[1])
			}

			if key == models.KeyUseSystemTheme {
				if !e.cfg.ThemeSupport {
					return fmt.Errorf("%s: theme toggle is not enabled", key)
				}
				e.store.SetBool(key, value)
				e.logger.Info("system theme follow reset", zap.Bool("value", value))
				fmt.Fprintf(e.out, "%s set to %t\n", key, value)
				return nil
			}

			if err := e.controller().Set(key, value); err != nil {
				return fmt.Errorf("set %s: %w", key, err)
			}
			return nil
		},
	})

	return cmd
}

func newVersionCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			version := e.opts.Version
			if version == "" {
				version = "dev"
			}
			fmt.Fprintf(e.out, "clearit %s\n", version)
		},
	}
}

// valueSource tells where the effective value of key came from
func valueSource(key string, s models.Settings, stored map[string]bool) string {
	if key == models.KeyDarkMode && s.UseSystemTheme {
		return "system"
	}
	if stored[key] {
		return "stored"
	}
	return "default"
}

func visibleKeys(themeSupport bool) []string {
	if themeSupport {
		return models.Keys()
	}
	return []string{models.KeyAutoClear, models.KeyGoHome}
}
