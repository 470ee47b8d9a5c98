package main

import (
	"context"
	"fmt"

	"clearit/config"
	"clearit/storage"
	"clearit/ui"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"
)

// runGUI opens the main window and blocks until it is closed
func runGUI(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting window",
		zap.String("app_id", cfg.AppID),
		zap.String("store", cfg.Store),
		zap.Bool("theme_support", cfg.ThemeSupport),
	)

	myApp := app.NewWithID(cfg.AppID)
	myApp.SetIcon(theme.ContentClearIcon())

	store, err := storage.Open(cfg, myApp.Preferences(), logger)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer func() {
		if err := storage.Close(store); err != nil {
			logger.Warn("close settings store", zap.Error(err))
		}
	}()

	mw := ui.NewMainWindow(myApp, store, ui.Options{
		ThemeCapable: cfg.ThemeSupport,
		Logger:       logger,
	})

	if fileStore, ok := store.(*storage.FileStore); ok && cfg.Watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		logger.Debug("watching settings file", zap.String("path", fileStore.Path()))
		go func() {
			if err := mw.WatchStore(ctx, fileStore); err != nil {
				logger.Warn("settings watcher stopped", zap.Error(err))
			}
		}()
	}

	mw.ShowAndRun()
	return nil
}
