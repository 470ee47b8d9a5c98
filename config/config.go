package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clearit/logging"
	"clearit/models"

	"github.com/spf13/viper"
)

// Store backends
const (
	StoreFile        = "file"
	StorePreferences = "preferences"
	StoreSQLite      = "sqlite"
	StoreMemory      = "memory"
)

// Config holds application configuration
type Config struct {
	AppID        string    `mapstructure:"app_id"`
	Namespace    string    `mapstructure:"namespace"`
	DataDir      string    `mapstructure:"data_dir"`
	Store        string    `mapstructure:"store"`
	ThemeSupport bool      `mapstructure:"theme_support"`
	Watch        bool      `mapstructure:"watch"`
	Notify       bool      `mapstructure:"notify"`
	Log          LogConfig `mapstructure:"log"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// DefaultDataDir returns ~/.clearit, or the current directory when home is unknown
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".clearit")
}

// Load reads configuration from path (optional), the data directory and
// CLEARIT_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CLEARIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString("data_dir"))
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_id", "xyz.gzjnas.clearit")
	v.SetDefault("namespace", models.DefaultNamespace)
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("store", StoreFile)
	v.SetDefault("theme_support", true)
	v.SetDefault("watch", true)
	v.SetDefault("notify", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Validate checks the values that cannot be defaulted silently
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StorePreferences, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("invalid store %q: want file, preferences, sqlite or memory", c.Store)
	}
	if strings.TrimSpace(c.Namespace) == "" {
		return errors.New("namespace must not be empty")
	}
	if strings.TrimSpace(c.AppID) == "" {
		return errors.New("app_id must not be empty")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
