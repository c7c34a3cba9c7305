package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. SHOPZONE_SERVER_ADDR.
const EnvPrefix = "SHOPZONE"

// Config represents the complete ShopZone configuration
type Config struct {
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Paths   PathsConfig   `mapstructure:"paths" yaml:"paths"`
}

// StoreConfig controls how the store presents itself
type StoreConfig struct {
	// Name is shown in the header (default: "ShopZone")
	Name string `mapstructure:"name" yaml:"name"`
	// Currency is the symbol printed before every amount (default: "$")
	Currency string `mapstructure:"currency" yaml:"currency"`
}

// TUIConfig controls the terminal storefront
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	// Options: "default", "monokai", "dracula", "nord" or a custom theme name
	Theme string `mapstructure:"theme" yaml:"theme"`
	// GridColumns is the number of product cards per row (default: 2, 1-4)
	GridColumns int `mapstructure:"grid_columns" yaml:"grid_columns"`
	// ShowDescriptions renders product descriptions on the cards (default: true)
	ShowDescriptions bool `mapstructure:"show_descriptions" yaml:"show_descriptions"`
}

// ServerConfig controls the JSON API started by "shopzone serve"
type ServerConfig struct {
	// Addr is the listen address (default: "127.0.0.1:8080")
	Addr string `mapstructure:"addr" yaml:"addr"`
	// AllowedOrigins are the CORS origins; "*" allows any (default: ["http://localhost:3000"])
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	// MaxShoppers caps concurrent shopper sessions, 0 = unlimited (default: 1000)
	MaxShoppers int `mapstructure:"max_shoppers" yaml:"max_shoppers"`
	// IdleMinutes releases shoppers unseen for this long, 0 = never (default: 30)
	IdleMinutes int `mapstructure:"idle_minutes" yaml:"idle_minutes"`
}

// LoggingConfig controls the activity log
type LoggingConfig struct {
	// Enabled controls whether shopzone.log is written (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated files (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// PathsConfig controls where ShopZone stores data
type PathsConfig struct {
	// LogDir is the directory holding shopzone.log.
	// If empty, defaults to "logs" under the config directory.
	// Supports ~ for home directory expansion.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir"`
}

// ResolveLogDir returns the log directory with ~ expanded.
func (p *PathsConfig) ResolveLogDir() string {
	if p.LogDir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}

	path := p.LogDir
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Name:     "ShopZone",
			Currency: "$",
		},
		TUI: TUIConfig{
			Theme:            "default",
			GridColumns:      2,
			ShowDescriptions: true,
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxShoppers:    1000,
			IdleMinutes:    30,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
		Paths: PathsConfig{
			LogDir: "", // Empty means <config dir>/logs
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("store.name", defaults.Store.Name)
	viper.SetDefault("store.currency", defaults.Store.Currency)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.grid_columns", defaults.TUI.GridColumns)
	viper.SetDefault("tui.show_descriptions", defaults.TUI.ShowDescriptions)

	viper.SetDefault("server.addr", defaults.Server.Addr)
	viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	viper.SetDefault("server.max_shoppers", defaults.Server.MaxShoppers)
	viper.SetDefault("server.idle_minutes", defaults.Server.IdleMinutes)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)

	viper.SetDefault("paths.log_dir", defaults.Paths.LogDir)
}

// BindEnv enables SHOPZONE_* environment overrides, mapping "." to "_"
// (store.name -> SHOPZONE_STORE_NAME).
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shopzone")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shopzone"
	}
	return filepath.Join(home, ".config", "shopzone")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
