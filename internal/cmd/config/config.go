// Package config provides CLI commands for managing ShopZone configuration.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	appconfig "github.com/DanielWebDeveloper25/e-commerce/internal/config"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

// Wrapper functions for exec to allow testing
var execLookPath = exec.LookPath
var execCommand = exec.Command

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify ShopZone configuration",
	Long: `View or modify ShopZone configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  shopzone config set store.currency €
  shopzone config set tui.grid_columns 3
  shopzone config set server.allowed_origins http://localhost:3000,http://localhost:5173

Valid keys:
  store.name                - Name shown in the header
  store.currency            - Symbol printed before every amount
  tui.theme                 - Color theme (built-in or custom)
  tui.grid_columns          - Product cards per row (1-4)
  tui.show_descriptions     - Show descriptions on cards (true/false)
  server.addr               - API listen address
  server.allowed_origins    - Comma-separated CORS origins
  server.max_shoppers       - Concurrent API shoppers, 0 = unlimited
  server.idle_minutes       - Drop API shoppers idle this long, 0 = never
  logging.enabled           - Write the activity log (true/false)
  logging.level             - debug, info, warn or error
  logging.max_size_mb       - Rotate the log at this size
  logging.max_backups       - Rotated files to keep
  logging.compress          - Gzip rotated files (true/false)
  paths.log_dir             - Directory of shopzone.log`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/shopzone/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	RunE:  runConfigEdit,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration to defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  shopzone config reset                 # Reset all to defaults
  shopzone config reset tui.theme       # Reset only tui.theme to default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyKind describes how a settable key's value is parsed.
type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
	kindList
	kindTheme
	kindLevel
)

var settableKeys = map[string]keyKind{
	"store.name":             kindString,
	"store.currency":         kindString,
	"tui.theme":              kindTheme,
	"tui.grid_columns":       kindInt,
	"tui.show_descriptions":  kindBool,
	"server.addr":            kindString,
	"server.allowed_origins": kindList,
	"server.max_shoppers":    kindInt,
	"server.idle_minutes":    kindInt,
	"logging.enabled":        kindBool,
	"logging.level":          kindLevel,
	"logging.max_size_mb":    kindInt,
	"logging.max_backups":    kindInt,
	"logging.compress":       kindBool,
	"paths.log_dir":          kindString,
}

// SettableKeys returns the keys accepted by "config set", sorted.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseValue converts a command-line value for key into the type viper
// should store.
func parseValue(key, value string) (any, error) {
	kind, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'shopzone config set --help' to see valid keys", key)
	}

	switch kind {
	case kindTheme:
		// Discover custom themes first
		_, _ = styles.DiscoverCustomThemes()
		if !styles.IsValidTheme(value) {
			return nil, fmt.Errorf("invalid theme: %s\nValid options: %s",
				value, strings.Join(styles.ValidThemes(), ", "))
		}
		return value, nil
	case kindLevel:
		if !slices.Contains(appconfig.ValidLogLevels(), strings.ToLower(value)) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidLogLevels(), ", "))
		}
		return strings.ToLower(value), nil
	case kindBool:
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case kindInt:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	case kindList:
		var items []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	default:
		return value, nil
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := appconfig.Load()
	if err != nil {
		fmt.Fprintf(out, "Warning: %v\nShowing defaults instead.\n\n", err)
		cfg = appconfig.Default()
	}

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "Config file: (none - using defaults)")
	}
	fmt.Fprintln(out)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := appconfig.Load(); err != nil {
		viper.Set(key, previous)
		return err
	}

	if err := writeConfig(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", appconfig.ConfigFile())
	return nil
}

// writeConfig saves every viper setting to the user's config file.
func writeConfig() error {
	if err := os.MkdirAll(appconfig.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(appconfig.ConfigFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

const configHeader = `# ShopZone Configuration
#
# Every key can be overridden by an environment variable:
# SHOPZONE_ followed by the key in upper case with dots replaced by
# underscores, e.g. SHOPZONE_SERVER_ADDR=:9000.

`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'shopzone config set' to modify values", configFile)
	}

	if err := os.MkdirAll(appconfig.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(appconfig.Default())
	if err != nil {
		return fmt.Errorf("failed to render default configuration: %w", err)
	}

	if err := os.WriteFile(configFile, append([]byte(configHeader), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize ShopZone.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	fmt.Fprintln(out, "  2. ./config.yaml (current directory)")
	fmt.Fprintf(out, "\nEnvironment variables: %s_* (e.g., %s_SERVER_ADDR)\n", appconfig.EnvPrefix, appconfig.EnvPrefix)
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	// Check if config file exists, if not create it
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "Config file doesn't exist, creating with defaults...")
		if err := runConfigInit(cmd, args); err != nil {
			return err
		}
	}

	// Find an editor
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "nano", "vi"} {
			if _, err := execLookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR environment variable")
	}

	editorCmd := execCommand(editor, configFile)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file saved: %s\n", configFile)
	return nil
}

// defaultValues maps every settable key to its default.
func defaultValues() map[string]any {
	d := appconfig.Default()
	return map[string]any{
		"store.name":             d.Store.Name,
		"store.currency":         d.Store.Currency,
		"tui.theme":              d.TUI.Theme,
		"tui.grid_columns":       d.TUI.GridColumns,
		"tui.show_descriptions":  d.TUI.ShowDescriptions,
		"server.addr":            d.Server.Addr,
		"server.allowed_origins": d.Server.AllowedOrigins,
		"server.max_shoppers":    d.Server.MaxShoppers,
		"server.idle_minutes":    d.Server.IdleMinutes,
		"logging.enabled":        d.Logging.Enabled,
		"logging.level":          d.Logging.Level,
		"logging.max_size_mb":    d.Logging.MaxSizeMB,
		"logging.max_backups":    d.Logging.MaxBackups,
		"logging.compress":       d.Logging.Compress,
		"paths.log_dir":          d.Paths.LogDir,
	}
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	defaults := defaultValues()

	if len(args) == 0 {
		for key, value := range defaults {
			viper.Set(key, value)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Reset all configuration to defaults.")
	} else {
		key := args[0]
		value, ok := defaults[key]
		if !ok {
			return fmt.Errorf("unknown configuration key: %s\nRun 'shopzone config set --help' to see valid keys", key)
		}
		viper.Set(key, value)
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s to default: %v\n", key, value)
	}

	if err := writeConfig(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", appconfig.ConfigFile())
	return nil
}
