package config

import (
	"fmt"
	"net"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "server.max_shoppers")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Grid column bounds for the product grid.
const (
	MinGridColumns = 1
	MaxGridColumns = 4
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateStore()...)
	errs = append(errs, c.validateTUI()...)
	errs = append(errs, c.validateServer()...)
	errs = append(errs, c.validateLogging()...)
	errs = append(errs, c.validatePaths()...)
	return errs
}

func (c *Config) validateStore() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.Store.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "store.name",
			Value:   c.Store.Name,
			Message: "must not be empty",
		})
	}

	const maxCurrencyLen = 4
	if len([]rune(c.Store.Currency)) > maxCurrencyLen {
		errs = append(errs, ValidationError{
			Field:   "store.currency",
			Value:   c.Store.Currency,
			Message: fmt.Sprintf("exceeds maximum of %d characters", maxCurrencyLen),
		})
	}

	return errs
}

func (c *Config) validateTUI() []ValidationError {
	var errs []ValidationError

	// 0 means use the default
	if c.TUI.GridColumns != 0 && (c.TUI.GridColumns < MinGridColumns || c.TUI.GridColumns > MaxGridColumns) {
		errs = append(errs, ValidationError{
			Field:   "tui.grid_columns",
			Value:   c.TUI.GridColumns,
			Message: fmt.Sprintf("must be between %d and %d", MinGridColumns, MaxGridColumns),
		})
	}

	return errs
}

func (c *Config) validateServer() []ValidationError {
	var errs []ValidationError

	if c.Server.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
			errs = append(errs, ValidationError{
				Field:   "server.addr",
				Value:   c.Server.Addr,
				Message: "must be host:port",
			})
		}
	}

	if c.Server.MaxShoppers < 0 {
		errs = append(errs, ValidationError{
			Field:   "server.max_shoppers",
			Value:   c.Server.MaxShoppers,
			Message: "must be non-negative",
		})
	}

	if c.Server.IdleMinutes < 0 {
		errs = append(errs, ValidationError{
			Field:   "server.idle_minutes",
			Value:   c.Server.IdleMinutes,
			Message: "must be non-negative",
		})
	}

	for i, origin := range c.Server.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("server.allowed_origins[%d]", i),
				Value:   origin,
				Message: "must start with http:// or https://, or be \"*\"",
			})
		}
	}

	return errs
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errs
}

func (c *Config) validatePaths() []ValidationError {
	var errs []ValidationError

	if path := c.Paths.LogDir; path != "" {
		if strings.ContainsRune(path, '\x00') {
			errs = append(errs, ValidationError{
				Field:   "paths.log_dir",
				Value:   path,
				Message: "path contains invalid null character",
			})
		}

		const maxPathLength = 4096
		if len(path) > maxPathLength {
			errs = append(errs, ValidationError{
				Field:   "paths.log_dir",
				Value:   path,
				Message: fmt.Sprintf("path exceeds maximum length of %d characters", maxPathLength),
			})
		}
	}

	return errs
}
