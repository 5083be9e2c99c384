// Package runtimeconfig centralises the module configuration surface and its
// consistency checks so the facade and DI container share one source of truth.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLoggingProviderRequired indicates the logging provider name is empty.
	ErrLoggingProviderRequired = errors.New("config: logging provider required")
	// ErrLoggingProviderUnknown indicates an unsupported logging provider.
	ErrLoggingProviderUnknown = errors.New("config: unknown logging provider")
	// ErrLoggingLevelInvalid indicates an unsupported logging level.
	ErrLoggingLevelInvalid = errors.New("config: invalid logging level")
	// ErrLoggingFormatInvalid indicates an unsupported go-logger format.
	ErrLoggingFormatInvalid = errors.New("config: invalid logging format")
	// ErrMarkdownExtensionUnknown indicates an extension name outside the
	// supported goldmark set.
	ErrMarkdownExtensionUnknown = errors.New("config: unknown markdown extension")
)

// Config is the top-level runtime configuration.
type Config struct {
	Logging  LoggingConfig
	Markdown MarkdownConfig
	Tags     TagsConfig
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// MarkdownConfig selects goldmark extensions for document parsing.
type MarkdownConfig struct {
	Extensions []string
}

// TagsConfig controls registry bootstrapping.
type TagsConfig struct {
	// DisableBuiltin skips registering the shipped tag catalogue so hosts
	// can provide a catalogue of their own.
	DisableBuiltin bool
}

// DefaultConfig returns the configuration used when hosts pass a zero value.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: "noop",
			Level:    "info",
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "tasklist"},
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	for _, name := range cfg.Markdown.Extensions {
		if !isSupportedExtension(name) {
			return fmt.Errorf("%w: %s", ErrMarkdownExtensionUnknown, name)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "noop", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

func isSupportedExtension(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gfm", "table", "tables", "strikethrough", "linkify", "autolink",
		"tasklist", "definition", "footnote":
		return true
	default:
		return false
	}
}
