package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "empty provider",
			mutate:  func(cfg *Config) { cfg.Logging.Provider = "  " },
			wantErr: ErrLoggingProviderRequired,
		},
		{
			name:    "unknown provider",
			mutate:  func(cfg *Config) { cfg.Logging.Provider = "zap" },
			wantErr: ErrLoggingProviderUnknown,
		},
		{
			name:    "bad level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: ErrLoggingLevelInvalid,
		},
		{
			name: "bad format on gologger",
			mutate: func(cfg *Config) {
				cfg.Logging.Provider = "gologger"
				cfg.Logging.Format = "xml"
			},
			wantErr: ErrLoggingFormatInvalid,
		},
		{
			name:    "unknown markdown extension",
			mutate:  func(cfg *Config) { cfg.Markdown.Extensions = append(cfg.Markdown.Extensions, "mermaid") },
			wantErr: ErrMarkdownExtensionUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidate_FormatIgnoredForNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, noop provider should not check formats", err)
	}
}

func TestValidate_CaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "GoLogger"
	cfg.Logging.Level = "WARN"
	cfg.Logging.Format = "JSON"
	cfg.Markdown.Extensions = []string{"GFM", " TaskList "}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}
