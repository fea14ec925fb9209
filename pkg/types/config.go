// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// OutputFormat selects how a conversion result is written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`

	// Format is "json" for production encoding; anything else is console.
	Format string `json:"format" yaml:"format"`
}

// ServerConfig holds settings for the HTTP boundary.
type ServerConfig struct {
	// Addr is the listen address (default ":3000").
	Addr string `json:"addr" yaml:"addr"`

	// MaxUploadBytes caps request bodies on upload and convert endpoints
	// (default 10 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// ConversionConfig holds settings for the convert command.
type ConversionConfig struct {
	// Type selects the pipeline: gpa or medical.
	Type ConversionType `json:"type" yaml:"type"`

	// OutputFormat selects text, json, or yaml output.
	OutputFormat OutputFormat `json:"output_format" yaml:"output_format"`

	// InputDir and OutputDir are used by batch conversion.
	InputDir  string `json:"input_dir" yaml:"input_dir"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Config groups all settings.
type Config struct {
	Log        LogConfig        `json:"log" yaml:"log"`
	Server     ServerConfig     `json:"server" yaml:"server"`
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
}

const (
	DefaultAddr            = ":3000"
	DefaultMaxUploadBytes  = 10 << 20
	DefaultShutdownTimeout = 10 * time.Second
)

// WithDefaults fills zero-valued server and log settings.
func (c Config) WithDefaults() Config {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.MaxUploadBytes <= 0 {
		c.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Conversion.OutputFormat == "" {
		c.Conversion.OutputFormat = OutputText
	}
	return c
}
