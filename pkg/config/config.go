package config

import (
	"fmt"
	"strings"
)

// Config is the resolved sdsync configuration.
type Config struct {
	Remote  RemoteConfig  `koanf:"remote" toml:"remote"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Logging LoggingConfig `koanf:"logging" toml:"logging"`
}

// RemoteConfig locates the remote base directory.
type RemoteConfig struct {
	// Dir is absolute after loading.
	Dir string `koanf:"dir" toml:"dir"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Color ColorMode `koanf:"color" toml:"color"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	File bool `koanf:"file" toml:"file"`
}

// ColorMode selects when status output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UnmarshalText accepts auto, always or never in any case.
func (c *ColorMode) UnmarshalText(text []byte) error {
	mode := ColorMode(strings.ToLower(strings.TrimSpace(string(text))))
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		*c = mode
		return nil
	case "":
		*c = ColorAuto
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", string(text))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ColorMode) MarshalText() ([]byte, error) {
	return []byte(c), nil
}
