// Package style defines the colors and lipgloss styles used for sdsync's
// terminal output. The palette is embedded as YAML.
package style
