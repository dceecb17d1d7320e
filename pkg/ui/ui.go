// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), JSON and YAML output formats.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/sdsync/pkg/style"
	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/arthur-debert/sdsync/pkg/ui/json"
	"github.com/arthur-debert/sdsync/pkg/ui/terminal"
	"github.com/arthur-debert/sdsync/pkg/ui/text"
	"github.com/arthur-debert/sdsync/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderStatus renders one classified pair
	RenderStatus(status types.SyncStatus) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved by detecting the terminal behind output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		theme := style.NewTheme(output, ColorProfile(format, output), style.DefaultPalette())
		return terminal.New(output, theme), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// StatusFormatter adapts a format to a one-line status formatter. Machine
// formats fall back to the plain line.
func StatusFormatter(format Format, output io.Writer) func(types.SyncStatus) string {
	if format == FormatTerminal {
		theme := style.NewTheme(output, ColorProfile(format, output), style.DefaultPalette())
		return theme.RenderStatus
	}
	return types.SyncStatus.String
}
