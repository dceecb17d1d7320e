package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format based on terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatJSON renders machine-readable JSON output
	FormatJSON
	// FormatYAML renders machine-readable YAML output
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output io.Writer) Format {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Check if we're being piped or redirected
	file, ok := output.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}

	// Check terminal color support
	colorProfile := termenv.NewOutput(file).EnvColorProfile()
	if colorProfile == termenv.Ascii {
		return FormatText
	}

	// Terminal supports colors
	return FormatTerminal
}

// ResolveFormat turns FormatAuto into a concrete format. colorMode is the
// output.color setting: "always" and "never" skip detection.
func ResolveFormat(f Format, colorMode string, output io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(colorMode) {
	case "always":
		return FormatTerminal
	case "never":
		return FormatText
	default:
		return DetectFormat(output)
	}
}

// ColorProfile returns the termenv profile used to render f on output. A
// terminal format forced onto a stream without color support gets ANSI256.
func ColorProfile(f Format, output io.Writer) termenv.Profile {
	if f != FormatTerminal {
		return termenv.Ascii
	}
	profile := termenv.NewOutput(output).EnvColorProfile()
	if profile == termenv.Ascii {
		return termenv.ANSI256
	}
	return profile
}
