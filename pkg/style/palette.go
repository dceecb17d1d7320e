package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var paletteData []byte

// ColorPair is one adaptive color.
type ColorPair struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// Palette maps color names to adaptive colors.
type Palette map[string]ColorPair

// Color names every palette must define.
var requiredColors = []string{"success", "error", "warning", "info", "muted", "heading", "path", "title"}

// ParsePalette decodes a YAML palette and checks it is complete.
func ParsePalette(data []byte) (Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}
	for _, name := range requiredColors {
		pair, ok := p[name]
		if !ok || pair.Light == "" || pair.Dark == "" {
			return nil, fmt.Errorf("palette is missing color %q", name)
		}
	}
	return p, nil
}

// DefaultPalette returns the embedded palette.
func DefaultPalette() Palette {
	p, err := ParsePalette(paletteData)
	if err != nil {
		panic(err)
	}
	return p
}

// Color returns the named color. Unknown names are rendered uncolored.
func (p Palette) Color(name string) lipgloss.TerminalColor {
	pair, ok := p[name]
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.AdaptiveColor{Light: pair.Light, Dark: pair.Dark}
}
