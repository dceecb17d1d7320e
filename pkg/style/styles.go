package style

import (
	"io"
	"regexp"

	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styles for one output stream. Styles are bound to the
// theme's renderer, so a theme built with an Ascii profile renders plain
// text.
type Theme struct {
	renderer *lipgloss.Renderer

	Title   lipgloss.Style
	Heading lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style

	tags map[string]lipgloss.Style
}

// NewTheme builds a theme for w using profile.
func NewTheme(w io.Writer, profile termenv.Profile, p Palette) *Theme {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return NewThemeWithRenderer(r, p)
}

// NewThemeWithRenderer builds a theme on an existing renderer.
func NewThemeWithRenderer(r *lipgloss.Renderer, p Palette) *Theme {
	t := &Theme{
		renderer: r,
		Title:    r.NewStyle().Foreground(p.Color("title")).Bold(true),
		Heading:  r.NewStyle().Foreground(p.Color("heading")).Bold(true),
		Path:     r.NewStyle().Foreground(p.Color("path")).Italic(true),
		Success:  r.NewStyle().Foreground(p.Color("success")).Bold(true),
		Warning:  r.NewStyle().Foreground(p.Color("warning")).Bold(true),
		Error:    r.NewStyle().Foreground(p.Color("error")).Bold(true),
		Info:     r.NewStyle().Foreground(p.Color("info")),
		Muted:    r.NewStyle().Foreground(p.Color("muted")),
	}
	t.tags = map[string]lipgloss.Style{
		"title":   t.Title,
		"heading": t.Heading,
		"path":    t.Path,
		"success": t.Success,
		"warning": t.Warning,
		"error":   t.Error,
		"info":    t.Info,
		"muted":   t.Muted,
		"bold":    r.NewStyle().Bold(true),
	}
	return t
}

// Plain returns a theme that never emits escape sequences.
func Plain(w io.Writer) *Theme {
	return NewTheme(w, termenv.Ascii, DefaultPalette())
}

// LocalState returns the style for a local state: a valid link is good, a
// broken one needs attention, content and absence are neutral.
func (t *Theme) LocalState(s types.LocalState) lipgloss.Style {
	switch s {
	case types.LocalValidLink:
		return t.Success
	case types.LocalInvalidLink:
		return t.Error
	case types.LocalEntity:
		return t.Warning
	default:
		return t.Muted
	}
}

// RemoteState returns the style for a remote state.
func (t *Theme) RemoteState(s types.RemoteState) lipgloss.Style {
	if s == types.RemoteEntity {
		return t.Success
	}
	return t.Muted
}

var tagPattern = regexp.MustCompile(`\[([a-z]+)\](.*?)\[/([a-z]+)\]`)

// Markup renders [tag]text[/tag] spans with the theme's styles. Unknown
// tags are left as written.
func (t *Theme) Markup(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := tagPattern.FindStringSubmatch(match)
		if sub[1] != sub[3] {
			return match
		}
		st, ok := t.tags[sub[1]]
		if !ok {
			return match
		}
		return st.Render(sub[2])
	})
}
