// Package terminal provides rich terminal output using lipgloss styles
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/sdsync/pkg/style"
	"github.com/arthur-debert/sdsync/pkg/types"
)

// Renderer provides styled output for interactive terminals
type Renderer struct {
	output io.Writer
	theme  *style.Theme
}

// New creates a new terminal renderer
func New(output io.Writer, theme *style.Theme) *Renderer {
	return &Renderer{output: output, theme: theme}
}

// RenderStatus writes the styled status line
func (r *Renderer) RenderStatus(status types.SyncStatus) error {
	_, err := fmt.Fprintln(r.output, r.theme.RenderStatus(status))
	return err
}

// RenderError writes the error in the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.theme.Error.Render("✗ "+err.Error()))
	return werr
}

// RenderMessage renders markup in msg and writes it
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.theme.Markup(msg))
	return err
}
