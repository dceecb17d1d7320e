// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/sdsync/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderStatus writes the status line
func (r *Renderer) RenderStatus(status types.SyncStatus) error {
	_, err := fmt.Fprintln(r.output, status.String())
	return err
}

// RenderError writes the error message
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "error: %v\n", err)
	return werr
}

// RenderMessage writes msg followed by a newline
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
