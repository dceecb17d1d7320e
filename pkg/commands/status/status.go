// Package status reports the state of one savedata pair.
package status

import (
	"io"
	"os"

	"github.com/arthur-debert/sdsync/pkg/commands/internal"
	"github.com/arthur-debert/sdsync/pkg/logging"
	"github.com/arthur-debert/sdsync/pkg/operator"
	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/arthur-debert/sdsync/pkg/ui"
)

// StatusOptions holds options for the status command
type StatusOptions struct {
	LocalPath  string
	Name       string
	Title      string
	RemoteBase string
	// Format must be resolved; FormatAuto is treated as text.
	Format ui.Format
	// Output defaults to stderr, where the status line has always gone.
	Output     io.Writer
	FileSystem types.FS
}

// Status classifies the pair and renders it. The filesystem is never
// modified, not even the title directory.
func Status(opts StatusOptions) (*types.SyncStatus, error) {
	logger := logging.GetLogger("commands.status")

	target, err := internal.ResolveTarget(opts.LocalPath, opts.Name, opts.Title, opts.RemoteBase)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	options := []operator.Option{
		operator.WithOutput(out),
		operator.WithDryRun(true),
		operator.WithStatusFormatter(ui.StatusFormatter(opts.Format, out)),
	}
	if opts.FileSystem != nil {
		options = append(options, operator.WithFS(opts.FileSystem))
	}

	op, err := operator.New(target.Title, false, target.RemoteBase, options...)
	if err != nil {
		return nil, err
	}

	s, err := op.Inspect(target.LocalPath, target.RemoteFilename)
	if err != nil {
		return nil, err
	}
	logger.Debug().Stringer("status", s).Msg("classified")

	switch opts.Format {
	case ui.FormatJSON, ui.FormatYAML:
		renderer, err := ui.NewRenderer(opts.Format, out)
		if err != nil {
			return nil, err
		}
		if err := renderer.RenderStatus(*s); err != nil {
			return nil, err
		}
	default:
		if err := op.Status(target.LocalPath, target.RemoteFilename); err != nil {
			return nil, err
		}
	}
	return s, nil
}
