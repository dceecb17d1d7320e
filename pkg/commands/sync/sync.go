// Package sync runs the put, get and cut operations for one savedata path.
package sync

import (
	"io"

	"github.com/arthur-debert/sdsync/pkg/commands/internal"
	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/logging"
	"github.com/arthur-debert/sdsync/pkg/operator"
	"github.com/arthur-debert/sdsync/pkg/types"
)

// SyncOptions holds options for a put, get or cut run
type SyncOptions struct {
	Op         operator.Op
	LocalPath  string
	Name       string
	Title      string
	RemoteBase string
	Force      bool
	DryRun     bool
	// Output receives dry-run plans. Defaults to stderr.
	Output io.Writer
	// FileSystem defaults to the OS filesystem.
	FileSystem types.FS
}

// SyncResult describes the pair after the operation
type SyncResult struct {
	Op     operator.Op
	DryRun bool
	Before *types.SyncStatus
	After  *types.SyncStatus
}

// Sync resolves the target and applies the operation.
func Sync(opts SyncOptions) (*SyncResult, error) {
	logger := logging.GetLogger("commands.sync")

	target, err := internal.ResolveTarget(opts.LocalPath, opts.Name, opts.Title, opts.RemoteBase)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("op", string(opts.Op)).
		Str("title", target.Title).
		Str("local", target.LocalPath).
		Str("name", target.RemoteFilename).
		Str("remote_base", target.RemoteBase).
		Bool("dry_run", opts.DryRun).
		Msg("resolved target")

	var options []operator.Option
	if opts.Output != nil {
		options = append(options, operator.WithOutput(opts.Output))
	}
	if opts.FileSystem != nil {
		options = append(options, operator.WithFS(opts.FileSystem))
	}
	options = append(options, operator.WithDryRun(opts.DryRun))

	op, err := operator.New(target.Title, opts.Force, target.RemoteBase, options...)
	if err != nil {
		return nil, err
	}

	before, err := op.Inspect(target.LocalPath, target.RemoteFilename)
	if err != nil {
		return nil, err
	}

	var run func(string, string) error
	switch opts.Op {
	case operator.OpPut:
		run = op.Put
	case operator.OpGet:
		run = op.Get
	case operator.OpCut:
		run = op.Cut
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "%q is not a sync operation", string(opts.Op))
	}

	if err := run(target.LocalPath, target.RemoteFilename); err != nil {
		return nil, err
	}

	after, err := op.Inspect(target.LocalPath, target.RemoteFilename)
	if err != nil {
		return nil, err
	}

	return &SyncResult{
		Op:     opts.Op,
		DryRun: opts.DryRun,
		Before: before,
		After:  after,
	}, nil
}
