package operator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/filesystem"
	"github.com/arthur-debert/sdsync/pkg/logging"
	"github.com/arthur-debert/sdsync/pkg/paths"
	"github.com/arthur-debert/sdsync/pkg/state"
	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/rs/zerolog"
)

// StatusFormatter renders a classified pair for the status operation.
type StatusFormatter func(types.SyncStatus) string

// Operator runs sync operations for one title under one remote base.
type Operator struct {
	title      string
	force      bool
	remoteBase string

	fs        types.FS
	out       io.Writer
	dryRun    bool
	formatter StatusFormatter
	logger    zerolog.Logger
}

// Option configures an Operator.
type Option func(*Operator)

// WithFS replaces the OS filesystem.
func WithFS(fsys types.FS) Option {
	return func(o *Operator) {
		o.fs = fsys
	}
}

// WithOutput sets where status lines and dry-run plans are written.
func WithOutput(w io.Writer) Option {
	return func(o *Operator) {
		o.out = w
	}
}

// WithDryRun makes mutating operations report their plan and stop.
func WithDryRun(dryRun bool) Option {
	return func(o *Operator) {
		o.dryRun = dryRun
	}
}

// WithStatusFormatter overrides the status line rendering.
func WithStatusFormatter(f StatusFormatter) Option {
	return func(o *Operator) {
		o.formatter = f
	}
}

// WithLogger overrides the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Operator) {
		o.logger = logger
	}
}

// New binds an Operator to title and remoteBase. remoteBase must exist;
// the title directory below it is created when missing, except in dry-run
// mode where nothing is created.
func New(title string, force bool, remoteBase string, opts ...Option) (*Operator, error) {
	o := &Operator{
		title:      title,
		force:      force,
		remoteBase: remoteBase,
		fs:         filesystem.NewOS(),
		out:        os.Stderr,
		formatter:  types.SyncStatus.String,
		logger:     logging.GetLogger("operator"),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = o.logger.With().Str("title", title).Logger()

	if o.dryRun {
		if err := paths.CheckRemoteBase(o.fs, remoteBase); err != nil {
			return nil, err
		}
		return o, nil
	}

	dir, err := paths.EnsureNamespace(o.fs, remoteBase, title)
	if err != nil {
		return nil, err
	}
	o.logger.Trace().Str("dir", dir).Msg("title directory ready")
	return o, nil
}

// Title returns the namespace the operator works in.
func (o *Operator) Title() string { return o.title }

// RemoteBase returns the remote base directory.
func (o *Operator) RemoteBase() string { return o.remoteBase }

// RemotePath returns where remoteFilename lives for this title. An empty
// remoteFilename defaults to the base name of localPath.
func (o *Operator) RemotePath(localPath, remoteFilename string) string {
	if remoteFilename == "" {
		remoteFilename = filepath.Base(localPath)
	}
	return paths.RemotePath(o.remoteBase, o.title, remoteFilename)
}

// Inspect classifies the pair without side effects.
func (o *Operator) Inspect(localPath, remoteFilename string) (*types.SyncStatus, error) {
	return state.Classify(o.fs, o.title, localPath, o.RemotePath(localPath, remoteFilename))
}

// Put publishes local content to the remote and links it back.
func (o *Operator) Put(localPath, remoteFilename string) error {
	return o.run(OpPut, localPath, remoteFilename)
}

// Get links the local path to existing remote content.
func (o *Operator) Get(localPath, remoteFilename string) error {
	return o.run(OpGet, localPath, remoteFilename)
}

// Cut replaces a valid local link with a private copy of the remote content.
func (o *Operator) Cut(localPath, remoteFilename string) error {
	return o.run(OpCut, localPath, remoteFilename)
}

// Status writes the classified pair to the output writer.
func (o *Operator) Status(localPath, remoteFilename string) error {
	return o.run(OpStatus, localPath, remoteFilename)
}

func (o *Operator) run(op Op, localPath, remoteFilename string) error {
	logger := o.logger.With().Str("op", string(op)).Logger()
	done := logging.LogOperationStart(logger, string(op))
	defer done()

	status, err := o.Inspect(localPath, remoteFilename)
	if err != nil {
		return err
	}

	action, err := Decide(op, *status, o.force)
	logger.Debug().
		Str("local", status.LocalPath).
		Stringer("local_state", status.LocalState).
		Str("remote", status.RemotePath).
		Stringer("remote_state", status.RemoteState).
		Bool("force", o.force).
		Stringer("action", action).
		Msg("decided")
	if err != nil {
		return err
	}

	if o.dryRun && action.Mutates() {
		_, _ = fmt.Fprintf(o.out, "[%s] would %s: %s\n", o.title, action, describe(action, *status))
		return nil
	}

	if err := o.apply(action, *status); err != nil {
		return err
	}
	if action.Mutates() {
		logger.Info().
			Stringer("action", action).
			Str("local", status.LocalPath).
			Str("remote", status.RemotePath).
			Msg("done")
	}
	return nil
}

func (o *Operator) apply(action Action, s types.SyncStatus) error {
	switch action {
	case NoOp:
		o.logger.Info().Str("local", s.LocalPath).Msg("already synced")
		return nil
	case Report:
		_, _ = fmt.Fprintln(o.out, o.formatter(s))
		return nil
	case Publish:
		return o.publish(s.LocalPath, s.RemotePath)
	case Replace:
		return o.replace(s.LocalPath, s.RemotePath)
	case Link:
		return o.link(s.LocalPath, s.RemotePath)
	case Relink:
		return o.relink(s.LocalPath, s.RemotePath)
	case Reclaim:
		return o.reclaim(s.LocalPath, s.RemotePath)
	default:
		return errors.Newf(errors.ErrInternal, "unknown action %d", int(action))
	}
}

// describe says what action would do to the pair, for dry-run output.
func describe(action Action, s types.SyncStatus) string {
	switch action {
	case Publish:
		return fmt.Sprintf("move %s to %s and link it back", s.LocalPath, s.RemotePath)
	case Replace:
		return fmt.Sprintf("remove %s, move %s there and link it back", s.RemotePath, s.LocalPath)
	case Link:
		return fmt.Sprintf("link %s -> %s", s.LocalPath, s.RemotePath)
	case Relink:
		return fmt.Sprintf("remove %s and link it -> %s", s.LocalPath, s.RemotePath)
	case Reclaim:
		return fmt.Sprintf("replace link %s with a copy of %s", s.LocalPath, s.RemotePath)
	case Report:
		return "report status"
	default:
		return "nothing to do"
	}
}

// Describe summarizes an action in terms of the local and remote sides.
func Describe(action Action) string {
	switch action {
	case NoOp:
		return "already synced"
	case Publish:
		return "move local to remote, link local -> remote"
	case Replace:
		return "remove remote, move local to remote, link local -> remote"
	case Link:
		return "link local -> remote"
	case Relink:
		return "remove local, link local -> remote"
	case Reclaim:
		return "copy remote over the local link"
	case Report:
		return "print status"
	default:
		return "unknown"
	}
}
