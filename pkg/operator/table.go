package operator

import (
	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/types"
)

// Op names one of the user-facing operations.
type Op string

const (
	OpPut    Op = "put"
	OpGet    Op = "get"
	OpCut    Op = "cut"
	OpStatus Op = "status"
)

// SyncOps lists the operations that have a decision table.
var SyncOps = []Op{OpGet, OpPut, OpCut}

// Action is the side effect chosen for a classified pair.
type Action int

const (
	// NoOp leaves everything as is; the pair is already synced.
	NoOp Action = iota
	// Publish moves the local entity to the remote path and links it back.
	Publish
	// Replace removes the remote entity, then publishes.
	Replace
	// Link creates a link at the local path pointing at the remote path.
	Link
	// Relink removes the local entity, then links.
	Relink
	// Reclaim replaces the local link with a copy of the remote content.
	Reclaim
	// Report prints the classified pair.
	Report
)

var actionNames = map[Action]string{
	NoOp:    "no-op",
	Publish: "publish",
	Replace: "replace",
	Link:    "link",
	Relink:  "relink",
	Reclaim: "reclaim",
	Report:  "report",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Mutates reports whether applying the action changes the filesystem.
func (a Action) Mutates() bool {
	switch a {
	case Publish, Replace, Link, Relink, Reclaim:
		return true
	default:
		return false
	}
}

// Decide returns the action op should take for the classified pair s, or
// the coded error refusing it. force only matters for put and get when the
// local side is an entity.
func Decide(op Op, s types.SyncStatus, force bool) (Action, error) {
	switch op {
	case OpPut:
		return decidePut(s, force)
	case OpGet:
		return decideGet(s, force)
	case OpCut:
		return decideCut(s)
	case OpStatus:
		return Report, nil
	default:
		return NoOp, errors.Newf(errors.ErrInvalidInput, "unknown operation %q", string(op))
	}
}

func decidePut(s types.SyncStatus, force bool) (Action, error) {
	switch s.LocalState {
	case types.LocalInvalidLink:
		return NoOp, brokenLink(s)
	case types.LocalValidLink:
		switch s.RemoteState {
		case types.RemoteEntity:
			return NoOp, nil
		case types.RemoteEmpty:
			return NoOp, brokenLink(s)
		}
	case types.LocalEntity:
		switch s.RemoteState {
		case types.RemoteEntity:
			if !force {
				return NoOp, remoteExists(s)
			}
			return Replace, nil
		case types.RemoteEmpty:
			return Publish, nil
		}
	case types.LocalEmpty:
		return NoOp, localEmpty(s)
	}
	return NoOp, unknownState(OpPut, s)
}

func decideGet(s types.SyncStatus, force bool) (Action, error) {
	switch s.LocalState {
	case types.LocalInvalidLink:
		return NoOp, brokenLink(s)
	case types.LocalValidLink:
		switch s.RemoteState {
		case types.RemoteEntity:
			return NoOp, nil
		case types.RemoteEmpty:
			return NoOp, brokenLink(s)
		}
	case types.LocalEntity:
		switch s.RemoteState {
		case types.RemoteEntity:
			if !force {
				return NoOp, localExists(s)
			}
			return Relink, nil
		case types.RemoteEmpty:
			return NoOp, remoteEmpty(s)
		}
	case types.LocalEmpty:
		switch s.RemoteState {
		case types.RemoteEntity:
			return Link, nil
		case types.RemoteEmpty:
			return NoOp, remoteEmpty(s)
		}
	}
	return NoOp, unknownState(OpGet, s)
}

func decideCut(s types.SyncStatus) (Action, error) {
	if s.RemoteState != types.RemoteEntity && s.RemoteState != types.RemoteEmpty {
		return NoOp, unknownState(OpCut, s)
	}
	switch {
	case s.LocalState == types.LocalValidLink && s.RemoteState == types.RemoteEntity:
		return Reclaim, nil
	case s.LocalState.IsLink():
		return NoOp, unsyncedCut(s, brokenLink(s))
	case s.LocalState == types.LocalEntity, s.LocalState == types.LocalEmpty:
		return NoOp, unsyncedCut(s, nil)
	}
	return NoOp, unknownState(OpCut, s)
}

func withPair(err *errors.SyncError, s types.SyncStatus) *errors.SyncError {
	return err.
		WithDetail("local", s.LocalPath).
		WithDetail("local_state", s.LocalState.String()).
		WithDetail("remote", s.RemotePath).
		WithDetail("remote_state", s.RemoteState.String())
}

func brokenLink(s types.SyncStatus) *errors.SyncError {
	return withPair(errors.Newf(errors.ErrBrokenLink,
		"local file '%s' is broken link. remove it to continue", s.LocalPath), s)
}

func remoteExists(s types.SyncStatus) *errors.SyncError {
	return withPair(errors.Newf(errors.ErrAlreadyExists,
		"remote file '%s' exists. use --force to force", s.RemotePath), s)
}

func localExists(s types.SyncStatus) *errors.SyncError {
	return withPair(errors.Newf(errors.ErrAlreadyExists,
		"local file '%s' exists. use --force to force", s.LocalPath), s)
}

func localEmpty(s types.SyncStatus) *errors.SyncError {
	return withPair(errors.Newf(errors.ErrNothingToSync,
		"local file '%s' is empty", s.LocalPath), s)
}

func remoteEmpty(s types.SyncStatus) *errors.SyncError {
	return withPair(errors.Newf(errors.ErrNothingToSync,
		"remote file '%s' is empty", s.RemotePath), s)
}

// unsyncedCut keeps UNSYNCED_CUT as the outer code; a broken link cause is
// wrapped so IsErrorCode matches either.
func unsyncedCut(s types.SyncStatus, cause *errors.SyncError) *errors.SyncError {
	if cause == nil {
		return withPair(errors.New(errors.ErrUnsyncedCut, "cannot cut un-synced file"), s)
	}
	return withPair(errors.Wrap(cause, errors.ErrUnsyncedCut, "cannot cut un-synced file"), s)
}

func unknownState(op Op, s types.SyncStatus) *errors.SyncError {
	return withPair(errors.Newf(errors.ErrInternal,
		"%s: unhandled state pair (%s, %s)", op, s.LocalState, s.RemoteState), s)
}
