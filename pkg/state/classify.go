package state

import (
	stderrors "errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/types"
)

// ClassifyLocal reports the state of localPath relative to the remote path
// a valid link would point at.
func ClassifyLocal(fsys types.FS, localPath, expectedRemotePath string) (types.LocalState, error) {
	info, err := fsys.Lstat(localPath)
	if err != nil {
		if isAbsent(err) {
			return types.LocalEmpty, nil
		}
		return types.LocalInvalidLink, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot inspect local file '%s'", localPath)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return types.LocalEntity, nil
	}

	target, err := fsys.Readlink(localPath)
	if err != nil {
		return types.LocalInvalidLink, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot read link '%s'", localPath)
	}

	if target == expectedRemotePath {
		return types.LocalValidLink, nil
	}
	return types.LocalInvalidLink, nil
}

// ClassifyRemote reports whether anything exists at remotePath. Stat
// follows links, so a dangling link on the remote side reads as empty.
func ClassifyRemote(fsys types.FS, remotePath string) (types.RemoteState, error) {
	if _, err := fsys.Stat(remotePath); err != nil {
		if isAbsent(err) {
			return types.RemoteEmpty, nil
		}
		return types.RemoteEmpty, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot inspect remote file '%s'", remotePath)
	}
	return types.RemoteEntity, nil
}

// Classify inspects both sides of a pair.
func Classify(fsys types.FS, title, localPath, remotePath string) (*types.SyncStatus, error) {
	local, err := ClassifyLocal(fsys, localPath, remotePath)
	if err != nil {
		return nil, err
	}
	remote, err := ClassifyRemote(fsys, remotePath)
	if err != nil {
		return nil, err
	}

	return &types.SyncStatus{
		Title:       title,
		LocalPath:   localPath,
		LocalState:  local,
		RemotePath:  remotePath,
		RemoteState: remote,
	}, nil
}

// isAbsent treats "a parent is not a directory" like "does not exist".
func isAbsent(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR)
}
