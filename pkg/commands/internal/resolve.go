// Package internal turns raw command arguments into the resolved inputs an
// operator needs.
package internal

import (
	"path/filepath"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/paths"
)

// Target is one resolved savedata pair request.
type Target struct {
	// LocalPath is absolute.
	LocalPath string
	// RemoteFilename is relative to the title directory.
	RemoteFilename string
	// Title names the directory under the remote base.
	Title string
	// RemoteBase is absolute.
	RemoteBase string
}

// ResolveTarget expands and validates the user's input. name defaults to
// the base name of local, title to the name of local's parent directory.
func ResolveTarget(local, name, title, remoteBase string) (*Target, error) {
	if err := paths.ValidatePath(local); err != nil {
		return nil, err
	}

	localPath, err := filepath.Abs(paths.ExpandHome(local))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve local path %s", local)
	}

	if name == "" {
		name = filepath.Base(localPath)
	}
	if err := paths.ValidateRemoteFilename(name); err != nil {
		return nil, err
	}

	if title == "" {
		title = filepath.Base(filepath.Dir(localPath))
	}
	if err := paths.ValidateTitle(title); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot derive a title from %s, pass --title", localPath)
	}

	if err := paths.ValidatePath(remoteBase); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "remote dir is not set")
	}
	base, err := filepath.Abs(paths.ExpandHome(remoteBase))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve remote dir %s", remoteBase)
	}

	return &Target{
		LocalPath:      localPath,
		RemoteFilename: name,
		Title:          title,
		RemoteBase:     base,
	}, nil
}
