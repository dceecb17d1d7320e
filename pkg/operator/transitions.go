package operator

import (
	"path/filepath"

	"github.com/arthur-debert/sdsync/pkg/errors"
)

const (
	parentDirPerm = 0755
	reclaimSuffix = ".sdsync-cut"
)

// publish moves local content to remotePath and links it back. A failed
// link moves the content back to localPath.
func (o *Operator) publish(localPath, remotePath string) error {
	if err := o.fs.MkdirAll(filepath.Dir(remotePath), parentDirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create remote dir for '%s'", remotePath)
	}

	if err := o.fs.Move(localPath, remotePath); err != nil {
		return errors.Wrapf(err, errors.ErrFileMove, "failed to move '%s' to '%s'", localPath, remotePath).
			WithDetail("source", localPath).
			WithDetail("destination", remotePath)
	}

	if err := o.fs.Symlink(remotePath, localPath); err != nil {
		linkErr := errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link '%s' -> '%s'", localPath, remotePath).
			WithDetail("link", localPath).
			WithDetail("target", remotePath)

		if rbErr := o.fs.Move(remotePath, localPath); rbErr != nil {
			o.logger.Error().Err(rbErr).
				Str("remote", remotePath).
				Str("local", localPath).
				Msg("rollback failed, content left at remote path")
			return linkErr.WithDetail("rollback_error", rbErr.Error())
		}
		o.logger.Warn().Str("local", localPath).Msg("link failed, content moved back")
		return linkErr
	}
	return nil
}

func (o *Operator) replace(localPath, remotePath string) error {
	if err := o.fs.RemoveAll(remotePath); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove remote file '%s'", remotePath)
	}
	return o.publish(localPath, remotePath)
}

func (o *Operator) link(localPath, remotePath string) error {
	if err := o.fs.MkdirAll(filepath.Dir(localPath), parentDirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create local dir for '%s'", localPath)
	}
	if err := o.fs.Symlink(remotePath, localPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link '%s' -> '%s'", localPath, remotePath).
			WithDetail("link", localPath).
			WithDetail("target", remotePath)
	}
	return nil
}

func (o *Operator) relink(localPath, remotePath string) error {
	if err := o.fs.RemoveAll(localPath); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove local file '%s'", localPath)
	}
	return o.link(localPath, remotePath)
}

// reclaim copies the remote content next to the link first, so a failed
// copy leaves the link in place. A failed rename restores the link.
func (o *Operator) reclaim(localPath, remotePath string) error {
	tmp := reclaimTempPath(localPath)
	if err := o.fs.RemoveAll(tmp); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to clear '%s'", tmp)
	}

	if err := o.fs.CopyAll(remotePath, tmp); err != nil {
		_ = o.fs.RemoveAll(tmp)
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to copy '%s' to '%s'", remotePath, localPath).
			WithDetail("source", remotePath).
			WithDetail("destination", localPath)
	}

	if err := o.fs.Remove(localPath); err != nil {
		_ = o.fs.RemoveAll(tmp)
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove link '%s'", localPath)
	}

	if err := o.fs.Rename(tmp, localPath); err != nil {
		moveErr := errors.Wrapf(err, errors.ErrFileMove, "failed to move copy into '%s'", localPath).
			WithDetail("copy", tmp)
		if lnErr := o.fs.Symlink(remotePath, localPath); lnErr != nil {
			o.logger.Error().Err(lnErr).Str("local", localPath).Str("copy", tmp).
				Msg("could not restore link, copy left in place")
			return moveErr.WithDetail("restore_error", lnErr.Error())
		}
		_ = o.fs.RemoveAll(tmp)
		return moveErr
	}
	return nil
}

func reclaimTempPath(localPath string) string {
	return filepath.Join(filepath.Dir(localPath), "."+filepath.Base(localPath)+reclaimSuffix)
}
