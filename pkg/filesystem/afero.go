package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs     afero.Fs
	rename func(oldpath, newpath string) error
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return newAferoFS(fs)
}

// NewOS creates a filesystem backed by the operating system
func NewOS() types.FS {
	return newAferoFS(afero.NewOsFs())
}

func newAferoFS(fs afero.Fs) *aferoFS {
	return &aferoFS{fs: fs, rename: fs.Rename}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) Mkdir(name string, perm fs.FileMode) error {
	return a.fs.Mkdir(name, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if linker, ok := a.fs.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, newname)
	}
	return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if reader, ok := a.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", &os.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.rename(oldpath, newpath)
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *aferoFS) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}

// Move renames src to dst. A rename across devices (a cloud folder on a
// separate volume) degrades to CopyAll followed by RemoveAll of src.
func (a *aferoFS) Move(src, dst string) error {
	err := a.rename(src, dst)
	if err == nil || !isCrossDevice(err) {
		return err
	}

	if _, err := a.Lstat(dst); err == nil {
		return &fs.PathError{Op: "move", Path: dst, Err: fs.ErrExist}
	}
	// From here on dst is ours, so a partial copy can be cleared.
	if err := a.CopyAll(src, dst); err != nil {
		_ = a.fs.RemoveAll(dst)
		return err
	}
	return a.fs.RemoveAll(src)
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// CopyAll copies src to dst recursively. dst must not exist.
func (a *aferoFS) CopyAll(src, dst string) error {
	if _, err := a.Lstat(dst); err == nil {
		return &fs.PathError{Op: "copy", Path: dst, Err: fs.ErrExist}
	}

	return afero.Walk(a.fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		mode := info.Mode()
		switch {
		case mode&os.ModeSymlink != 0:
			link, err := a.Readlink(path)
			if err != nil {
				return err
			}
			return a.Symlink(link, target)
		case mode.IsDir():
			// Owner write is kept so the children can be created.
			return a.fs.MkdirAll(target, mode.Perm()|0700)
		case mode.IsRegular():
			return a.copyFile(path, target, mode.Perm())
		default:
			return fmt.Errorf("cannot copy %s: unsupported file type %s", path, mode.Type())
		}
	})
}

func (a *aferoFS) copyFile(src, dst string, perm fs.FileMode) (err error) {
	in, err := a.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := a.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
