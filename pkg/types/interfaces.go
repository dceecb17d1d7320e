package types

import (
	"io/fs"
)

// FS is the filesystem interface required for sync operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	Mkdir(name string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error

	// Move relocates src to dst, falling back to copy and remove when a
	// rename crosses devices.
	Move(src, dst string) error
	// CopyAll recursively copies src to dst. Symlinks are recreated with
	// their stored target, not followed.
	CopyAll(src, dst string) error
}
