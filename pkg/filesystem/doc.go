// Package filesystem provides the types.FS implementation used by sdsync.
//
// Everything goes through afero so the same code runs against the real OS
// filesystem and, where symlinks are not needed, an in-memory one. Symlink
// support is taken from afero's optional Lstater, Linker and LinkReader
// interfaces; filesystems that lack them report afero.ErrNoSymlink and
// afero.ErrNoReadlink instead of faking links.
package filesystem
