package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	require.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "save.dat")

	require.NoError(t, fs.WriteFile(testFile, []byte("slot 1"), 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "save.dat", info.Name())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, []byte("slot 1"), content)

	_, err = fs.ReadFile(tmpDir)
	assert.Error(t, err, "reading a directory should fail")

	require.NoError(t, fs.Mkdir(filepath.Join(tmpDir, "title"), 0755))
	err = fs.Mkdir(filepath.Join(tmpDir, "title"), 0755)
	assert.True(t, errors.Is(err, os.ErrExist))
}

func TestOSSymlinks(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "remote", "save.dat")
	link := filepath.Join(tmpDir, "save.dat")

	require.NoError(t, fs.Symlink(target, link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode()&os.ModeSymlink != 0)

	got, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	// Stat follows the dangling link
	_, err = fs.Stat(link)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.Remove(link))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))
}

func TestMemMapFSHasNoSymlinks(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	err := fs.Symlink("/a", "/b")
	assert.True(t, errors.Is(err, afero.ErrNoSymlink))

	require.NoError(t, fs.WriteFile("/a", []byte("x"), 0644))
	_, err = fs.Readlink("/a")
	assert.True(t, errors.Is(err, afero.ErrNoReadlink))

	info, err := fs.Lstat("/a")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestCopyAllFile(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "save.dat")
	dst := filepath.Join(tmpDir, "copy.dat")
	require.NoError(t, os.WriteFile(src, []byte("hp=100"), 0600))

	require.NoError(t, fs.CopyAll(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hp=100", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCopyAllDirectoryTree(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "saves")
	dst := filepath.Join(tmpDir, "restored")

	require.NoError(t, os.MkdirAll(filepath.Join(src, "slot1", "meta"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "slot1", "data.bin"), []byte("one"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "slot1", "meta", "info.txt"), []byte("meta"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0755))
	require.NoError(t, os.Symlink("slot1/data.bin", filepath.Join(src, "latest")))

	require.NoError(t, fs.CopyAll(src, dst))

	content, err := os.ReadFile(filepath.Join(dst, "slot1", "meta", "info.txt"))
	require.NoError(t, err)
	assert.Equal(t, "meta", string(content))

	info, err := os.Stat(filepath.Join(dst, "empty"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Nested links are recreated verbatim rather than followed
	link, err := os.Readlink(filepath.Join(dst, "latest"))
	require.NoError(t, err)
	assert.Equal(t, "slot1/data.bin", link)
}

func TestCopyAllRefusesExistingDestination(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a")
	dst := filepath.Join(tmpDir, "b")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("b"), 0644))

	err := fs.CopyAll(src, dst)
	assert.True(t, errors.Is(err, os.ErrExist))
}

func TestCopyAllMissingSource(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	err := fs.CopyAll(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dst"))
	assert.True(t, os.IsNotExist(err))
}

func TestMoveRename(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "save.dat")
	dst := filepath.Join(tmpDir, "remote.dat")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0644))

	require.NoError(t, fs.Move(src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestMoveFallsBackAcrossDevices(t *testing.T) {
	a := newAferoFS(afero.NewOsFs())
	renames := 0
	a.rename = func(oldpath, newpath string) error {
		renames++
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	}

	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "saves")
	dst := filepath.Join(tmpDir, "cloud", "saves")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "slot.bin"), []byte("slot"), 0644))

	require.NoError(t, a.Move(src, dst))

	assert.Equal(t, 1, renames)
	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source should be removed after copy")
	content, err := os.ReadFile(filepath.Join(dst, "slot.bin"))
	require.NoError(t, err)
	assert.Equal(t, "slot", string(content))
}

func TestMovePropagatesOtherRenameErrors(t *testing.T) {
	a := newAferoFS(afero.NewOsFs())
	a.rename = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EACCES}
	}

	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "save.dat")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0644))

	err := a.Move(src, filepath.Join(tmpDir, "dst"))
	assert.True(t, errors.Is(err, syscall.EACCES))

	_, statErr := os.Stat(src)
	assert.NoError(t, statErr, "source must be untouched")
}

func TestMoveAcrossDevicesKeepsExistingDestination(t *testing.T) {
	a := newAferoFS(afero.NewOsFs())
	a.rename = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	}

	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "save.dat")
	dst := filepath.Join(tmpDir, "remote.dat")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0644))

	err := a.Move(src, dst)
	assert.True(t, errors.Is(err, os.ErrExist))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
	content, err = os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}
