package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemotePath(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		title    string
		filename string
		want     string
	}{
		{"simple", "/cloud/sdsync", "game", "save.dat", "/cloud/sdsync/game/save.dat"},
		{"trailing slash on base", "/cloud/sdsync/", "game", "save.dat", "/cloud/sdsync/game/save.dat"},
		{"nested filename", "/cloud/sdsync", "game", "slot1/save.dat", "/cloud/sdsync/game/slot1/save.dat"},
		{"directory savedata", "/cloud", "emu", "memcards", "/cloud/emu/memcards"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), RemotePath(filepath.FromSlash(tt.base), tt.title, tt.filename))
		})
	}
}

func TestRemotePathDoesNotTouchFilesystem(t *testing.T) {
	base := filepath.Join(t.TempDir(), "does-not-exist")

	got := RemotePath(base, "game", "save.dat")

	assert.Equal(t, filepath.Join(base, "game", "save.dat"), got)
	_, err := os.Stat(base)
	assert.True(t, os.IsNotExist(err))
}

func TestEnsureNamespace(t *testing.T) {
	fs := filesystem.NewOS()

	t.Run("creates title dir", func(t *testing.T) {
		base := t.TempDir()

		dir, err := EnsureNamespace(fs, base, "game")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "game"), dir)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("idempotent when title dir exists", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(base, "game"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(base, "game", "keep.dat"), []byte("x"), 0644))

		_, err := EnsureNamespace(fs, base, "game")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(base, "game", "keep.dat"))
		assert.NoError(t, err, "existing content must survive")
	})

	t.Run("missing remote base", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "Dropbox", "sdsync")

		_, err := EnsureNamespace(fs, base, "game")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRemoteBaseMissing))
		assert.Contains(t, err.Error(), "remote dir "+base+" does not exist")

		_, statErr := os.Stat(base)
		assert.True(t, os.IsNotExist(statErr), "remote base must never be created")
	})

	t.Run("remote base is a file", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(base, []byte("x"), 0644))

		_, err := EnsureNamespace(fs, base, "game")
		assert.True(t, errors.IsErrorCode(err, errors.ErrRemoteBaseMissing))
	})

	t.Run("remote base nested under a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
		base := filepath.Join(file, "remote")

		_, err := EnsureNamespace(fs, base, "game")
		require.Error(t, err)
		assert.Equal(t, errors.ErrRemoteBaseMissing, errors.GetErrorCode(err))
		assert.Contains(t, err.Error(), "remote dir "+base+" does not exist")
	})

	t.Run("title path is a file", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "game"), []byte("x"), 0644))

		_, err := EnsureNamespace(fs, base, "game")
		assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	})
}

func TestEnsureNamespaceInMemory(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/cloud", 0755))

	dir, err := EnsureNamespace(fs, "/cloud", "game")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cloud", "game"), dir)

	// second call hits the already-exists branch
	_, err = EnsureNamespace(fs, "/cloud", "game")
	assert.NoError(t, err)
}

func TestNewHonorsOverrides(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvConfigDir, filepath.Join(tmp, "cfg"))
	t.Setenv(EnvStateDir, filepath.Join(tmp, "state"))

	p := New()

	assert.Equal(t, filepath.Join(tmp, "cfg"), p.ConfigDir())
	assert.Equal(t, filepath.Join(tmp, "cfg", "config.toml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(tmp, "state"), p.StateDir())
	assert.Equal(t, filepath.Join(tmp, "state", "sdsync.log"), p.LogFilePath())
}

func TestNewUsesXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))

	p := New()

	assert.Equal(t, filepath.Join(tmp, "config", "sdsync"), p.ConfigDir())
	assert.Equal(t, filepath.Join(tmp, "state", "sdsync"), p.StateDir())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Dropbox", "sdsync"), ExpandHome("~/Dropbox/sdsync"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "relative/path", ExpandHome("relative/path"))
}
