package genconfig

import (
	"strings"
	"testing"

	"github.com/arthur-debert/sdsync/pkg/config"
	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig_Print(t *testing.T) {
	fsys := afero.NewMemMapFs()

	result, err := GenConfig(GenConfigOptions{FileSystem: fsys, Path: "/cfg/config.toml"})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigContent, "# dir = ")
	assert.Empty(t, result.FileWritten)
	exists, err := afero.Exists(fsys, "/cfg/config.toml")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenConfig_Effective(t *testing.T) {
	cfg := &config.Config{
		Remote: config.RemoteConfig{Dir: "/mnt/cloud/sdsync"},
		Output: config.OutputConfig{Color: config.ColorNever},
	}

	result, err := GenConfig(GenConfigOptions{Effective: cfg})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigContent, "/mnt/cloud/sdsync")
	assert.Contains(t, result.ConfigContent, "never")
	for _, line := range strings.Split(result.ConfigContent, "\n") {
		assert.False(t, strings.HasPrefix(line, "# dir"), "effective config is not commented out")
	}
}

func TestGenConfig_Write(t *testing.T) {
	fsys := afero.NewMemMapFs()
	opts := GenConfigOptions{Write: true, FileSystem: fsys, Path: "/cfg/sdsync/config.toml"}

	result, err := GenConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, "/cfg/sdsync/config.toml", result.FileWritten)

	data, err := afero.ReadFile(fsys, "/cfg/sdsync/config.toml")
	require.NoError(t, err)
	assert.Equal(t, result.ConfigContent, string(data))

	_, err = GenConfig(opts)
	assert.Equal(t, errors.ErrAlreadyExists, errors.GetErrorCode(err))

	opts.Force = true
	opts.Effective = &config.Config{Remote: config.RemoteConfig{Dir: "/elsewhere"}}
	_, err = GenConfig(opts)
	require.NoError(t, err)

	data, err = afero.ReadFile(fsys, "/cfg/sdsync/config.toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "/elsewhere")
}
