package config

import (
	"strings"
	"testing"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[remote]")
	assert.Contains(t, content, `# dir = "~/Dropbox/sdsync"`)
	assert.Contains(t, content, `# color = "auto"`)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}

func TestRender_RoundTrips(t *testing.T) {
	cfg := &Config{
		Remote:  RemoteConfig{Dir: "/data/sdsync"},
		Output:  OutputConfig{Color: ColorNever},
		Logging: LoggingConfig{File: true},
	}

	data, err := Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[remote]")

	var back Config
	require.NoError(t, toml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)
}

func TestWriteConfigFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := "/home/u/.config/sdsync/config.toml"

	require.NoError(t, WriteConfigFile(fsys, path, []byte("a = 1\n"), false))
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "a = 1\n", string(data))

	err = WriteConfigFile(fsys, path, []byte("a = 2\n"), false)
	require.Error(t, err)
	assert.Equal(t, errors.ErrAlreadyExists, errors.GetErrorCode(err))

	require.NoError(t, WriteConfigFile(fsys, path, []byte("a = 2\n"), true))
	data, err = afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "a = 2\n", string(data))
}
