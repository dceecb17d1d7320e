package status

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/testutil"
	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/arthur-debert/sdsync/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func setup(t *testing.T) (root, local, remoteBase string) {
	t.Helper()
	root = t.TempDir()
	remoteBase = testutil.CreateDir(t, root, "remote")
	local = testutil.CreateFile(t, filepath.Join(root, "zelda"), "save.dat", "progress")
	return root, local, remoteBase
}

func TestStatus_Text(t *testing.T) {
	root, local, remoteBase := setup(t)
	out := &bytes.Buffer{}
	before := testutil.Snapshot(t, root)

	s, err := Status(StatusOptions{LocalPath: local, RemoteBase: remoteBase, Format: ui.FormatText, Output: out})
	require.NoError(t, err)

	remote := filepath.Join(remoteBase, "zelda", "save.dat")
	assert.Equal(t, types.LocalEntity, s.LocalState)
	assert.Equal(t, types.RemoteEmpty, s.RemoteState)
	assert.Equal(t, "[zelda] "+local+" (entity) <==> "+remote+" (empty)\n", out.String())
	assert.Equal(t, before, testutil.Snapshot(t, root), "status must not create the title directory")
}

func TestStatus_Terminal(t *testing.T) {
	_, local, remoteBase := setup(t)
	out := &bytes.Buffer{}

	_, err := Status(StatusOptions{LocalPath: local, RemoteBase: remoteBase, Format: ui.FormatTerminal, Output: out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "entity")
}

func TestStatus_JSON(t *testing.T) {
	_, local, remoteBase := setup(t)
	out := &bytes.Buffer{}

	_, err := Status(StatusOptions{LocalPath: local, RemoteBase: remoteBase, Format: ui.FormatJSON, Output: out})
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "zelda", got["title"])
	assert.Equal(t, "entity", got["local_state"])
}

func TestStatus_YAML(t *testing.T) {
	_, local, remoteBase := setup(t)
	out := &bytes.Buffer{}

	s, err := Status(StatusOptions{LocalPath: local, RemoteBase: remoteBase, Format: ui.FormatYAML, Output: out})
	require.NoError(t, err)

	var got types.SyncStatus
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, *s, got)
}

func TestStatus_MissingRemoteBase(t *testing.T) {
	_, local, _ := setup(t)

	_, err := Status(StatusOptions{LocalPath: local, RemoteBase: "/does/not/exist", Output: &bytes.Buffer{}})
	assert.Equal(t, errors.ErrRemoteBaseMissing, errors.GetErrorCode(err))
}
