package types_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLocalStateNames(t *testing.T) {
	assert.Equal(t, "invalid_link", types.LocalInvalidLink.String())
	assert.Equal(t, "valid_link", types.LocalValidLink.String())
	assert.Equal(t, "entity", types.LocalEntity.String())
	assert.Equal(t, "empty", types.LocalEmpty.String())
	assert.Equal(t, "LocalState(42)", types.LocalState(42).String())

	assert.True(t, types.LocalInvalidLink.IsLink())
	assert.True(t, types.LocalValidLink.IsLink())
	assert.False(t, types.LocalEntity.IsLink())
	assert.False(t, types.LocalEmpty.IsLink())
}

func TestRemoteStateNames(t *testing.T) {
	assert.Equal(t, "entity", types.RemoteEntity.String())
	assert.Equal(t, "empty", types.RemoteEmpty.String())
	assert.Len(t, types.AllRemoteStates, 2)
	assert.Len(t, types.AllLocalStates, 4)
}

func TestStateTextRoundTrip(t *testing.T) {
	for _, s := range types.AllLocalStates {
		text, err := s.MarshalText()
		require.NoError(t, err)
		var back types.LocalState
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	var bad types.RemoteState
	assert.Error(t, bad.UnmarshalText([]byte("valid_link")))

	_, err := types.LocalState(9).MarshalText()
	assert.Error(t, err)
}

func TestSyncStatusRendering(t *testing.T) {
	status := types.SyncStatus{
		Title:       "game",
		LocalPath:   "/home/me/game/save.dat",
		LocalState:  types.LocalValidLink,
		RemotePath:  "/cloud/sdsync/game/save.dat",
		RemoteState: types.RemoteEntity,
	}

	assert.Equal(t,
		"[game] /home/me/game/save.dat (valid_link) <==> /cloud/sdsync/game/save.dat (entity)",
		status.String())
	assert.True(t, status.Synced())

	data, err := json.Marshal(status)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"local_state":"valid_link"`)
	assert.Contains(t, string(data), `"remote_state":"entity"`)

	out, err := yaml.Marshal(status)
	require.NoError(t, err)
	assert.Contains(t, string(out), "local_state: valid_link")
}
