package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStatus() types.SyncStatus {
	return types.SyncStatus{
		Title:       "game",
		LocalPath:   "/home/u/game/save.dat",
		LocalState:  types.LocalValidLink,
		RemotePath:  "/remote/game/save.dat",
		RemoteState: types.RemoteEntity,
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	for _, name := range requiredColors {
		assert.Contains(t, p, name)
	}
}

func TestParsePalette(t *testing.T) {
	_, err := ParsePalette([]byte("success: [not, a, pair]"))
	assert.Error(t, err)

	_, err = ParsePalette([]byte("success:\n  light: \"#000\"\n  dark: \"#fff\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing color")
}

func TestRenderStatus_PlainMatchesString(t *testing.T) {
	theme := Plain(&bytes.Buffer{})
	for _, local := range types.AllLocalStates {
		for _, remote := range types.AllRemoteStates {
			s := sampleStatus()
			s.LocalState, s.RemoteState = local, remote
			assert.Equal(t, s.String(), theme.RenderStatus(s))
		}
	}
}

func TestRenderStatus_Colored(t *testing.T) {
	theme := NewTheme(&bytes.Buffer{}, termenv.TrueColor, DefaultPalette())

	out := theme.RenderStatus(sampleStatus())
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "valid_link")
	assert.Contains(t, out, "/remote/game/save.dat")
}

func TestStateStyles(t *testing.T) {
	theme := Plain(&bytes.Buffer{})

	assert.Equal(t, theme.Success.GetForeground(), theme.LocalState(types.LocalValidLink).GetForeground())
	assert.Equal(t, theme.Error.GetForeground(), theme.LocalState(types.LocalInvalidLink).GetForeground())
	assert.Equal(t, theme.Warning.GetForeground(), theme.LocalState(types.LocalEntity).GetForeground())
	assert.Equal(t, theme.Muted.GetForeground(), theme.LocalState(types.LocalEmpty).GetForeground())
	assert.Equal(t, theme.Success.GetForeground(), theme.RemoteState(types.RemoteEntity).GetForeground())
	assert.Equal(t, theme.Muted.GetForeground(), theme.RemoteState(types.RemoteEmpty).GetForeground())
}

func TestMarkup(t *testing.T) {
	plain := Plain(&bytes.Buffer{})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single tag", "[success]done[/success]", "done"},
		{"two tags", "[path]/a[/path] -> [path]/b[/path]", "/a -> /b"},
		{"unknown tag", "[blink]x[/blink]", "[blink]x[/blink]"},
		{"mismatched", "[success]x[/error]", "[success]x[/error]"},
		{"no tags", "plain text", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, plain.Markup(tt.input))
		})
	}

	colored := NewTheme(&bytes.Buffer{}, termenv.ANSI256, DefaultPalette())
	out := colored.Markup("[error]boom[/error]")
	assert.True(t, strings.Contains(out, "\x1b["), "expected escape codes in %q", out)
}
