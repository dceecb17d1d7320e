package style

import (
	"fmt"

	"github.com/arthur-debert/sdsync/pkg/types"
)

// RenderStatus renders the status line with each part styled. With a plain
// theme the result equals s.String().
func (t *Theme) RenderStatus(s types.SyncStatus) string {
	return fmt.Sprintf("%s %s %s %s %s %s",
		t.Title.Render("["+s.Title+"]"),
		t.Path.Render(s.LocalPath),
		t.LocalState(s.LocalState).Render("("+s.LocalState.String()+")"),
		t.Muted.Render("<==>"),
		t.Path.Render(s.RemotePath),
		t.RemoteState(s.RemoteState).Render("("+s.RemoteState.String()+")"),
	)
}
