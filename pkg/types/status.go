package types

import (
	"fmt"
)

// SyncStatus is the observed state of one savedata pair.
type SyncStatus struct {
	Title       string      `json:"title" yaml:"title"`
	LocalPath   string      `json:"local_path" yaml:"local_path"`
	LocalState  LocalState  `json:"local_state" yaml:"local_state"`
	RemotePath  string      `json:"remote_path" yaml:"remote_path"`
	RemoteState RemoteState `json:"remote_state" yaml:"remote_state"`
}

// String renders the one-line status report.
func (s SyncStatus) String() string {
	return fmt.Sprintf("[%s] %s (%s) <==> %s (%s)",
		s.Title, s.LocalPath, s.LocalState, s.RemotePath, s.RemoteState)
}

// Synced reports whether the pair is linked and the remote holds content.
func (s SyncStatus) Synced() bool {
	return s.LocalState == LocalValidLink && s.RemoteState == RemoteEntity
}
