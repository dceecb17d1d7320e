package types

import (
	"fmt"
)

// LocalState classifies what sits at the local savedata path.
type LocalState int

const (
	// LocalInvalidLink is a symlink whose stored target is not the expected remote path.
	LocalInvalidLink LocalState = iota
	// LocalValidLink is a symlink whose stored target equals the expected remote path.
	LocalValidLink
	// LocalEntity is a real file or directory.
	LocalEntity
	// LocalEmpty means nothing exists at the path.
	LocalEmpty
)

// AllLocalStates lists every LocalState in table row order.
var AllLocalStates = []LocalState{LocalInvalidLink, LocalValidLink, LocalEntity, LocalEmpty}

var localStateNames = map[LocalState]string{
	LocalInvalidLink: "invalid_link",
	LocalValidLink:   "valid_link",
	LocalEntity:      "entity",
	LocalEmpty:       "empty",
}

func (s LocalState) String() string {
	if name, ok := localStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("LocalState(%d)", int(s))
}

// IsLink reports whether the local path is a symlink of either kind.
func (s LocalState) IsLink() bool {
	return s == LocalInvalidLink || s == LocalValidLink
}

// MarshalText implements encoding.TextMarshaler
func (s LocalState) MarshalText() ([]byte, error) {
	if _, ok := localStateNames[s]; !ok {
		return nil, fmt.Errorf("unknown local state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *LocalState) UnmarshalText(text []byte) error {
	for state, name := range localStateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown local state %q", string(text))
}

// RemoteState classifies the remote savedata path. Remote paths are never
// treated as links.
type RemoteState int

const (
	// RemoteEntity means something exists at the remote path.
	RemoteEntity RemoteState = iota
	// RemoteEmpty means nothing exists at the remote path.
	RemoteEmpty
)

// AllRemoteStates lists every RemoteState in table column order.
var AllRemoteStates = []RemoteState{RemoteEntity, RemoteEmpty}

var remoteStateNames = map[RemoteState]string{
	RemoteEntity: "entity",
	RemoteEmpty:  "empty",
}

func (s RemoteState) String() string {
	if name, ok := remoteStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("RemoteState(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler
func (s RemoteState) MarshalText() ([]byte, error) {
	if _, ok := remoteStateNames[s]; !ok {
		return nil, fmt.Errorf("unknown remote state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *RemoteState) UnmarshalText(text []byte) error {
	for state, name := range remoteStateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown remote state %q", string(text))
}
