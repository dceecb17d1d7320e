// Package paths provides centralized path handling for sdsync.
//
// It covers two unrelated concerns that both boil down to "where does a
// file live":
//
//   - The remote layout. Every savedata is stored at
//     remoteBase/title/filename. RemotePath computes that string without
//     touching the filesystem, and EnsureNamespace creates the per-title
//     directory under an existing remote base.
//   - The tool's own files. The config file and the log file live in XDG
//     directories, resolved with github.com/adrg/xdg.
//
// # Environment Variables
//
//   - SDSYNC_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/sdsync)
//   - SDSYNC_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/sdsync)
//
// The remote base directory itself is never read from the environment here;
// that defaulting belongs to pkg/config.
package paths
