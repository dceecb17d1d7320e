// Package config handles configuration management for sdsync.
// It layers the embedded defaults, the user's config.toml, SDSYNC_*
// environment variables and the legacy sdsync_remote_dir variable, in that
// order, and resolves the remote base directory to an absolute path.
package config
