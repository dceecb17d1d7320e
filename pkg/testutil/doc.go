// Package testutil provides utilities for testing sdsync components.
//
// Sync behavior depends on real symlinks, so most tests run against the OS
// filesystem inside t.TempDir(). The helpers here build savedata trees,
// inspect links, and take snapshots of a tree so tests can assert that an
// operation changed nothing. MockFS is a testify mock of types.FS used to
// inject failures in the middle of a transition.
package testutil
