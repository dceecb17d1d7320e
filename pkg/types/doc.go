// Package types defines the core types and interfaces used throughout sdsync.
// This includes the FS interface the operator works against and the small
// state space (LocalState crossed with RemoteState) the decision table is
// keyed on.
package types
