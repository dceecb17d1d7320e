// Package operator implements the sync decisions for a single savedata pair.
//
// An Operator is bound to a title and a remote base directory. Each
// operation (put, get, cut, status) takes a local path and a remote
// filename, classifies both sides with pkg/state, looks the pair up in the
// decision table (Decide) and applies the resulting Action:
//
//   - put publishes local content to the remote and leaves a link behind
//   - get replaces the local path with a link to the remote content
//   - cut swaps the link for a private copy of the remote content
//   - status reports the classified pair and never mutates anything
//
// Refusals are returned as coded errors from pkg/errors and are never
// retried. The only guard against overwriting content is the force flag,
// which put and get consult when the local side is a real entity.
//
// Operations are single-shot and unsynchronized. Two processes working on
// the same (title, filename) pair at once may race.
package operator
