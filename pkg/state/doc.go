// Package state classifies the two sides of a savedata pair.
//
// The local side is one of four states (invalid_link, valid_link, entity,
// empty), the remote side one of two (entity, empty). Classification is
// based purely on existence and on the link target string; content and
// timestamps are never looked at.
//
// Link targets are compared verbatim. A link to an equivalent path spelled
// differently (relative, with a trailing slash, through another symlink)
// is an invalid_link. Existing links created by earlier versions of the
// tool rely on this, so the comparison must not be relaxed.
package state
