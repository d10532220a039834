// Package surface models the document a menu is rendered into: a tree of
// rectangular elements in cell coordinates, a viewport, host events, and a
// deferred-tick queue for work that needs layout to exist first.
// A Document is driven from a single host event loop and is not safe for
// concurrent use.
package surface
