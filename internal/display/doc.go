// Package display builds menu popups and owns their lifecycle: the single
// currently-open menu, the global dismissal subscriptions, and the
// build-measure-place-reveal protocol.
package display
