// Package contracts defines the interfaces for ctxmenu.
// This file serves as documentation and is not compiled.
// Actual implementations live in internal/ packages.
package contracts

// =============================================================================
// Surface Types
// =============================================================================

// Rect is a bounding rectangle in cell coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Event is a host event routed through the document.
// Pointer events carry document coordinates; resize and scroll do not.
type Event struct {
	Name   string
	X      int
	Y      int
	Target Element
}

// Element is a node in the document tree.
type Element interface {
	// ID returns the element identifier, empty if unset.
	ID() string

	// HasClass reports whether the element carries the given class.
	HasClass(class string) bool

	// Rect returns the element's bounding rectangle.
	Rect() Rect

	// On registers a handler for the named event.
	// The returned function removes exactly that registration.
	On(name string, h func(Event)) (unsubscribe func())
}

// Document is the root of an element tree plus host-facing machinery:
// viewport size, document-level subscriptions, and a deferred-tick queue.
type Document interface {
	// Viewport returns the current viewport size.
	Viewport() (width, height int)

	// Resolve turns a target into a uniform element list.
	// Accepts "#id", ".class", or tag selectors, a single element,
	// or an element slice. Anything else resolves to an empty list.
	Resolve(target any) []Element

	// On registers a document-level handler for the named event.
	On(name string, h func(Event)) (unsubscribe func())

	// DispatchAt delivers a pointer event: deepest element first,
	// then its ancestors, then document-level handlers.
	DispatchAt(name string, x, y int)

	// NextTick queues fn to run on the host's next flush, after the
	// current layout pass. Queued work must guard against state that
	// changed in between; there is no cancellation.
	NextTick(fn func())

	// Measure returns the rendered size of an element.
	Measure(el Element) (width, height int)
}

// =============================================================================
// Menu Definition
// =============================================================================

// SelectFunc handles one item selection: the attached trigger element,
// the selected key, the row element, and the attachment's data payload.
type SelectFunc func(trigger Element, key string, row Element, data any)

// Item is one fully-normalized menu entry.
// Every item has a label (the key by default), an enabled flag
// (true by default, always false for a nil spec), and a callable
// select handler.
type Item struct {
	Key      string
	Label    string
	Title    string
	Enabled  bool
	OnSelect SelectFunc
}

// Normalizer converts a raw definition into an item list.
// A duplicate key overwrites the earlier entry's value but keeps its
// original position. Results share no mutable state with the input or
// with other results from the same definition.
type Normalizer interface {
	Normalize(def any) []*Item
}

// =============================================================================
// Placement
// =============================================================================

// PlacementInputs carries everything the placement computation needs.
type PlacementInputs struct {
	Anchor   string // bottom, top, left, right, pointer
	PointerX int
	PointerY int
	Target   Rect // trigger element bounds (anchored modes)
	MenuW    int
	MenuH    int
	OffsetX  int
	OffsetY  int
	ViewW    int
	ViewH    int
}

// Placer computes the menu's top-left position: the anchor candidate
// first, then per-axis viewport clamping, leading edge before trailing.
type Placer interface {
	Place(in PlacementInputs) (x, y int)
}

// =============================================================================
// Lifecycle
// =============================================================================

// Manager owns the at-most-one-open-menu invariant. Opening closes any
// previous menu first; close is idempotent; dismissal subscriptions
// (pointer-down elsewhere, resize, scroll) are registered on reveal and
// removed on close.
type Manager interface {
	// Open tears down any existing menu, inserts the new one hidden,
	// and defers measurement, placement, and reveal to the next tick.
	Open(trigger Element, items []*Item, data any)

	// Close tears down the open menu. A no-op when nothing is open.
	Close()

	// IsOpen reports whether a menu is currently open.
	IsOpen() bool

	// SetCloseCallback registers a callback invoked after each
	// teardown with the menu id and the reason it went away:
	// explicit, dismissed, resize, scroll, replaced, or selected.
	SetCloseCallback(cb func(menuID string, reason string))
}

// =============================================================================
// Theming
// =============================================================================

// ThemeLoader resolves themes by name, user files shadowing bundled
// ones, falling back to the bundled default.
type ThemeLoader interface {
	Load(name string) any
	Current() any
}

// ThemeWatcher hot-reloads a file-backed theme on change.
// Bundled themes have no file and are never watched.
type ThemeWatcher interface {
	Start() error
	Stop() error
}

// =============================================================================
// Host Interface
// =============================================================================

// Host runs a document inside a terminal program: renders the element
// tree, composites the open menu on top, and translates terminal input
// into surface events.
type Host interface {
	// Run starts the interactive session. Blocks until the user quits.
	Run(doc Document) error
}
