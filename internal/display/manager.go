package display

import (
	"log/slog"

	"github.com/ctxmenu/ctxmenu/internal/menu"
	"github.com/ctxmenu/ctxmenu/internal/placement"
	"github.com/ctxmenu/ctxmenu/internal/surface"
)

// State is the lifecycle state of the manager.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// CloseReason records why a menu went away.
type CloseReason string

const (
	CloseReasonExplicit  CloseReason = "explicit"  // Close() call
	CloseReasonDismissed CloseReason = "dismissed" // pointer-down elsewhere
	CloseReasonResize    CloseReason = "resize"
	CloseReasonScroll    CloseReason = "scroll"
	CloseReasonReplaced  CloseReason = "replaced" // a new menu opened
	CloseReasonSelected  CloseReason = "selected" // an item was chosen
)

// CloseCallback is invoked after a menu has been torn down.
type CloseCallback func(menuID string, reason CloseReason)

// OpenRequest carries everything needed to open one menu.
type OpenRequest struct {
	Trigger  *surface.Element
	Items    menu.ItemList
	Data     any
	Anchor   placement.Anchor
	OffsetX  int
	OffsetY  int
	PointerX int
	PointerY int
}

// Manager is the single source of truth for "is a menu open". It owns the
// one open popup, the three global dismissal subscriptions, and guarantees
// idempotent close. Only the manager mutates this state.
type Manager struct {
	doc    *surface.Document
	logger *slog.Logger

	state   State
	current *Popup
	unsubs  []func()

	onClose CloseCallback
}

// NewManager creates a lifecycle manager bound to one document.
func NewManager(doc *surface.Document, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		doc:    doc,
		logger: logger,
		state:  StateClosed,
	}
}

// SetCloseCallback sets the callback invoked after each close.
func (m *Manager) SetCloseCallback(cb CloseCallback) {
	m.onClose = cb
}

// IsOpen reports whether a menu is currently open.
func (m *Manager) IsOpen() bool {
	return m.state == StateOpen
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// Open tears down any existing menu, then builds the new one and inserts
// it hidden. Measurement, placement, and reveal run on the document's next
// tick, once the container exists in the layout tree. The close-then-open
// sequence is strict and synchronous: no second menu is ever visible
// before the first is gone.
func (m *Manager) Open(req OpenRequest) {
	m.closeWith(CloseReasonReplaced)

	var popup *Popup
	popup = newPopup(req.Trigger, req.Items, req.Data, func() {
		// Close only the popup the selection came from. A select handler
		// may itself have opened a new menu; that one must survive.
		if m.current == popup {
			m.closeWith(CloseReasonSelected)
		}
	}, m.logger)

	m.doc.Insert(popup.Container())
	m.current = popup
	m.state = StateOpen

	m.doc.NextTick(func() {
		m.placeAndReveal(popup, req)
	})

	m.logger.Debug("menu opened",
		"menu_id", popup.ID(),
		"anchor", string(req.Anchor),
		"items", len(req.Items),
	)
}

// placeAndReveal is the deferred half of Open. The popup may have been
// closed before the tick ran; in that case this is a guarded no-op.
func (m *Manager) placeAndReveal(popup *Popup, req OpenRequest) {
	if m.current != popup || !m.doc.Attached(popup.Container()) {
		m.logger.Debug("skipping placement of closed menu", "menu_id", popup.ID())
		return
	}

	width, height := m.doc.Measure(popup.Container())
	viewW, viewH := m.doc.Viewport()

	var target surface.Rect
	if req.Trigger != nil {
		target = req.Trigger.Rect()
	}

	x, y := placement.Place(placement.Inputs{
		Anchor:   req.Anchor,
		PointerX: req.PointerX,
		PointerY: req.PointerY,
		Target:   target,
		MenuW:    width,
		MenuH:    height,
		OffsetX:  req.OffsetX,
		OffsetY:  req.OffsetY,
		ViewW:    viewW,
		ViewH:    viewH,
	})

	popup.Reveal(x, y, width, height)
	m.registerDismissals()

	m.logger.Debug("menu revealed",
		"menu_id", popup.ID(),
		"x", x, "y", y,
		"width", width, "height", height,
	)
}

// registerDismissals subscribes the three global teardown triggers. Each
// registration is paired with removal in closeWith so repeated open/close
// cycles never leak handlers.
func (m *Manager) registerDismissals() {
	m.unsubs = append(m.unsubs,
		m.doc.On(surface.EventPointerDown, func(ev surface.Event) {
			// Pointer-down inside the open menu is not a dismissal: row
			// handlers decide what happens there, and a click on a
			// disabled row must be inert.
			if m.current != nil && ev.Target != nil && m.current.Contains(ev.Target) {
				return
			}
			m.closeWith(CloseReasonDismissed)
		}),
		m.doc.On(surface.EventResize, func(surface.Event) {
			m.closeWith(CloseReasonResize)
		}),
		m.doc.On(surface.EventScroll, func(surface.Event) {
			m.closeWith(CloseReasonScroll)
		}),
	)
}

// Close tears down the open menu. Calling it when nothing is open is a
// no-op.
func (m *Manager) Close() {
	m.closeWith(CloseReasonExplicit)
}

// closeWith removes the dismissal subscriptions and sweeps every container
// carrying the menu class out of the document. There should be exactly one,
// but the sweep removes any strays too.
func (m *Manager) closeWith(reason CloseReason) {
	if m.state == StateClosed {
		return
	}

	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil

	for _, el := range m.doc.ElementsByClass(ClassMenu) {
		m.doc.Remove(el)
	}

	popup := m.current
	m.current = nil
	m.state = StateClosed

	id := ""
	if popup != nil {
		id = popup.ID()
	}
	m.logger.Debug("menu closed", "menu_id", id, "reason", string(reason))

	if m.onClose != nil {
		m.onClose(id, reason)
	}
}
