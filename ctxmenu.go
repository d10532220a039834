// Package ctxmenu renders transient pop-up menus anchored to a target
// element or pointer event on a document surface. At most one menu is open
// at any time; pointer-down elsewhere, resize, and scroll tear it down.
package ctxmenu

import (
	"log/slog"

	"github.com/ctxmenu/ctxmenu/internal/config"
	"github.com/ctxmenu/ctxmenu/internal/display"
	"github.com/ctxmenu/ctxmenu/internal/menu"
	"github.com/ctxmenu/ctxmenu/internal/placement"
	"github.com/ctxmenu/ctxmenu/internal/surface"
)

// Controller composes the menu machinery over one document: attachment
// bookkeeping, the lifecycle manager, and per-element configuration.
type Controller struct {
	doc     *surface.Document
	manager *display.Manager
	logger  *slog.Logger

	defaults config.MenuConfig

	// Side table associating each attached element with its own config
	// copy. Entries are overwritten by a later Attach and otherwise live
	// as long as the element.
	bindings map[*surface.Element]*binding
}

// binding is one element's exclusive menu association.
type binding struct {
	cfg    Config
	items  menu.ItemList
	unbind func()
}

// New creates a controller bound to a document. A nil cfg uses built-in
// defaults; a nil logger uses slog.Default().
func New(doc *surface.Document, cfg *config.Config, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Controller{
		doc:      doc,
		manager:  display.NewManager(doc, logger),
		logger:   logger,
		defaults: cfg.Menu,
		bindings: make(map[*surface.Element]*binding),
	}
}

// Attach normalizes the definition once and binds the configured trigger
// event on every resolved element. Each element gets an independent copy
// of the combined configuration, so mutating one attachment (Enable,
// Disable) never affects another, even from the same source definition.
// Unresolvable targets attach nothing. Returns the number of elements
// attached.
func (c *Controller) Attach(target any, def menu.Definition, opts ...Option) int {
	elements := c.doc.Resolve(target)
	if len(elements) == 0 {
		return 0
	}

	cfg := c.buildConfig(opts)
	normalized := menu.Normalize(def)

	for _, el := range elements {
		c.attachOne(el, cfg, normalized.Clone())
	}

	c.logger.Debug("menu attached",
		"elements", len(elements),
		"trigger", cfg.Trigger,
		"anchor", cfg.Anchor,
		"items", len(normalized),
	)
	return len(elements)
}

func (c *Controller) attachOne(el *surface.Element, cfg Config, items menu.ItemList) {
	if prev, ok := c.bindings[el]; ok {
		prev.unbind()
	}

	b := &binding{cfg: cfg, items: items}
	b.unbind = el.On(cfg.Trigger, func(ev surface.Event) {
		c.open(el, b, ev)
	})
	c.bindings[el] = b
}

// Display opens a menu once, without persisting any binding. The target is
// either an Event (opened at its pointer position) or an element, for
// which a trigger event is synthesized at the element's top-left corner.
// Anything else is a no-op.
func (c *Controller) Display(target any, def menu.Definition, opts ...Option) {
	cfg := c.buildConfig(opts)

	var el *surface.Element
	var ev surface.Event
	switch t := target.(type) {
	case surface.Event:
		el = t.Target
		ev = t
	case *surface.Element:
		if t == nil {
			return
		}
		el = t
		r := t.Rect()
		ev = surface.Event{Name: cfg.Trigger, X: r.Left(), Y: r.Top(), Target: t}
	default:
		return
	}

	b := &binding{cfg: cfg, items: menu.Normalize(def)}
	c.open(el, b, ev)
}

// open runs one trigger: the manager closes any previous menu first, then
// builds and (on the next tick) reveals the new one.
func (c *Controller) open(el *surface.Element, b *binding, ev surface.Event) {
	c.manager.Open(display.OpenRequest{
		Trigger:  el,
		Items:    b.items,
		Data:     b.cfg.Data,
		Anchor:   placement.ParseAnchor(b.cfg.Anchor),
		OffsetX:  b.cfg.OffsetX,
		OffsetY:  b.cfg.OffsetY,
		PointerX: ev.X,
		PointerY: ev.Y,
	})
}

// Enable re-enables the named item on every resolved element's attachment.
// Unknown elements and unknown keys are no-ops. An already-open menu was
// built from a snapshot and is unaffected until the next open.
func (c *Controller) Enable(target any, key string) {
	c.setEnabled(target, key, true)
}

// Disable disables the named item on every resolved element's attachment.
func (c *Controller) Disable(target any, key string) {
	c.setEnabled(target, key, false)
}

func (c *Controller) setEnabled(target any, key string, enabled bool) {
	for _, el := range c.doc.Resolve(target) {
		b, ok := c.bindings[el]
		if !ok {
			continue
		}
		if item := b.items.Find(key); item != nil {
			item.Enabled = enabled
		}
	}
}

// Close tears down the open menu, if any. Idempotent.
func (c *Controller) Close() {
	c.manager.Close()
}

// IsOpen reports whether a menu is currently open.
func (c *Controller) IsOpen() bool {
	return c.manager.IsOpen()
}

// OnClose registers a callback invoked after each menu teardown with the
// menu's id and the reason it went away.
func (c *Controller) OnClose(cb CloseCallback) {
	c.manager.SetCloseCallback(cb)
}

func (c *Controller) buildConfig(opts []Option) Config {
	cfg := Config{
		Trigger: c.defaults.Trigger,
		Anchor:  c.defaults.Anchor,
		OffsetX: c.defaults.OffsetX,
		OffsetY: c.defaults.OffsetY,
	}
	if cfg.Trigger == "" {
		cfg.Trigger = config.DefaultTrigger
	}
	if cfg.Anchor == "" {
		cfg.Anchor = config.DefaultAnchor
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
