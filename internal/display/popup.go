package display

import (
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ctxmenu/ctxmenu/internal/menu"
	"github.com/ctxmenu/ctxmenu/internal/surface"
)

// The three class identifiers that make up the visual contract. Styling is
// owned by a theme; the core only applies the classes consistently.
const (
	ClassMenu         = "ctx-menu"
	ClassItem         = "ctx-menu-item"
	ClassItemDisabled = "ctx-menu-item-disabled"
)

// Popup is one built menu instance: the container element and its rows.
// It is created hidden and revealed only after measurement and placement.
type Popup struct {
	id        string
	container *surface.Element
	rows      []*surface.Element
	trigger   *surface.Element
	logger    *slog.Logger
}

// newPopup builds the container and one row per item, in definition order,
// and wires select handlers onto enabled rows. onSelected runs after an
// item's own callback. The container is not yet inserted anywhere.
func newPopup(trigger *surface.Element, items menu.ItemList, data any, onSelected func(), logger *slog.Logger) *Popup {
	if logger == nil {
		logger = slog.Default()
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		// Falls back to a monotonic-less ULID; identity is only used for
		// logging and element ids.
		id = ulid.Make()
	}

	container := surface.NewElement("menu")
	container.SetID("ctx-menu-" + id.String())
	container.AddClass(ClassMenu)
	container.SetVisible(false)

	p := &Popup{
		id:        id.String(),
		container: container,
		trigger:   trigger,
		logger:    logger,
	}

	for _, item := range items {
		row := p.buildRow(item, data, onSelected)
		container.AppendChild(row)
		p.rows = append(p.rows, row)
	}
	return p
}

// buildRow creates a row element for one item. Disabled rows carry the
// disabled class and get no handler, so clicks on them are inert.
func (p *Popup) buildRow(item *menu.Item, data any, onSelected func()) *surface.Element {
	row := surface.NewElement("menuitem")
	row.AddClass(ClassItem)
	row.SetContent(item.Label)
	if item.Title != "" {
		row.SetAttr("title", item.Title)
	}

	if !item.Enabled {
		row.AddClass(ClassItemDisabled)
		return row
	}

	key := item.Key
	onSelect := item.OnSelect
	row.On(surface.EventPointerDown, func(ev surface.Event) {
		p.logger.Debug("menu item selected", "menu_id", p.id, "key", key)
		onSelect(p.trigger, key, row, data)
		onSelected()
	})
	return row
}

// ID returns the popup's ULID string.
func (p *Popup) ID() string { return p.id }

// Contains reports whether el is the container or one of its descendants.
func (p *Popup) Contains(el *surface.Element) bool {
	for cur := el; cur != nil; cur = cur.Parent() {
		if cur == p.container {
			return true
		}
	}
	return false
}

// Container returns the popup's container element.
func (p *Popup) Container() *surface.Element { return p.container }

// Reveal positions the container, lays the rows out inside its frame, and
// makes the popup visible. The frame is owned by the theme and may be
// absent, so the inset is derived from the measured height rather than
// assumed: whatever the measurer reported beyond one cell per row is frame.
func (p *Popup) Reveal(x, y, width, height int) {
	p.container.SetRect(surface.Rect{X: x, Y: y, Width: width, Height: height})

	inset := 0
	if n := len(p.rows); n > 0 {
		inset = (height - n) / 2
		if inset < 0 {
			inset = 0
		}
	}

	for i, row := range p.rows {
		row.SetRect(surface.Rect{
			X:      x + inset,
			Y:      y + inset + i,
			Width:  width - 2*inset,
			Height: 1,
		})
	}
	p.container.SetVisible(true)
}
