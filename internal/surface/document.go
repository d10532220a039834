package surface

import (
	"log/slog"
	"unicode/utf8"
)

// Measurer reports the rendered size of an element. Hosts install one that
// reflects their actual layout; the default estimates from content.
type Measurer func(el *Element) (width, height int)

// Document is the root of an element tree plus the host-facing machinery:
// viewport size, document-level event subscriptions, and a deferred-tick
// queue. Work queued with NextTick runs when the host next flushes, after
// the current layout pass.
type Document struct {
	logger *slog.Logger

	root   *Element
	width  int
	height int

	subs     map[string][]*handlerEntry
	ticks    []func()
	measurer Measurer
}

// NewDocument creates a document with the given viewport size.
func NewDocument(width, height int, logger *slog.Logger) *Document {
	if logger == nil {
		logger = slog.Default()
	}
	root := NewElement("root")
	root.SetRect(Rect{Width: width, Height: height})
	return &Document{
		logger: logger,
		root:   root,
		width:  width,
		height: height,
		subs:   make(map[string][]*handlerEntry),
	}
}

// Root returns the document's root element.
func (d *Document) Root() *Element { return d.root }

// Viewport returns the current viewport size.
func (d *Document) Viewport() (width, height int) {
	return d.width, d.height
}

// SetViewport resizes the viewport and emits a resize event.
func (d *Document) SetViewport(width, height int) {
	if width == d.width && height == d.height {
		return
	}
	d.width = width
	d.height = height
	d.root.SetRect(Rect{Width: width, Height: height})
	d.Dispatch(Event{Name: EventResize})
}

// Insert appends an element to the document root.
func (d *Document) Insert(el *Element) {
	d.root.AppendChild(el)
}

// Remove detaches an element from wherever it is attached. Detached
// elements are ignored.
func (d *Document) Remove(el *Element) {
	el.Detach()
}

// Attached reports whether the element is reachable from the document root.
func (d *Document) Attached(el *Element) bool {
	for cur := el; cur != nil; cur = cur.parent {
		if cur == d.root {
			return true
		}
	}
	return false
}

// ElementByID returns the first element with the given id in document
// order, or nil.
func (d *Document) ElementByID(id string) *Element {
	var found *Element
	d.root.walk(func(e *Element) {
		if found == nil && e.id == id {
			found = e
		}
	})
	return found
}

// ElementsByClass returns every element carrying the class, in document
// order.
func (d *Document) ElementsByClass(class string) []*Element {
	var out []*Element
	d.root.walk(func(e *Element) {
		if e.HasClass(class) {
			out = append(out, e)
		}
	})
	return out
}

// ElementsByTag returns every element with the tag, in document order.
func (d *Document) ElementsByTag(tag string) []*Element {
	var out []*Element
	d.root.walk(func(e *Element) {
		if e.tag == tag {
			out = append(out, e)
		}
	})
	return out
}

// ElementAt returns the deepest visible element at (x, y), or nil.
func (d *Document) ElementAt(x, y int) *Element {
	hit := d.root.ElementAt(x, y)
	if hit == d.root {
		return nil
	}
	return hit
}

// On registers a document-level handler for the named event. The returned
// function removes the registration; calling it more than once is harmless.
func (d *Document) On(name string, h Handler) func() {
	entry := &handlerEntry{fn: h}
	d.subs[name] = append(d.subs[name], entry)
	return func() {
		entry.removed = true
		hs := d.subs[name]
		for i, cand := range hs {
			if cand == entry {
				d.subs[name] = append(hs[:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers an event that has no pointer position, such as resize
// or scroll, to document-level handlers only.
func (d *Document) Dispatch(ev Event) {
	d.emitDocument(ev)
}

// DispatchAt delivers a pointer event. The deepest visible element at the
// position receives it first, then its ancestors, then document-level
// handlers. Element handlers therefore always observe the event before any
// dismissal subscription does.
func (d *Document) DispatchAt(name string, x, y int) {
	ev := Event{Name: name, X: x, Y: y}
	if target := d.ElementAt(x, y); target != nil {
		ev.Target = target
		for cur := target; cur != nil && cur != d.root; cur = cur.parent {
			cur.emit(ev)
		}
	}
	d.emitDocument(ev)
}

func (d *Document) emitDocument(ev Event) {
	hs := d.subs[ev.Name]
	if len(hs) == 0 {
		return
	}
	snapshot := make([]*handlerEntry, len(hs))
	copy(snapshot, hs)
	for _, entry := range snapshot {
		if entry.removed {
			continue
		}
		entry.fn(ev)
	}
}

// NextTick queues fn to run on the next flush. There is no cancellation;
// queued work must guard against state that changed in between.
func (d *Document) NextTick(fn func()) {
	d.ticks = append(d.ticks, fn)
}

// FlushTicks runs and clears the queued tick functions. Work queued while
// flushing runs on the following flush.
func (d *Document) FlushTicks() {
	pending := d.ticks
	d.ticks = nil
	for _, fn := range pending {
		fn()
	}
}

// SetMeasurer installs the host's element measurer.
func (d *Document) SetMeasurer(m Measurer) {
	d.measurer = m
}

// Measure returns the rendered size of an element. Without a host measurer
// the size is estimated from content: the widest child line in runes plus a
// one-cell frame on each side, one row per child.
func (d *Document) Measure(el *Element) (width, height int) {
	if d.measurer != nil {
		return d.measurer(el)
	}
	maxw := utf8.RuneCountInString(el.Content())
	rows := 0
	for _, c := range el.Children() {
		rows++
		if w := utf8.RuneCountInString(c.Content()); w > maxw {
			maxw = w
		}
	}
	if rows == 0 {
		rows = 1
	}
	return maxw + 2, rows + 2
}
