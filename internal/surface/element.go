package surface

// Handler processes an event delivered to an element or the document.
type Handler func(ev Event)

// Event is a host event routed through the document. Pointer events carry
// document coordinates; resize and scroll events carry none.
type Event struct {
	Name   string
	X      int
	Y      int
	Target *Element
}

// Common event names. Trigger events are arbitrary strings chosen by the
// caller; these three are the ones the document itself emits.
const (
	EventPointerDown = "pointerdown"
	EventResize      = "resize"
	EventScroll      = "scroll"
)

// Element is a node in the document tree. Elements are created detached and
// become part of the document once appended to an attached parent.
type Element struct {
	id       string
	tag      string
	classes  []string
	attrs    map[string]string
	content  string
	rect     Rect
	visible  bool
	parent   *Element
	children []*Element
	handlers map[string][]*handlerEntry
}

// handlerEntry wraps a handler so registrations can be removed by identity.
// The removed flag keeps an in-flight dispatch from invoking a handler that
// was unregistered by an earlier handler of the same event.
type handlerEntry struct {
	fn      Handler
	removed bool
}

// NewElement creates a detached, visible element with the given tag.
func NewElement(tag string) *Element {
	return &Element{
		tag:     tag,
		visible: true,
	}
}

// ID returns the element's identifier, empty if unset.
func (e *Element) ID() string { return e.id }

// SetID sets the element's identifier.
func (e *Element) SetID(id string) { e.id = id }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// AddClass adds a class to the element if not already present.
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
}

// RemoveClass removes a class from the element.
func (e *Element) RemoveClass(class string) {
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the element carries the given class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the element's classes in the order they were added.
func (e *Element) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// SetAttr sets an attribute on the element.
func (e *Element) SetAttr(key, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[key] = value
}

// Attr returns the value of an attribute, empty if unset.
func (e *Element) Attr(key string) string {
	return e.attrs[key]
}

// Content returns the element's display content. Content is raw markup
// passed through untouched; callers are trusted to supply safe text.
func (e *Element) Content() string { return e.content }

// SetContent sets the element's display content.
func (e *Element) SetContent(content string) { e.content = content }

// Rect returns the element's bounding rectangle.
func (e *Element) Rect() Rect { return e.rect }

// SetRect sets the element's bounding rectangle.
func (e *Element) SetRect(r Rect) { e.rect = r }

// Move repositions the element without changing its size.
func (e *Element) Move(x, y int) {
	e.rect.X = x
	e.rect.Y = y
}

// Visible reports whether the element is revealed. Hidden elements stay in
// the tree and remain measurable.
func (e *Element) Visible() bool { return e.visible }

// SetVisible reveals or hides the element.
func (e *Element) SetVisible(v bool) { e.visible = v }

// Parent returns the element's parent, nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children in insertion order.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild attaches a child to the element. A child already attached
// elsewhere is detached first.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches a child from the element. Unknown children are
// ignored.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Detach removes the element from its parent, if any.
func (e *Element) Detach() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// On registers a handler for the named event on this element. The returned
// function removes exactly that registration.
func (e *Element) On(name string, h Handler) func() {
	if e.handlers == nil {
		e.handlers = make(map[string][]*handlerEntry)
	}
	entry := &handlerEntry{fn: h}
	e.handlers[name] = append(e.handlers[name], entry)
	return func() {
		entry.removed = true
		hs := e.handlers[name]
		for i, cand := range hs {
			if cand == entry {
				e.handlers[name] = append(hs[:i], hs[i+1:]...)
				return
			}
		}
	}
}

// HasHandler reports whether any handler is registered for the named event.
func (e *Element) HasHandler(name string) bool {
	return len(e.handlers[name]) > 0
}

// emit invokes the element's handlers for the event, if any. The handler
// slice is copied first so a handler may unregister itself; registrations
// removed mid-dispatch are skipped.
func (e *Element) emit(ev Event) {
	hs := e.handlers[ev.Name]
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

// ElementAt finds the deepest visible element containing (x, y), or nil.
// Children are checked in reverse order since later children render on top.
func (e *Element) ElementAt(x, y int) *Element {
	if !e.visible || !e.rect.Contains(x, y) {
		return nil
	}
	for i := len(e.children) - 1; i >= 0; i-- {
		if hit := e.children[i].ElementAt(x, y); hit != nil {
			return hit
		}
	}
	return e
}

// walk calls fn for the element and every descendant, depth first in
// document order.
func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.walk(fn)
	}
}
