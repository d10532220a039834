package menu

import "github.com/ctxmenu/ctxmenu/internal/surface"

// SelectFunc is invoked when an enabled item is chosen. It receives the
// element that triggered the menu, the item key, the row element that was
// selected, and the auxiliary data configured for the attachment.
type SelectFunc func(trigger *surface.Element, key string, row *surface.Element, data any)

// Item is a fully-populated menu item. Raw definitions are normalized to
// this shape before any use.
type Item struct {
	Key      string
	Label    string // raw markup, passed through untouched
	Title    string // tooltip text, optional
	Enabled  bool
	OnSelect SelectFunc
}

// EntrySpec is the value side of a raw definition entry. Exactly three
// variants exist: a bare Callback, a partial Options record, or nil, which
// stands for a disabled label-only placeholder using the key as label.
type EntrySpec interface {
	entrySpec()
}

// Callback is the bare-handler variant: an enabled item labeled by its key.
type Callback SelectFunc

func (Callback) entrySpec() {}

// Options is the partial-record variant. Zero fields fall back to
// defaults: Label to the key, Title to empty, Enabled to true, OnSelect to
// a no-op.
type Options struct {
	Label    string
	Title    string
	Enabled  *bool
	OnSelect SelectFunc
}

func (Options) entrySpec() {}

// Entry is one key of a raw menu definition.
type Entry struct {
	Key  string
	Spec EntrySpec
}

// Definition is a raw, ordered menu definition as supplied by callers.
type Definition []Entry

// Do wraps a select handler as an entry spec.
func Do(fn SelectFunc) EntrySpec {
	return Callback(fn)
}

// Bool is a convenience for the Options.Enabled pointer field.
func Bool(v bool) *bool {
	return &v
}
