package menu

import "github.com/ctxmenu/ctxmenu/internal/surface"

// noop is the select handler assigned to items that have none.
var noop SelectFunc = func(_ *surface.Element, _ string, _ *surface.Element, _ any) {}

// ItemList is a normalized menu definition in presentation order.
type ItemList []*Item

// Normalize converts a raw definition into a fully-populated item list.
// Every output item has a label (the key by default), a Title, an Enabled
// flag (true by default, always false for a nil spec), and a callable
// OnSelect. A duplicate key overwrites the earlier entry's value but keeps
// its original position. The result shares no mutable state with the input
// or with other Normalize results from the same definition.
func Normalize(def Definition) ItemList {
	items := make(ItemList, 0, len(def))
	index := make(map[string]int, len(def))

	for _, entry := range def {
		item := normalizeEntry(entry)
		if pos, seen := index[entry.Key]; seen {
			items[pos] = item
			continue
		}
		index[entry.Key] = len(items)
		items = append(items, item)
	}
	return items
}

func normalizeEntry(entry Entry) *Item {
	item := &Item{
		Key:      entry.Key,
		Label:    entry.Key,
		Enabled:  true,
		OnSelect: noop,
	}

	switch spec := entry.Spec.(type) {
	case nil:
		// Label-only placeholder: shown but never selectable.
		item.Enabled = false
	case Callback:
		if spec != nil {
			item.OnSelect = SelectFunc(spec)
		}
	case Options:
		if spec.Label != "" {
			item.Label = spec.Label
		}
		item.Title = spec.Title
		if spec.Enabled != nil {
			item.Enabled = *spec.Enabled
		}
		if spec.OnSelect != nil {
			item.OnSelect = spec.OnSelect
		}
	}
	return item
}

// Clone returns an independent copy of the list. Mutating an item in the
// copy, such as flipping Enabled, never affects the original.
func (l ItemList) Clone() ItemList {
	out := make(ItemList, len(l))
	for i, item := range l {
		dup := *item
		out[i] = &dup
	}
	return out
}

// Find returns the item with the given key, or nil.
func (l ItemList) Find(key string) *Item {
	for _, item := range l {
		if item.Key == key {
			return item
		}
	}
	return nil
}
