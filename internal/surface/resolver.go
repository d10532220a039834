package surface

import "strings"

// Resolve turns a target into a uniform element list. Accepted inputs:
//
//   - a selector string: "#id", ".class", or a bare tag name, resolved in
//     document order;
//   - a single *Element;
//   - an existing []*Element, returned as a copy.
//
// Anything else resolves to an empty list rather than an error.
func (d *Document) Resolve(target any) []*Element {
	switch t := target.(type) {
	case string:
		return d.resolveSelector(t)
	case *Element:
		if t == nil {
			return nil
		}
		return []*Element{t}
	case []*Element:
		out := make([]*Element, len(t))
		copy(out, t)
		return out
	default:
		return nil
	}
}

func (d *Document) resolveSelector(sel string) []*Element {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return nil
	}
	switch {
	case strings.HasPrefix(sel, "#"):
		if el := d.ElementByID(sel[1:]); el != nil {
			return []*Element{el}
		}
		return nil
	case strings.HasPrefix(sel, "."):
		return d.ElementsByClass(sel[1:])
	default:
		return d.ElementsByTag(sel)
	}
}
