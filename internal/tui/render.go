// Package tui hosts a surface document in a Bubble Tea program: it renders
// the element tree with lipgloss, composites the open menu on top, and
// translates terminal events into surface events.
package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/ctxmenu/ctxmenu/internal/display"
	"github.com/ctxmenu/ctxmenu/internal/surface"
	"github.com/ctxmenu/ctxmenu/internal/theme"
)

// Renderer draws a document. Non-menu elements are drawn as plain text so
// the overlay splice can treat base lines as unstyled cell columns; only
// the menu popup carries ANSI styling.
type Renderer struct {
	mu sync.RWMutex
	th *theme.Theme
}

// NewRenderer creates a renderer using the given theme.
func NewRenderer(th *theme.Theme) *Renderer {
	return &Renderer{th: th}
}

// SetTheme swaps the active theme. Safe to call from the hot-reload
// watcher goroutine.
func (r *Renderer) SetTheme(th *theme.Theme) {
	r.mu.Lock()
	r.th = th
	r.mu.Unlock()
}

func (r *Renderer) theme() *theme.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.th
}

// MenuView renders a menu container: one styled line per row, framed by
// the theme's menu style.
func (r *Renderer) MenuView(container *surface.Element) string {
	th := r.theme()
	rows := container.Children()

	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.Content()); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		style := th.Item
		if row.HasClass(display.ClassItemDisabled) {
			style = th.ItemDisabled
		}
		lines = append(lines, style.Width(width).Render(row.Content()))
	}

	return th.Menu.Render(strings.Join(lines, "\n"))
}

// Measure implements surface.Measurer. Menu containers are measured by
// rendering them; everything else reports its laid-out rect.
func (r *Renderer) Measure(el *surface.Element) (width, height int) {
	if el.HasClass(display.ClassMenu) {
		view := r.MenuView(el)
		return lipgloss.Width(view), lipgloss.Height(view)
	}
	rect := el.Rect()
	return rect.Width, rect.Height
}

// View renders the whole document: the plain base grid first, then every
// visible menu container overlaid at its placed position.
func (r *Renderer) View(doc *surface.Document) string {
	w, h := doc.Viewport()
	grid := newGrid(w, h)

	for _, el := range doc.Root().Children() {
		if el.HasClass(display.ClassMenu) {
			continue
		}
		paint(grid, el)
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}

	for _, container := range doc.ElementsByClass(display.ClassMenu) {
		if !container.Visible() {
			continue
		}
		rect := container.Rect()
		lines = overlay(lines, r.MenuView(container), rect.X, rect.Y)
	}

	return strings.Join(lines, "\n")
}

func newGrid(w, h int) [][]rune {
	grid := make([][]rune, h)
	for i := range grid {
		row := make([]rune, w)
		for j := range row {
			row[j] = ' '
		}
		grid[i] = row
	}
	return grid
}

// paint writes an element's content into the grid at its rect, one content
// line per cell row, clipped to the rect's height and the grid bounds, then
// paints its children.
func paint(grid [][]rune, el *surface.Element) {
	if !el.Visible() {
		return
	}
	rect := el.Rect()
	for i, line := range strings.Split(el.Content(), "\n") {
		if i >= rect.Height {
			break
		}
		y := rect.Y + i
		if y < 0 || y >= len(grid) {
			continue
		}
		row := grid[y]
		x := rect.X
		for _, r := range line {
			if x < 0 || x >= len(row) {
				break
			}
			row[x] = r
			x++
		}
	}
	for _, child := range el.Children() {
		paint(grid, child)
	}
}

// overlay splices a rendered block over base lines at (x, y). Base lines
// must be plain text; the spliced block may carry ANSI sequences.
func overlay(base []string, view string, x, y int) []string {
	out := make([]string, len(base))
	copy(out, base)

	for i, line := range strings.Split(view, "\n") {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}
		out[row] = spliceLine(out[row], line, x)
	}
	return out
}

func spliceLine(base, seg string, x int) string {
	runes := []rune(base)
	if x < 0 {
		x = 0
	}
	if x > len(runes) {
		x = len(runes)
	}

	left := string(runes[:x])
	end := x + lipgloss.Width(seg)
	right := ""
	if end < len(runes) {
		right = string(runes[end:])
	}
	return left + seg + right
}
