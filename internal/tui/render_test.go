package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctxmenu/ctxmenu/internal/display"
	"github.com/ctxmenu/ctxmenu/internal/menu"
	"github.com/ctxmenu/ctxmenu/internal/placement"
	"github.com/ctxmenu/ctxmenu/internal/surface"
	"github.com/ctxmenu/ctxmenu/internal/theme"
)

// plainTheme keeps rendering free of ANSI escapes so view output can be
// asserted as text.
func plainTheme() *theme.Theme {
	return &theme.Theme{
		Name:         "plain",
		Menu:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Item:         lipgloss.NewStyle(),
		ItemDisabled: lipgloss.NewStyle(),
	}
}

func menuContainer(labels ...string) *surface.Element {
	container := surface.NewElement("menu")
	container.AddClass(display.ClassMenu)
	for _, label := range labels {
		row := surface.NewElement("menuitem")
		row.AddClass(display.ClassItem)
		row.SetContent(label)
		container.AppendChild(row)
	}
	return container
}

func TestRenderer_MenuView(t *testing.T) {
	r := NewRenderer(plainTheme())

	view := r.MenuView(menuContainer("Open", "Delete it"))
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 4, "two rows plus the frame")

	assert.Contains(t, lines[1], "Open")
	assert.Contains(t, lines[2], "Delete it")

	// Rows are padded to the widest label, so the frame is rectangular.
	for _, line := range lines {
		assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(line))
	}
}

func TestRenderer_Measure(t *testing.T) {
	r := NewRenderer(plainTheme())

	container := menuContainer("Open", "Delete it")
	w, h := r.Measure(container)
	assert.Equal(t, lipgloss.Width("Delete it")+2, w)
	assert.Equal(t, 4, h)

	// Non-menu elements report their laid-out rect.
	box := surface.NewElement("box")
	box.SetRect(surface.Rect{Width: 12, Height: 3})
	w, h = r.Measure(box)
	assert.Equal(t, 12, w)
	assert.Equal(t, 3, h)
}

func TestRenderer_ViewOverlaysMenu(t *testing.T) {
	doc := surface.NewDocument(20, 6, nil)

	box := surface.NewElement("box")
	box.SetContent("target")
	box.SetRect(surface.Rect{X: 1, Y: 1, Width: 6, Height: 1})
	doc.Insert(box)

	container := menuContainer("Open")
	container.SetRect(surface.Rect{X: 4, Y: 2, Width: 6, Height: 3})
	container.SetVisible(true)
	doc.Insert(container)

	r := NewRenderer(plainTheme())
	lines := strings.Split(r.View(doc), "\n")
	require.Len(t, lines, 6)

	assert.Contains(t, lines[1], "target")
	assert.Contains(t, lines[3], "Open", "menu body sits over the base grid")
	for _, line := range lines {
		assert.Equal(t, 20, lipgloss.Width(line), "overlay preserves line width")
	}
}

func TestRenderer_ViewPaintsMultiLineContent(t *testing.T) {
	doc := surface.NewDocument(10, 4, nil)

	box := surface.NewElement("box")
	box.SetContent("one\ntwo\nthree")
	box.SetRect(surface.Rect{X: 1, Y: 0, Width: 6, Height: 2})
	doc.Insert(box)

	r := NewRenderer(plainTheme())
	lines := strings.Split(r.View(doc), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "one")
	assert.Contains(t, lines[1], "two")
	assert.NotContains(t, lines[2], "three", "content past the rect height is clipped")
}

func TestRenderer_ViewSkipsHiddenMenu(t *testing.T) {
	doc := surface.NewDocument(10, 3, nil)

	container := menuContainer("Open")
	container.SetRect(surface.Rect{X: 0, Y: 0, Width: 6, Height: 3})
	container.SetVisible(false)
	doc.Insert(container)

	r := NewRenderer(plainTheme())
	assert.NotContains(t, r.View(doc), "Open")
}

func TestRenderer_SetTheme(t *testing.T) {
	r := NewRenderer(plainTheme())

	frameless := plainTheme()
	frameless.Menu = lipgloss.NewStyle()
	r.SetTheme(frameless)

	view := r.MenuView(menuContainer("Open"))
	assert.Equal(t, 1, lipgloss.Height(view), "swapped theme drops the frame")
}

func TestFramelessThemeRowSelection(t *testing.T) {
	doc := surface.NewDocument(40, 12, nil)

	// A theme with no menu border renders row 0 at the container origin.
	// The row hit-rects must land where the rows are drawn.
	th := plainTheme()
	th.Menu = lipgloss.NewStyle()
	r := NewRenderer(th)
	doc.SetMeasurer(r.Measure)

	trigger := surface.NewElement("box")
	trigger.SetRect(surface.Rect{X: 2, Y: 1, Width: 6, Height: 1})
	doc.Insert(trigger)

	selected := false
	items := menu.Normalize(menu.Definition{
		{Key: "open", Spec: menu.Do(func(*surface.Element, string, *surface.Element, any) {
			selected = true
		})},
	})

	m := display.NewManager(doc, nil)
	m.Open(display.OpenRequest{Trigger: trigger, Items: items, Anchor: placement.AnchorBottom})
	doc.FlushTicks()

	container := doc.ElementsByClass(display.ClassMenu)[0]
	rect := container.Rect()
	require.Equal(t, 1, rect.Height, "one row, no frame")

	doc.DispatchAt(surface.EventPointerDown, rect.X, rect.Y)
	assert.True(t, selected, "clicking the rendered row selects it")
	assert.False(t, m.IsOpen())
}

func TestSpliceLine(t *testing.T) {
	base := strings.Repeat(".", 10)

	assert.Equal(t, "..ABC.....", spliceLine(base, "ABC", 2))
	assert.Equal(t, "ABC.......", spliceLine(base, "ABC", -3))
	assert.Equal(t, ".........."+"ABC", spliceLine(base, "ABC", 15))

	// Styled segments consume their visible width from the base.
	styled := "\x1b[1mAB\x1b[0m"
	out := spliceLine(base, styled, 4)
	assert.Contains(t, out, styled)
	assert.Equal(t, 10, lipgloss.Width(out))
}

func TestStatus(t *testing.T) {
	var s Status
	assert.Empty(t, s.View())

	s.Set("deleted row-3")
	view := s.View()
	assert.Contains(t, view, "deleted row-3")
	assert.Contains(t, view, "now", "fresh messages read as just now")
}
