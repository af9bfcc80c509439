package hud

import "image"

// Menu actions.
const (
	menuNone = iota
	menuSettings
	menuExit
)

var menuItems = []string{"Settings", "Exit"}

// contextMenu is the small right-click menu. It is a model only; the
// overlay draws it and feeds it clicks.
type contextMenu struct {
	open   bool
	bounds image.Rectangle
	rowH   int
}

func newContextMenu() *contextMenu {
	return &contextMenu{rowH: 18}
}

// Open shows the menu.
func (m *contextMenu) Open() {
	m.open = true
}

// Close hides the menu.
func (m *contextMenu) Close() {
	m.open = false
}

// Visible reports whether the menu is shown.
func (m *contextMenu) Visible() bool {
	return m.open
}

// layout anchors the menu at the given origin and returns its extent.
func (m *contextMenu) layout(x, y, w int) (int, int) {
	h := m.rowH * len(menuItems)
	m.bounds = image.Rect(x, y, x+w, y+h)
	return w, h
}

// click resolves a left press. Inside the menu it returns the selected
// action and closes; outside it just closes. The boolean reports
// whether the menu consumed the press.
func (m *contextMenu) click(x, y int) (action int, consumed bool) {
	if !m.open {
		return menuNone, false
	}
	m.open = false
	pt := image.Pt(x, y)
	if !pt.In(m.bounds) {
		return menuNone, true
	}
	row := (y - m.bounds.Min.Y) / m.rowH
	switch row {
	case 0:
		return menuSettings, true
	case 1:
		return menuExit, true
	}
	return menuNone, true
}
