package hud

import "testing"

func TestContextMenuClick(t *testing.T) {
	tests := []struct {
		name       string
		x, y       int
		wantAction int
	}{
		{"settings row", 10, 34, menuSettings},
		{"exit row", 10, 52, menuExit},
		{"outside closes", 300, 300, menuNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newContextMenu()
			m.Open()
			m.layout(4, 30, menuWidth)

			action, consumed := m.click(tt.x, tt.y)
			if !consumed {
				t.Fatal("open menu should consume the click")
			}
			if action != tt.wantAction {
				t.Errorf("action = %d, want %d", action, tt.wantAction)
			}
			if m.Visible() {
				t.Error("menu should close after any click")
			}
		})
	}
}

func TestContextMenuClosedIgnoresClicks(t *testing.T) {
	m := newContextMenu()
	m.layout(4, 30, menuWidth)

	if _, consumed := m.click(10, 34); consumed {
		t.Error("closed menu must not consume clicks")
	}
}
