package hud

import "testing"

func TestOpacityEndpoints(t *testing.T) {
	if got := Opacity(100); got != 1.0 {
		t.Errorf("Opacity(100) = %v, want 1.0", got)
	}
	if got := Opacity(0); got != 0.1 {
		t.Errorf("Opacity(0) = %v, want 0.1", got)
	}
}

func TestOpacityMonotonic(t *testing.T) {
	prev := Opacity(100)
	for v := 99; v >= 0; v-- {
		cur := Opacity(v)
		if cur > prev {
			t.Fatalf("Opacity(%d) = %v > Opacity(%d) = %v; must be non-increasing", v, cur, v+1, prev)
		}
		if cur < 0.1 {
			t.Fatalf("Opacity(%d) = %v below the 0.1 floor", v, cur)
		}
		prev = cur
	}
}

func TestOpacityClampsInput(t *testing.T) {
	if got := Opacity(150); got != 1.0 {
		t.Errorf("Opacity(150) = %v, want 1.0", got)
	}
	if got := Opacity(-10); got != 0.1 {
		t.Errorf("Opacity(-10) = %v, want 0.1", got)
	}
}

func TestSettingsPanelSingleton(t *testing.T) {
	p := newSettingsPanel(100)

	if !p.Open() {
		t.Fatal("first Open should create the panel")
	}
	if p.Open() {
		t.Fatal("second Open while visible should focus, not create")
	}
	if p.Instances() != 1 {
		t.Fatalf("Instances() = %d, want 1", p.Instances())
	}
	if !p.Visible() {
		t.Fatal("panel should stay visible after a focusing Open")
	}
}

func TestSettingsPanelLabelInverse(t *testing.T) {
	p := newSettingsPanel(100)

	tests := []struct {
		value int
		want  string
	}{
		{100, "Transparency: 0%"},
		{75, "Transparency: 25%"},
		{0, "Transparency: 100%"},
	}
	for _, tt := range tests {
		p.SetValue(tt.value)
		if got := p.Label(); got != tt.want {
			t.Errorf("Label() with value %d = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestSettingsPanelSlider(t *testing.T) {
	p := newSettingsPanel(100)
	p.Open()
	p.layout(0, 30)

	// Grab the middle of the track.
	midX := p.track.Min.X + p.track.Dx()/2
	midY := (p.track.Min.Y + p.track.Max.Y) / 2
	if !p.press(midX, midY) {
		t.Fatal("press on the track should be consumed")
	}
	if got := p.Value(); got != 50 {
		t.Errorf("Value() after mid-track press = %d, want 50", got)
	}

	// Drag past the right end: value clamps to 100.
	p.move(p.track.Max.X + 500)
	if got := p.Value(); got != 100 {
		t.Errorf("Value() after overshoot = %d, want 100", got)
	}

	p.release()
	if p.sliding {
		t.Error("slider grab should end on release")
	}
}

func TestSettingsPanelCloseBox(t *testing.T) {
	p := newSettingsPanel(100)
	p.Open()
	p.layout(0, 30)

	x := (p.closeBox.Min.X + p.closeBox.Max.X) / 2
	y := (p.closeBox.Min.Y + p.closeBox.Max.Y) / 2
	if !p.press(x, y) {
		t.Fatal("press on the close box should be consumed")
	}
	if p.Visible() {
		t.Fatal("panel should hide after close")
	}

	// Value survives close and reopen; only process exit resets it.
	p.SetValue(40)
	p.Open()
	if p.Value() != 40 {
		t.Errorf("Value() after reopen = %d, want 40", p.Value())
	}
}

func TestSettingsPanelPressOutside(t *testing.T) {
	p := newSettingsPanel(100)
	p.Open()
	p.layout(0, 30)

	if p.press(-50, -50) {
		t.Error("press outside the panel must not be consumed")
	}
}
