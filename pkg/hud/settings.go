package hud

import (
	"fmt"
	"image"
)

// Opacity maps a slider value in [0, 100] to the overlay opacity.
// Slider 100 means fully opaque; the value decreases roughly linearly
// and bottoms out at 0.1 so the overlay can never disappear entirely.
func Opacity(slider int) float64 {
	if slider > 100 {
		slider = 100
	}
	if slider < 0 {
		slider = 0
	}
	op := 1.0 - float64(100-slider)*0.009
	if op < 0.1 {
		op = 0.1
	}
	return op
}

// settingsPanel is the singleton transparency settings surface. The
// windowing backend gives us exactly one OS window, so the panel is
// hosted below the readout instead of in a second toplevel; open,
// focus, and close semantics are otherwise those of a non-modal
// settings dialog.
type settingsPanel struct {
	visible bool
	focused bool

	// Slider value in [0, 100]. 100 = fully opaque.
	value    int
	sliding  bool
	opens    int // created instances; stays at 1 once opened
	trackW   int
	rowH     int
	closeBox image.Rectangle
	track    image.Rectangle
}

func newSettingsPanel(initial int) *settingsPanel {
	return &settingsPanel{
		value:  clampSlider(initial),
		trackW: 140,
		rowH:   16,
	}
}

// Open shows the panel. If it is already visible the existing instance
// is focused instead of a second one being created; the return value
// reports whether a new instance appeared.
func (p *settingsPanel) Open() bool {
	p.focused = true
	if p.visible {
		return false
	}
	p.visible = true
	p.opens++
	return true
}

// Close hides the panel. The slider value survives until process exit.
func (p *settingsPanel) Close() {
	p.visible = false
	p.focused = false
	p.sliding = false
}

// Visible reports whether the panel is currently shown.
func (p *settingsPanel) Visible() bool {
	return p.visible
}

// Instances returns how many panel instances were ever created.
func (p *settingsPanel) Instances() int {
	return p.opens
}

// Value returns the slider value.
func (p *settingsPanel) Value() int {
	return p.value
}

// SetValue moves the slider programmatically.
func (p *settingsPanel) SetValue(v int) {
	p.value = clampSlider(v)
}

// Label returns the slider label. It shows the inverse of the slider
// value: slider 100 reads as 0% transparency.
func (p *settingsPanel) Label() string {
	return fmt.Sprintf("Transparency: %d%%", 100-p.value)
}

// layout positions the panel rows below the given origin and returns
// the panel extent. Must be called before hit testing.
func (p *settingsPanel) layout(x, y int) (w, h int) {
	w = p.trackW + 2*panelPadX
	h = 2*p.rowH + panelPadY
	p.track = image.Rect(x+panelPadX, y+p.rowH, x+panelPadX+p.trackW, y+p.rowH+sliderTrackH)
	p.closeBox = image.Rect(x+w-14, y+2, x+w-2, y+14)
	return w, h
}

// press handles a left press at window coordinates. It returns true if
// the panel consumed the event (so it must not start a window drag).
func (p *settingsPanel) press(x, y int) bool {
	if !p.visible {
		return false
	}
	pt := image.Pt(x, y)
	if pt.In(p.closeBox) {
		p.Close()
		return true
	}
	grab := p.track.Inset(-sliderGrabSlop)
	if pt.In(grab) {
		p.sliding = true
		p.slideTo(x)
		return true
	}
	return false
}

// move updates the slider while it is grabbed.
func (p *settingsPanel) move(x int) {
	if p.sliding {
		p.slideTo(x)
	}
}

// release ends a slider grab.
func (p *settingsPanel) release() {
	p.sliding = false
}

func (p *settingsPanel) slideTo(x int) {
	w := p.track.Dx()
	if w <= 0 {
		return
	}
	v := (x - p.track.Min.X) * 100 / w
	p.value = clampSlider(v)
}

func clampSlider(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

const (
	panelPadX      = 8
	panelPadY      = 8
	sliderTrackH   = 6
	sliderGrabSlop = 5
)
