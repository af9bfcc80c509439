package hud

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/batthud/batthud/pkg/events"
	"github.com/batthud/batthud/pkg/platform"
	"github.com/batthud/batthud/pkg/power"
)

const (
	// Background padding around the rendered text.
	padX = 10
	padY = 6

	menuWidth   = 90
	menuAnchorX = 4

	// Base alpha of the background rectangle at full opacity.
	bgBaseAlpha = 208

	ticksPerSecond = 60

	// Fallback placement when the primary screen cannot be queried.
	fallbackX = 1200
	fallbackY = 40

	screenMargin = 20
)

// Options configure the overlay window.
type Options struct {
	// Title is the OS window title, used by the platform pinner to
	// resolve the window handle. Must be unique on the desktop.
	Title string
	// PollInterval is the power status poll cadence.
	PollInterval time.Duration
	// FlashInterval is the critical-battery flash half-cycle.
	FlashInterval time.Duration
	// Transparency is the initial level, 0-100 where 100 is opaque.
	Transparency int
}

// DefaultOptions returns the stock overlay configuration.
func DefaultOptions() Options {
	return Options{
		Title:         "batthud",
		PollInterval:  100 * time.Millisecond,
		FlashInterval: 500 * time.Millisecond,
		Transparency:  100,
	}
}

// Overlay is the heads-up display window. It owns the display state,
// the flash state, the drag machine, the context menu, and the
// settings panel, and advances all of them from a single update loop.
// Snapshot, Transparency, and SetTransparency are safe to call from
// other goroutines (the control API uses them).
type Overlay struct {
	opts   Options
	source power.Source
	pinner platform.Pinner
	hub    *events.EventHub

	face font.Face

	mu       sync.RWMutex
	display  DisplayState
	flashOn  bool
	drag     dragState
	menu     *contextMenu
	settings *settingsPanel
	quit     bool

	tick       uint64
	pollEvery  uint64
	flashEvery uint64

	winX, winY    int
	width, height int
	hudW, hudH    int
}

// New builds an overlay. hub may be nil when nothing subscribes.
func New(opts Options, source power.Source, pinner platform.Pinner, hub *events.EventHub) *Overlay {
	o := &Overlay{
		opts:       opts,
		source:     source,
		pinner:     pinner,
		hub:        hub,
		face:       basicfont.Face7x13,
		display:    UnknownDisplay(),
		flashOn:    true,
		menu:       newContextMenu(),
		settings:   newSettingsPanel(opts.Transparency),
		pollEvery:  intervalTicks(opts.PollInterval),
		flashEvery: intervalTicks(opts.FlashInterval),
	}
	o.applyLayout()
	return o
}

func intervalTicks(d time.Duration) uint64 {
	t := uint64(d * ticksPerSecond / time.Second)
	if t == 0 {
		t = 1
	}
	return t
}

// Run configures the window and blocks inside the event loop until
// Exit is chosen or RequestExit is called.
func (o *Overlay) Run() error {
	ebiten.SetWindowTitle(o.opts.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(ticksPerSecond)

	o.winX, o.winY = initialPosition(o.width)
	ebiten.SetWindowSize(o.width, o.height)
	ebiten.SetWindowPosition(o.winX, o.winY)

	logrus.WithFields(logrus.Fields{
		"x": o.winX,
		"y": o.winY,
		"w": o.width,
		"h": o.height,
	}).Debug("overlay window created")

	return ebiten.RunGameWithOptions(o, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	})
}

// initialPosition puts the overlay at the top-right of the primary
// screen minus a margin. Width must already be known so the right edge
// lines up. Falls back to a fixed spot when no screen is reported.
func initialPosition(width int) (int, int) {
	sw, _ := ebiten.ScreenSizeInFullscreen()
	if sw <= 0 {
		return fallbackX, fallbackY
	}
	return sw - width - screenMargin, screenMargin
}

// RequestExit asks the event loop to terminate on its next tick.
func (o *Overlay) RequestExit() {
	o.mu.Lock()
	o.quit = true
	o.mu.Unlock()
}

// Snapshot returns the current display state for the control API.
func (o *Overlay) Snapshot() Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.display.Snapshot()
}

// Transparency returns the current level, 0-100 where 100 is opaque.
func (o *Overlay) Transparency() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.settings.Value()
}

// SetTransparency sets the level, 0-100 where 100 is opaque.
func (o *Overlay) SetTransparency(v int) {
	o.mu.Lock()
	o.settings.SetValue(v)
	o.mu.Unlock()
}

// Update advances one tick. The poll cadence and the flash cadence are
// sub-triggers of a single tick counter, so every mutation of the
// display and flash state happens on this one goroutine.
func (o *Overlay) Update() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.quit {
		return ebiten.Termination
	}

	o.advanceTick()
	o.handleInput()
	o.applyLayout()
	return nil
}

// advanceTick drives the poll and flash sub-triggers off the unified
// tick counter.
func (o *Overlay) advanceTick() {
	o.tick++
	if o.tick%o.flashEvery == 0 {
		o.flashOn = !o.flashOn
	}
	if o.tick == 1 || o.tick%o.pollEvery == 0 {
		o.poll()
	}
	if !o.display.FlashEnabled {
		// Pinned so text always renders outside the critical band.
		o.flashOn = true
	}
}

// poll reads the power source, recomputes the display state wholesale,
// and re-asserts the topmost flag. Fullscreen exclusive applications
// can silently demote topmost windows, hence the re-assertion.
func (o *Overlay) poll() {
	var d DisplayState
	st, err := o.source.Read()
	if err != nil {
		logrus.WithError(err).Debug("power status read failed")
		d = UnknownDisplay()
	} else {
		d = ComputeDisplay(st)
	}

	if d != o.display {
		o.display = d
		o.hub.Publish(events.StatusUpdate, d.Snapshot())
		logrus.WithFields(logrus.Fields{
			"percent":  d.Percent,
			"charging": d.Charging,
			"level":    d.Level.String(),
		}).Trace("display state updated")
	}

	if err := o.pinner.PinTopmost(); err != nil {
		logrus.WithError(err).Debug("failed to re-assert topmost")
	}
}

func (o *Overlay) handleInput() {
	cx, cy := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		o.menu.Open()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if action, consumed := o.menu.click(cx, cy); consumed {
			o.runMenuAction(action)
		} else if o.settings.press(cx, cy) {
			// Consumed by the settings panel, no drag.
		} else {
			o.drag.Press(cx, cy)
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		o.settings.move(cx)
		if dx, dy := o.drag.Move(cx, cy); dx != 0 || dy != 0 {
			o.winX += dx
			o.winY += dy
			ebiten.SetWindowPosition(o.winX, o.winY)
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		o.drag.Release()
		o.settings.release()
	}
}

func (o *Overlay) runMenuAction(action int) {
	switch action {
	case menuSettings:
		if !o.settings.Open() {
			logrus.Debug("settings already open, focusing existing panel")
		}
	case menuExit:
		logrus.Info("exit selected, shutting down")
		o.quit = true
	}
}

// applyLayout sizes the window to tightly fit the background rectangle
// plus whatever menu or panel is showing.
func (o *Overlay) applyLayout() {
	b := text.BoundString(o.face, o.display.Text)
	o.hudW = b.Dx() + 2*padX
	o.hudH = b.Dy() + 2*padY

	w, h := o.hudW, o.hudH
	if o.menu.Visible() {
		mw, mh := o.menu.layout(menuAnchorX, h, menuWidth)
		if menuAnchorX+mw > w {
			w = menuAnchorX + mw
		}
		h += mh
	}
	if o.settings.Visible() {
		pw, ph := o.settings.layout(0, h)
		if pw > w {
			w = pw
		}
		h += ph
	}

	if w != o.width || h != o.height {
		o.width, o.height = w, h
		ebiten.SetWindowSize(w, h)
	}
}

// Draw renders the background, the status text (unless the flash state
// is in its off half-cycle), and any open menu or settings panel.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	op := Opacity(o.settings.Value())

	bg := color.RGBA{A: uint8(op * bgBaseAlpha)}
	vector.DrawFilledRect(screen, 0, 0, float32(o.hudW), float32(o.hudH), bg, false)

	if o.flashOn {
		b := text.BoundString(o.face, o.display.Text)
		text.Draw(screen, o.display.Text, o.face,
			padX-b.Min.X, padY-b.Min.Y, fadeColor(o.display.Level.Color(), op))
	}

	if o.menu.Visible() {
		o.drawMenu(screen, op)
	}
	if o.settings.Visible() {
		o.drawSettings(screen, op)
	}
}

// Layout reports the logical screen size; the overlay renders 1:1.
func (o *Overlay) Layout(_, _ int) (int, int) {
	return o.width, o.height
}

func (o *Overlay) drawMenu(screen *ebiten.Image, op float64) {
	bounds := o.menu.bounds
	vector.DrawFilledRect(screen,
		float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Dx()), float32(bounds.Dy()),
		color.RGBA{30, 30, 30, uint8(op * 255)}, false)

	itemColor := fadeColor(color.RGBA{230, 230, 230, 255}, op)
	for i, item := range menuItems {
		y := bounds.Min.Y + i*o.menu.rowH + o.menu.rowH - 5
		text.Draw(screen, item, o.face, bounds.Min.X+6, y, itemColor)
	}
}

func (o *Overlay) drawSettings(screen *ebiten.Image, op float64) {
	p := o.settings
	track := p.track

	panelTop := track.Min.Y - p.rowH
	vector.DrawFilledRect(screen,
		0, float32(panelTop),
		float32(o.width), float32(2*p.rowH+panelPadY),
		color.RGBA{20, 20, 20, uint8(op * 255)}, false)

	labelColor := fadeColor(color.RGBA{230, 230, 230, 255}, op)
	text.Draw(screen, p.Label(), o.face, panelPadX, panelTop+p.rowH-4, labelColor)
	text.Draw(screen, "x", o.face, p.closeBox.Min.X+3, p.closeBox.Min.Y+10, labelColor)

	// Track, then filled portion up to the handle.
	vector.DrawFilledRect(screen,
		float32(track.Min.X), float32(track.Min.Y),
		float32(track.Dx()), float32(track.Dy()),
		fadeColor(color.RGBA{90, 90, 90, 255}, op), false)
	fillW := track.Dx() * p.Value() / 100
	vector.DrawFilledRect(screen,
		float32(track.Min.X), float32(track.Min.Y),
		float32(fillW), float32(track.Dy()),
		fadeColor(color.RGBA{0, 160, 240, 255}, op), false)

	handleX := track.Min.X + fillW
	vector.DrawFilledRect(screen,
		float32(handleX-2), float32(track.Min.Y-3),
		4, float32(track.Dy()+6),
		fadeColor(color.RGBA{230, 230, 230, 255}, op), false)
}

// fadeColor premultiplies a color by the overlay opacity.
func fadeColor(c color.RGBA, op float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * op),
		G: uint8(float64(c.G) * op),
		B: uint8(float64(c.B) * op),
		A: uint8(float64(c.A) * op),
	}
}
