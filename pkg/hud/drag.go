package hud

// dragState implements the two-state drag machine: Idle until the left
// button goes down, Dragging until it is released. Cursor coordinates
// are window-local, so while the window follows the cursor the press
// point stays fixed and each Move yields the incremental delta.
type dragState struct {
	dragging bool
	pressX   int
	pressY   int
}

// Press records the press point and enters Dragging.
func (d *dragState) Press(x, y int) {
	d.dragging = true
	d.pressX = x
	d.pressY = y
}

// Move returns the position delta since the press point. A (0, 0)
// delta is a no-op. Calling Move while idle does nothing.
func (d *dragState) Move(x, y int) (dx, dy int) {
	if !d.dragging {
		return 0, 0
	}
	return x - d.pressX, y - d.pressY
}

// Release returns to Idle.
func (d *dragState) Release() {
	d.dragging = false
}

// Active reports whether a drag is in progress.
func (d *dragState) Active() bool {
	return d.dragging
}
