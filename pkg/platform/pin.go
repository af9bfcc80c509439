// Package platform holds the OS window-ordering capability. The UI
// toolkit tracks its own floating flag, but some OS features (such as
// fullscreen exclusive applications) silently demote topmost windows,
// so the overlay re-pins itself through this interface on every poll.
package platform

// Pinner re-asserts a window above all others at the OS level.
type Pinner interface {
	PinTopmost() error
}
