package client

import "errors"

var (
	// ErrOverlayNotRunning is returned when the overlay is not running
	ErrOverlayNotRunning = errors.New("overlay not running")

	// ErrPermissionDenied is returned when the user may not access the control socket
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when 404 is returned from the overlay
	ErrNotFound = errors.New("404 not found")
)
