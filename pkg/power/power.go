package power

import "errors"

// ErrNoBattery is returned when the machine has no battery the OS is
// willing to report on (typically desktops).
var ErrNoBattery = errors.New("no battery present")

// Status is one reading of the OS power subsystem.
type Status struct {
	// Percent is the current charge in [0, 100].
	Percent int `json:"percent"`
	// Charging reports whether the battery is charging (or full on AC).
	Charging bool `json:"charging"`
	// RemainingSeconds estimates time until empty while discharging.
	// Zero when charging or when the OS provides no usable estimate.
	RemainingSeconds int `json:"remainingSeconds"`
}

// Source reads the current power status. Read is a synchronous,
// non-blocking query; callers poll it on their own cadence.
type Source interface {
	Read() (Status, error)
}
