package hud

import (
	"fmt"
	"image/color"

	"github.com/batthud/batthud/pkg/power"
)

// Level is the color-coded battery health level.
type Level int

const (
	// LevelHealthy is shown above 65%.
	LevelHealthy Level = iota
	// LevelWarning is shown above 32% up to 65%.
	LevelWarning
	// LevelCritical is shown at 32% and below.
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelHealthy:
		return "healthy"
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	}
	return "unknown"
}

// Color returns the text color for this level.
func (l Level) Color() color.RGBA {
	switch l {
	case LevelHealthy:
		return color.RGBA{0, 220, 90, 255}
	case LevelWarning:
		return color.RGBA{255, 200, 0, 255}
	default:
		return color.RGBA{235, 50, 35, 255}
	}
}

// DisplayState is what the overlay renders. It is recomputed wholesale
// on every poll tick, never patched field by field.
type DisplayState struct {
	Percent          int
	Charging         bool
	RemainingSeconds int
	Text             string
	Level            Level
	// FlashEnabled is true iff Percent <= flashThreshold, regardless of
	// charging status.
	FlashEnabled bool
	// Unknown marks a failed or nonsensical power reading.
	Unknown bool
}

const flashThreshold = 5

// LevelFor maps a charge percentage to a health level. Charging status
// does not influence the level.
func LevelFor(percent int) Level {
	switch {
	case percent > 65:
		return LevelHealthy
	case percent > 32:
		return LevelWarning
	default:
		return LevelCritical
	}
}

// ComputeDisplay derives the full display state from one power reading.
func ComputeDisplay(st power.Status) DisplayState {
	d := DisplayState{
		Percent:          st.Percent,
		Charging:         st.Charging,
		RemainingSeconds: st.RemainingSeconds,
		Level:            LevelFor(st.Percent),
		FlashEnabled:     st.Percent <= flashThreshold,
	}

	if st.Charging {
		d.Text = fmt.Sprintf("%d%% ⚡", st.Percent)
	} else {
		hours := st.RemainingSeconds / 3600
		minutes := st.RemainingSeconds / 60 % 60
		d.Text = fmt.Sprintf("%d%% (%dh %02dm)", st.Percent, hours, minutes)
	}

	return d
}

// UnknownDisplay is rendered when the power query fails or the machine
// has no battery. A neutral warning beats extrapolating from garbage.
func UnknownDisplay() DisplayState {
	return DisplayState{
		Text:    "--%",
		Level:   LevelWarning,
		Unknown: true,
	}
}

// Snapshot is the JSON view of the display state served by the control
// API.
type Snapshot struct {
	Percent          int    `json:"percent"`
	Charging         bool   `json:"charging"`
	RemainingSeconds int    `json:"remainingSeconds"`
	Text             string `json:"text"`
	Level            string `json:"level"`
	Unknown          bool   `json:"unknown,omitempty"`
}

// Snapshot converts the display state into its API representation.
func (d DisplayState) Snapshot() Snapshot {
	return Snapshot{
		Percent:          d.Percent,
		Charging:         d.Charging,
		RemainingSeconds: d.RemainingSeconds,
		Text:             d.Text,
		Level:            d.Level.String(),
		Unknown:          d.Unknown,
	}
}
