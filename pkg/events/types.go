package events

import "encoding/json"

// Event name constants
const (
	StatusUpdate = "status.update"
)

// Event is a generic SSE event from the overlay.
type Event struct {
	Name string          // SSE event name
	Data json.RawMessage // Raw JSON payload
}

// StatusUpdateEvent is the typed payload for status.update.
type StatusUpdateEvent struct {
	Percent          int    `json:"percent"`
	Charging         bool   `json:"charging"`
	RemainingSeconds int    `json:"remainingSeconds"`
	Text             string `json:"text"`
	Level            string `json:"level"`
}

// DecodeAs decodes the event payload into the caller-specified generic
// type T. It ignores the event name and simply unmarshals Data into T.
// If Data is empty, it returns the zero value of T with a nil error.
func DecodeAs[T any](e Event) (T, error) {
	var zero T
	if len(e.Data) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return zero, err
	}
	return v, nil
}
