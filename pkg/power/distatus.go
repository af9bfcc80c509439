package power

import (
	"math"

	"github.com/distatus/battery"
	pkgerrors "github.com/pkg/errors"
)

// SystemSource reads battery status from the OS.
type SystemSource struct{}

var _ Source = (*SystemSource)(nil)

// NewSystemSource returns a Source backed by the OS power subsystem.
func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

// Read queries the first battery the OS reports. Partial read errors
// are tolerated as long as at least one battery came back; the values
// are clamped afterwards anyway.
func (s *SystemSource) Read() (Status, error) {
	batteries, err := battery.GetAll()
	if err != nil && len(batteries) == 0 {
		return Status{}, pkgerrors.Wrap(err, "failed to query power subsystem")
	}
	if len(batteries) == 0 || batteries[0] == nil {
		return Status{}, ErrNoBattery
	}

	bat := batteries[0]
	if !(bat.Full > 0) {
		// Zero or NaN design capacity, nothing meaningful to derive.
		return Status{}, ErrNoBattery
	}

	return FromBattery(bat), nil
}

// FromBattery derives a clamped Status from a raw OS battery reading.
// The OS is free to return garbage (negative rates, NaN capacities);
// everything is clamped so downstream code never sees invalid values.
func FromBattery(bat *battery.Battery) Status {
	st := Status{
		Percent:  clampPercent(bat.Current / bat.Full * 100),
		Charging: bat.State == battery.Charging || bat.State == battery.Full,
	}

	if bat.State == battery.Discharging && bat.ChargeRate > 0 {
		st.RemainingSeconds = clampSeconds(bat.Current / bat.ChargeRate * 3600)
	}

	return st
}

func clampPercent(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

func clampSeconds(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int(v)
}
