package hud

import (
	"testing"

	"github.com/batthud/batthud/pkg/power"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		percent int
		want    Level
	}{
		{100, LevelHealthy},
		{66, LevelHealthy},
		{65, LevelWarning},
		{50, LevelWarning},
		{33, LevelWarning},
		{32, LevelCritical},
		{10, LevelCritical},
		{6, LevelCritical},
		{5, LevelCritical},
		{0, LevelCritical},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.percent); got != tt.want {
			t.Errorf("LevelFor(%d) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestComputeDisplayFlashEnabled(t *testing.T) {
	tests := []struct {
		percent  int
		charging bool
		want     bool
	}{
		{100, false, false},
		{33, false, false},
		{6, false, false},
		{5, false, true},
		{5, true, true}, // charging status is irrelevant to flashing
		{1, false, true},
		{0, true, true},
	}
	for _, tt := range tests {
		d := ComputeDisplay(power.Status{Percent: tt.percent, Charging: tt.charging})
		if d.FlashEnabled != tt.want {
			t.Errorf("ComputeDisplay(%d%%, charging=%t).FlashEnabled = %t, want %t",
				tt.percent, tt.charging, d.FlashEnabled, tt.want)
		}
	}
}

func TestComputeDisplayText(t *testing.T) {
	tests := []struct {
		name string
		st   power.Status
		want string
	}{
		{
			name: "charging",
			st:   power.Status{Percent: 87, Charging: true},
			want: "87% ⚡",
		},
		{
			name: "discharging with estimate",
			st:   power.Status{Percent: 40, RemainingSeconds: 5400},
			want: "40% (1h 30m)",
		},
		{
			name: "discharging sub-hour",
			st:   power.Status{Percent: 12, RemainingSeconds: 540},
			want: "12% (0h 09m)",
		},
		{
			name: "discharging no estimate",
			st:   power.Status{Percent: 55},
			want: "55% (0h 00m)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeDisplay(tt.st).Text; got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeDisplayRecomputesWholesale(t *testing.T) {
	d := ComputeDisplay(power.Status{Percent: 87, Charging: true})
	if d.Level != LevelHealthy || d.FlashEnabled {
		t.Fatalf("unexpected state for 87%% charging: %+v", d)
	}

	d = ComputeDisplay(power.Status{Percent: 3})
	if d.Level != LevelCritical || !d.FlashEnabled {
		t.Fatalf("unexpected state for 3%%: %+v", d)
	}
	if d.Charging {
		t.Error("charging flag leaked across recomputation")
	}
}

func TestUnknownDisplay(t *testing.T) {
	d := UnknownDisplay()
	if d.Text != "--%" {
		t.Errorf("Text = %q, want --%%", d.Text)
	}
	if d.Level != LevelWarning {
		t.Errorf("Level = %v, want warning", d.Level)
	}
	if d.FlashEnabled {
		t.Error("unknown state must not flash")
	}
}

func TestSnapshot(t *testing.T) {
	d := ComputeDisplay(power.Status{Percent: 40, RemainingSeconds: 5400})
	snap := d.Snapshot()
	if snap.Percent != 40 || snap.Text != "40% (1h 30m)" || snap.Level != "warning" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}
