package hud

import (
	"errors"
	"testing"

	"github.com/batthud/batthud/pkg/power"
)

type fakeSource struct {
	st    power.Status
	err   error
	reads int
}

func (f *fakeSource) Read() (power.Status, error) {
	f.reads++
	return f.st, f.err
}

type fakePinner struct{ pins int }

func (f *fakePinner) PinTopmost() error {
	f.pins++
	return nil
}

func newTestOverlay(src power.Source, pin *fakePinner) *Overlay {
	opts := DefaultOptions()
	return New(opts, src, pin, nil)
}

func TestTickCadence(t *testing.T) {
	src := &fakeSource{st: power.Status{Percent: 50}}
	pin := &fakePinner{}
	o := newTestOverlay(src, pin)

	// Poll every 6 ticks at 60 TPS for a 100ms interval; the first
	// tick polls immediately.
	for i := 0; i < 12; i++ {
		o.advanceTick()
	}

	if src.reads != 3 { // ticks 1, 6, 12
		t.Errorf("source reads = %d, want 3", src.reads)
	}
	if pin.pins != src.reads {
		t.Errorf("topmost re-assertions = %d, want one per poll (%d)", pin.pins, src.reads)
	}
}

func TestFlashAlternatesWhenCritical(t *testing.T) {
	src := &fakeSource{st: power.Status{Percent: 3}}
	o := newTestOverlay(src, &fakePinner{})

	var seenOff, seenOn bool
	// Two full flash cycles at 30 ticks per half-cycle.
	for i := 0; i < 120; i++ {
		o.advanceTick()
		if o.flashOn {
			seenOn = true
		} else {
			seenOff = true
		}
	}

	if !seenOn || !seenOff {
		t.Errorf("flash did not alternate at 3%%: on=%t off=%t", seenOn, seenOff)
	}
}

func TestFlashPinnedOnWhenNotCritical(t *testing.T) {
	for _, percent := range []int{6, 33, 66, 100} {
		src := &fakeSource{st: power.Status{Percent: percent}}
		o := newTestOverlay(src, &fakePinner{})

		for i := 0; i < 120; i++ {
			o.advanceTick()
			if !o.flashOn {
				t.Fatalf("text hidden at %d%%; flashing must only occur at <= 5%%", percent)
			}
		}
	}
}

func TestPollFailureShowsUnknown(t *testing.T) {
	src := &fakeSource{err: errors.New("acpi exploded")}
	o := newTestOverlay(src, &fakePinner{})

	o.advanceTick()

	snap := o.Snapshot()
	if !snap.Unknown || snap.Text != "--%" {
		t.Errorf("unexpected snapshot after failed poll: %+v", snap)
	}
}

func TestPollRecomputesWholesale(t *testing.T) {
	src := &fakeSource{st: power.Status{Percent: 87, Charging: true}}
	o := newTestOverlay(src, &fakePinner{})
	o.advanceTick()

	if got := o.Snapshot().Text; got != "87% ⚡" {
		t.Fatalf("Text = %q, want 87%% ⚡", got)
	}

	src.st = power.Status{Percent: 40, RemainingSeconds: 5400}
	for i := 0; i < int(o.pollEvery); i++ {
		o.advanceTick()
	}

	snap := o.Snapshot()
	if snap.Text != "40% (1h 30m)" || snap.Charging {
		t.Errorf("stale display state after poll: %+v", snap)
	}
}

func TestTransparencyAccessors(t *testing.T) {
	o := newTestOverlay(&fakeSource{}, &fakePinner{})

	if o.Transparency() != 100 {
		t.Fatalf("default transparency = %d, want 100", o.Transparency())
	}

	o.SetTransparency(30)
	if o.Transparency() != 30 {
		t.Errorf("Transparency() = %d, want 30", o.Transparency())
	}

	o.SetTransparency(250)
	if o.Transparency() != 100 {
		t.Errorf("Transparency() = %d after out-of-range set, want 100", o.Transparency())
	}
}

func TestIntervalTicks(t *testing.T) {
	opts := DefaultOptions()
	if got := intervalTicks(opts.PollInterval); got != 6 {
		t.Errorf("intervalTicks(100ms) = %d, want 6", got)
	}
	if got := intervalTicks(opts.FlashInterval); got != 30 {
		t.Errorf("intervalTicks(500ms) = %d, want 30", got)
	}
	if got := intervalTicks(0); got != 1 {
		t.Errorf("intervalTicks(0) = %d, want 1", got)
	}
}
