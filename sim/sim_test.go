package sim

import (
	"errors"
	"testing"

	"neostrand/core"
)

func TestResolveRange(t *testing.T) {
	d := New(19)

	if _, err := d.Resolve(0); err != nil {
		t.Errorf("Resolve(0) failed: %v", err)
	}
	if _, err := d.Resolve(19); err != nil {
		t.Errorf("Resolve(19) failed: %v", err)
	}

	_, err := d.Resolve(20)
	if !errors.Is(err, core.ErrUnknownPin) {
		t.Errorf("Resolve(20) error = %v, want ErrUnknownPin", err)
	}
	if d.Line(20) != nil {
		t.Errorf("failed Resolve created a line")
	}
}

func TestResolveReturnsSameLine(t *testing.T) {
	d := New(19)

	a, err := d.Resolve(5)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	b, err := d.Resolve(5)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a != b {
		t.Errorf("re-resolving a pin returned a different line")
	}
}

func TestPulseTimestamps(t *testing.T) {
	d := New(0)
	line, err := d.Resolve(0)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	line.SendZero()
	line.SendOne()

	sl := d.Line(0)
	pulses := sl.Pulses()
	if len(pulses) != 2 {
		t.Fatalf("got %d pulses, want 2", len(pulses))
	}

	if pulses[0].StartNanos != 0 || pulses[0].HighNanos != core.ZeroHighNanos {
		t.Errorf("zero pulse = %+v", pulses[0])
	}
	if pulses[1].StartNanos != core.BitPeriodNanos || pulses[1].HighNanos != core.OneHighNanos {
		t.Errorf("one pulse = %+v", pulses[1])
	}
	if got, want := d.Now(), uint64(2*core.BitPeriodNanos); got != want {
		t.Errorf("clock at %d after two bits, want %d", got, want)
	}

	events := sl.Events()
	if len(events) != 4 {
		t.Fatalf("got %d transitions, want 4", len(events))
	}
	wantEvents := []Event{
		{AtNanos: 0, Level: true},
		{AtNanos: core.ZeroHighNanos, Level: false},
		{AtNanos: core.BitPeriodNanos, Level: true},
		{AtNanos: core.BitPeriodNanos + core.OneHighNanos, Level: false},
	}
	for i, want := range wantEvents {
		if events[i] != want {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want)
		}
	}
}

func TestMicrosAdvancesClock(t *testing.T) {
	d := New(0)

	d.Micros(core.LatchMicros)
	if got := d.Now(); got != core.LatchNanos {
		t.Errorf("clock at %d after latch delay, want %d", got, core.LatchNanos)
	}
}

func TestBitsRejectsUnclassifiablePulse(t *testing.T) {
	d := New(0)
	line, _ := d.Resolve(0)
	sl := d.Line(0)

	line.SendOne()
	sl.pulse(600) // between the two encodings

	if _, ok := sl.Bits(); ok {
		t.Errorf("Bits accepted a pulse that fits neither encoding")
	}
}
