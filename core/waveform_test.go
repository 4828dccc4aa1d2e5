package core

import "testing"

func TestBitFromHighTime(t *testing.T) {
	cases := []struct {
		highNs  uint32
		wantBit uint8
		wantOK  bool
	}{
		{ZeroHighNanos, 0, true},
		{OneHighNanos, 1, true},
		{ZeroHighNanos - PulseToleranceNanos, 0, true},
		{ZeroHighNanos + PulseToleranceNanos, 0, true},
		{OneHighNanos - PulseToleranceNanos, 1, true},
		{OneHighNanos + PulseToleranceNanos, 1, true},
		{375, 0, true}, // six 62.5ns cycles, the AVR zero pulse
		{813, 1, true}, // thirteen cycles, the AVR one pulse
		{600, 0, false},
		{0, 0, false},
		{2000, 0, false},
	}

	for _, tc := range cases {
		bit, ok := BitFromHighTime(tc.highNs)
		if bit != tc.wantBit || ok != tc.wantOK {
			t.Errorf("BitFromHighTime(%d) = %d, %v, want %d, %v",
				tc.highNs, bit, ok, tc.wantBit, tc.wantOK)
		}
	}
}

func TestCyclesFromNanos(t *testing.T) {
	cases := []struct {
		clockHz uint32
		ns      uint32
		want    uint32
	}{
		{16000000, ZeroHighNanos, 6},
		{16000000, OneHighNanos, 13},
		{16000000, BitPeriodNanos, 20},
		{16000000, 1000, 16},
		{8000000, BitPeriodNanos, 10},
		{125000000, ZeroHighNanos, 50},
		{133000000, BitPeriodNanos, 166},
	}

	for _, tc := range cases {
		if got := CyclesFromNanos(tc.clockHz, tc.ns); got != tc.want {
			t.Errorf("CyclesFromNanos(%d, %d) = %d, want %d",
				tc.clockHz, tc.ns, got, tc.want)
		}
	}
}
