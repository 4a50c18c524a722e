package timer1

import (
	"testing"

	"timerpwm-go/errcode"
)

func TestTopForFrequencyA4(t *testing.T) {
	top, err := TopForFrequency(440, Freq1024, 16_000_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top != 34 {
		t.Fatalf("top = %d, want 34", top)
	}
	if f := FrequencyForTop(top, Freq1024, 16_000_000); f != 446 {
		t.Fatalf("FrequencyForTop(34) = %d, want 446", f)
	}
}

func TestTopForFrequencyMonotonic(t *testing.T) {
	for _, m := range Modes() {
		prev := uint16(0xFFFF)
		for hz := uint32(1); hz <= 20_000; hz += 7 {
			top, err := TopForFrequency(hz, m, DefaultClockHz)
			if err != nil {
				continue
			}
			if top > prev {
				t.Fatalf("mode %v: top rose from %d to %d at %d Hz", m, prev, top, hz)
			}
			prev = top
		}
	}
}

func TestTopForFrequencyBoundaries(t *testing.T) {
	const clk = 16_000_000
	tc := uint32(clk / 1024) // 15625

	top, err := TopForFrequency(tc, Freq1024, clk)
	if err != nil || top != 0 {
		t.Fatalf("hz == timer clock: top=%d err=%v, want 0, nil", top, err)
	}

	cases := []struct {
		name string
		hz   uint32
		mode PrescaleMode
		clk  uint32
		want errcode.Code
	}{
		{"above timer clock", tc + 1, Freq1024, clk, errcode.FrequencyTooHigh},
		{"zero", 0, Freq1024, clk, errcode.ZeroFrequency},
		{"too wide for 16 bits", 100, Direct, clk, errcode.FrequencyTooLow},
		{"invalid mode", 440, PrescaleMode(7), clk, errcode.InvalidPrescale},
		{"zero clock", 440, Freq1024, 0, errcode.InvalidParams},
	}
	for _, c := range cases {
		_, err := TopForFrequency(c.hz, c.mode, c.clk)
		if errcode.Of(err) != c.want {
			t.Fatalf("%s: got %v, want %s", c.name, err, c.want)
		}
	}

	// Largest representable TOP.
	top, err = TopForFrequency(1, Direct, 65536)
	if err != nil || top != 0xFFFF {
		t.Fatalf("top=%d err=%v, want 65535", top, err)
	}
	if _, err := TopForFrequency(1, Direct, 65537); errcode.Of(err) != errcode.FrequencyTooLow {
		t.Fatalf("65537 ticks should not fit: %v", err)
	}
}

func TestTopForPeriod(t *testing.T) {
	// 440 Hz is a 2272727 ns period.
	top, err := TopForPeriod(2_272_727, Freq1024, DefaultClockHz)
	if err != nil || top != 34 {
		t.Fatalf("top=%d err=%v, want 34", top, err)
	}
	if _, err := TopForPeriod(0, Freq8, DefaultClockHz); errcode.Of(err) != errcode.ZeroFrequency {
		t.Fatalf("zero period: %v", err)
	}
	// Shorter than one timer tick (64 us at /1024).
	if _, err := TopForPeriod(1_000, Freq1024, DefaultClockHz); errcode.Of(err) != errcode.FrequencyTooHigh {
		t.Fatalf("sub-tick period: %v", err)
	}
	if _, err := TopForPeriod(1<<62, Freq8, DefaultClockHz); errcode.Of(err) != errcode.FrequencyTooLow {
		t.Fatalf("overflowing period: %v", err)
	}
	if _, err := TopForPeriod(1_000_000_000, Direct, DefaultClockHz); errcode.Of(err) != errcode.FrequencyTooLow {
		t.Fatalf("one second at clk/1: %v", err)
	}
	if _, err := TopForPeriod(2_272_727, Freq1024, 0); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("zero clock: %v", err)
	}
}

func TestSelectPrescale(t *testing.T) {
	cases := []struct {
		hz       uint32
		wantMode PrescaleMode
		wantTop  uint16
	}{
		{440, Direct, 36362},
		{100, Freq8, 19999},
		{1, Freq256, 62499},
	}
	for _, c := range cases {
		m, top, err := SelectPrescale(c.hz, DefaultClockHz)
		if err != nil || m != c.wantMode || top != c.wantTop {
			t.Fatalf("SelectPrescale(%d) = %v, %d, %v; want %v, %d",
				c.hz, m, top, err, c.wantMode, c.wantTop)
		}
	}

	if _, _, err := SelectPrescale(0, DefaultClockHz); errcode.Of(err) != errcode.ZeroFrequency {
		t.Fatalf("zero: %v", err)
	}
	if _, _, err := SelectPrescale(DefaultClockHz+1, DefaultClockHz); errcode.Of(err) != errcode.FrequencyTooHigh {
		t.Fatalf("above clock: %v", err)
	}
	if _, _, err := SelectPrescale(1, 0xFFFF_FFFF); errcode.Of(err) != errcode.FrequencyTooLow {
		t.Fatalf("nothing fits: %v", err)
	}
	if _, _, err := SelectPrescale(440, 0); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("zero clock: %v", err)
	}
}
