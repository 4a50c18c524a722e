package timex

import "testing"

func TestPeriodRoundTrip(t *testing.T) {
	if got := PeriodFromHz(440); got != 2_272_727 {
		t.Fatalf("PeriodFromHz(440) = %d", got)
	}
	if got := HzFromPeriod(2_272_727); got != 440 {
		t.Fatalf("HzFromPeriod = %d, want 440", got)
	}
	if PeriodFromHz(0) != 0 || HzFromPeriod(0) != 0 {
		t.Fatal("zero should map to zero")
	}
	if HzFromPeriod(2_000_000_000) != 0 {
		t.Fatal("sub-hertz period should truncate to 0")
	}
}
