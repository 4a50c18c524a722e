package timex

const nsPerSecond = 1_000_000_000

// PeriodFromHz returns the nanosecond period of freqHz; 0 stays 0 (no wave).
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		return 0
	}
	return nsPerSecond / uint64(freqHz)
}

// HzFromPeriod is the inverse of PeriodFromHz, truncated to whole hertz.
// Periods longer than a second give 0; a zero period gives 0.
func HzFromPeriod(ns uint64) uint32 {
	if ns == 0 {
		return 0
	}
	return uint32(nsPerSecond / ns)
}
