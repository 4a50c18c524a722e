package ramp

import "time"

// Step receives the next value of a sweep.
type Step func(v uint16)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Sweep visits every value from 'from' to 'to' inclusive, counting up or
// down, and calls tick(step) after each set. It returns how many values
// were set and whether the sweep ran to the end.
func Sweep(from, to uint16, step time.Duration, tick Tick, set Step) (uint32, bool) {
	var n uint32
	v := from
	for {
		set(v)
		n++
		if !tick(step) {
			return n, false
		}
		if v == to {
			return n, true
		}
		if to > from {
			v++
		} else {
			v--
		}
	}
}
