package timer1

import (
	"math/bits"

	"timerpwm-go/errcode"
	"timerpwm-go/x/mathx"
)

// DefaultClockHz is the system clock of the 16 MHz Arduino boards.
const DefaultClockHz = 16_000_000

const nsPerSecond = 1_000_000_000

// TopForFrequency returns the TOP that makes Timer1 run at hz:
//
//	timer_clock = clockHz / divisor
//	top         = timer_clock/hz - 1
//
// Inputs that would wrap are rejected: hz == 0, hz above the timer clock,
// or a TOP wider than 16 bits. A zero clockHz is invalid_params; unlike
// Config there is no default here. hz equal to the timer clock yields 0.
func TopForFrequency(hz uint32, mode PrescaleMode, clockHz uint32) (uint16, error) {
	const op = "timer1.TopForFrequency"
	if !mode.Valid() {
		return 0, errcode.Wrap(errcode.InvalidPrescale, op, "")
	}
	if clockHz == 0 {
		return 0, errcode.Wrap(errcode.InvalidParams, op, "zero clock")
	}
	if hz == 0 {
		return 0, errcode.Wrap(errcode.ZeroFrequency, op, "")
	}
	tc := clockHz / mode.Divisor()
	if hz > tc {
		return 0, errcode.Wrap(errcode.FrequencyTooHigh, op, "")
	}
	ticks := tc / hz // >= 1
	if !mathx.FitsU16(ticks - 1) {
		return 0, errcode.Wrap(errcode.FrequencyTooLow, op, "")
	}
	return uint16(ticks - 1), nil
}

// TopForPeriod is TopForFrequency for a wave period given in nanoseconds,
// which is what tone.Note.Period reports.
func TopForPeriod(ns uint64, mode PrescaleMode, clockHz uint32) (uint16, error) {
	const op = "timer1.TopForPeriod"
	if !mode.Valid() {
		return 0, errcode.Wrap(errcode.InvalidPrescale, op, "")
	}
	if clockHz == 0 {
		return 0, errcode.Wrap(errcode.InvalidParams, op, "zero clock")
	}
	if ns == 0 {
		return 0, errcode.Wrap(errcode.ZeroFrequency, op, "")
	}
	tc := uint64(clockHz / mode.Divisor())
	hi, lo := bits.Mul64(tc, ns)
	if hi != 0 {
		return 0, errcode.Wrap(errcode.FrequencyTooLow, op, "")
	}
	ticks := lo / nsPerSecond
	if ticks == 0 {
		return 0, errcode.Wrap(errcode.FrequencyTooHigh, op, "")
	}
	if !mathx.FitsU16(ticks - 1) {
		return 0, errcode.Wrap(errcode.FrequencyTooLow, op, "")
	}
	return uint16(ticks - 1), nil
}

// FrequencyForTop is the output frequency produced by top; 0 for an
// invalid mode.
func FrequencyForTop(top uint16, mode PrescaleMode, clockHz uint32) uint32 {
	if !mode.Valid() {
		return 0
	}
	return clockHz / mode.Divisor() / (uint32(top) + 1)
}

// SelectPrescale picks the smallest divisor whose TOP for hz fits in 16
// bits, which gives the finest frequency resolution.
func SelectPrescale(hz uint32, clockHz uint32) (PrescaleMode, uint16, error) {
	for _, m := range modes {
		top, err := TopForFrequency(hz, m, clockHz)
		if err == nil {
			return m, top, nil
		}
		if errcode.Of(err) != errcode.FrequencyTooLow {
			// A larger divisor only lowers the timer clock further.
			return 0, 0, err
		}
	}
	return 0, 0, errcode.Wrap(errcode.FrequencyTooLow, "timer1.SelectPrescale", "")
}
