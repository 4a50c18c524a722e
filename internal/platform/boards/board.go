//go:build avr

package boards

import "machine"

// Descriptor is the wiring the Timer1 demos need from a board.
type Descriptor struct {
	Name    string
	ClockHz uint32
	ToneOut machine.Pin // OC1B
}
