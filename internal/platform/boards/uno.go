//go:build avr && atmega328p

package boards

import "machine"

// Uno and Nano: OC1B is PB2, digital pin 10.
var Selected = Descriptor{
	Name:    "atmega328p",
	ClockHz: 16_000_000,
	ToneOut: machine.PB2,
}
