//go:build avr && atmega2560

package boards

import "machine"

// Mega 2560: OC1B is PB6, digital pin 12. Timer1 sits at the same addresses.
var Selected = Descriptor{
	Name:    "atmega2560",
	ClockHz: 16_000_000,
	ToneOut: machine.PB6,
}
