// Package timer1 drives the 16-bit Timer1 of the ATmega328P family in fast
// PWM mode and derives its TOP value from a wanted output frequency.
//
// Design notes (datasheet references):
// • Waveform generation mode 15: fast PWM, TOP in OCR1A, OCR1A updated at BOTTOM.
// • Compare output mode 3 on both channels: set on compare match, clear at BOTTOM
// (inverting). The tone output is OC1B.
// • f_out = f_clk / (N * (1 + TOP)), N being the prescale divisor.
// • 16-bit registers are written high byte first through the shared TEMP latch.
package timer1

// Reg is a data-space address of a Timer1 register.
type Reg uint16

const (
	TCCR1A Reg = 0x80
	TCCR1B Reg = 0x81

	// 16-bit pairs, addressed by their low byte.
	OCR1AL Reg = 0x88
	OCR1BL Reg = 0x8A
)

// Bit fields touched by this driver. Every other bit in TCCR1A/TCCR1B
// (ICNC1, ICES1, reserved) belongs to someone else and is preserved.
var (
	WGM1Low  = Field{Reg: TCCR1A, Shift: 0, Width: 2} // WGM11:WGM10
	COM1B    = Field{Reg: TCCR1A, Shift: 4, Width: 2}
	COM1A    = Field{Reg: TCCR1A, Shift: 6, Width: 2}
	CS1      = Field{Reg: TCCR1B, Shift: 0, Width: 3}
	WGM1High = Field{Reg: TCCR1B, Shift: 3, Width: 2} // WGM13:WGM12
)

const (
	wgmFastPWMTopOCR1A = 15
	comInverting       = 0b11
)

// Registers is raw access to the timer's register window.
type Registers interface {
	Get(r Reg) uint8
	Set(r Reg, v uint8)
	// Set16 writes the 16-bit pair whose low byte lives at lo.
	Set16(lo Reg, v uint16)
}

// OutputPin is a pin that can be switched from floating input to driven
// output. The switch happens once and is never undone.
type OutputPin interface {
	ConfigureOutput()
}
