//go:build avr

package timer1

import (
	"machine"
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"
)

// MMIO reaches Timer1 through the AVR data space.
type MMIO struct{}

var _ Registers = MMIO{}

func reg8(r Reg) *volatile.Register8 {
	return (*volatile.Register8)(unsafe.Pointer(uintptr(r)))
}

func (MMIO) Get(r Reg) uint8    { return reg8(r).Get() }
func (MMIO) Set(r Reg, v uint8) { reg8(r).Set(v) }

// Set16 writes high then low; an interrupt in between could clobber the
// shared TEMP latch, so interrupts are held off for the pair.
func (MMIO) Set16(lo Reg, v uint16) {
	mask := interrupt.Disable()
	reg8(lo + 1).Set(uint8(v >> 8))
	reg8(lo).Set(uint8(v))
	interrupt.Restore(mask)
}

// Pin adapts a machine.Pin (OC1B on the board) to OutputPin.
type Pin machine.Pin

func (p Pin) ConfigureOutput() {
	machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinOutput})
}
