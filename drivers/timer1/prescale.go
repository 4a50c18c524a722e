package timer1

import (
	"strings"

	"timerpwm-go/errcode"
)

// PrescaleMode selects the clock divisor applied before Timer1 counts.
type PrescaleMode uint8

const (
	Direct PrescaleMode = iota // clk/1
	Freq8
	Freq64
	Freq256
	Freq1024
)

var modes = [...]PrescaleMode{Direct, Freq8, Freq64, Freq256, Freq1024}

// Modes lists every prescale mode in ascending divisor order.
func Modes() [5]PrescaleMode { return modes }

func (m PrescaleMode) Valid() bool { return m <= Freq1024 }

// Bits is the CS12:CS10 clock-select encoding (datasheet table 15-6).
// 0b000 stops the timer and is returned only for invalid modes.
func (m PrescaleMode) Bits() uint8 {
	switch m {
	case Direct:
		return 0b001
	case Freq8:
		return 0b010
	case Freq64:
		return 0b011
	case Freq256:
		return 0b100
	case Freq1024:
		return 0b101
	default:
		return 0b000
	}
}

// Divisor is the factor used in frequency arithmetic; 0 for invalid modes.
func (m PrescaleMode) Divisor() uint32 {
	switch m {
	case Direct:
		return 1
	case Freq8:
		return 8
	case Freq64:
		return 64
	case Freq256:
		return 256
	case Freq1024:
		return 1024
	default:
		return 0
	}
}

func (m PrescaleMode) String() string {
	switch m {
	case Direct:
		return "1"
	case Freq8:
		return "8"
	case Freq64:
		return "64"
	case Freq256:
		return "256"
	case Freq1024:
		return "1024"
	default:
		return "invalid"
	}
}

// ParsePrescale accepts a divisor ("1", "8", ... "1024") or "direct".
func ParsePrescale(s string) (PrescaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "direct":
		return Direct, nil
	case "8":
		return Freq8, nil
	case "64":
		return Freq64, nil
	case "256":
		return Freq256, nil
	case "1024":
		return Freq1024, nil
	}
	return 0, errcode.Wrap(errcode.InvalidPrescale, "timer1.ParsePrescale", s)
}
