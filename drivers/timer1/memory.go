package timer1

// Memory is an in-process register window for hosts without Timer1. It
// keeps the register contents and a log of every write in issue order.
type Memory struct {
	cells  [256]uint8
	Writes []Write
}

// Write is one logged register write. Wide marks a 16-bit pair write.
type Write struct {
	Reg   Reg
	Value uint16
	Wide  bool
}

var _ Registers = (*Memory)(nil)

func (m *Memory) Get(r Reg) uint8 { return m.cells[uint8(r)] }

func (m *Memory) Set(r Reg, v uint8) {
	m.cells[uint8(r)] = v
	m.Writes = append(m.Writes, Write{Reg: r, Value: uint16(v)})
}

// Set16 stores high byte then low byte, matching the AVR TEMP latch order.
func (m *Memory) Set16(lo Reg, v uint16) {
	m.cells[uint8(lo+1)] = uint8(v >> 8)
	m.cells[uint8(lo)] = uint8(v)
	m.Writes = append(m.Writes, Write{Reg: lo, Value: v, Wide: true})
}

func (m *Memory) Get16(lo Reg) uint16 {
	return uint16(m.cells[uint8(lo+1)])<<8 | uint16(m.cells[uint8(lo)])
}

// Reset clears the write log but keeps register contents.
func (m *Memory) Reset() { m.Writes = m.Writes[:0] }
