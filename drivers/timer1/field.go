package timer1

// Field is a contiguous bit range inside an 8-bit register.
type Field struct {
	Reg   Reg
	Shift uint8
	Width uint8
}

// FieldValue is a pending write of v into a Field.
type FieldValue struct {
	f Field
	v uint8
}

func (f Field) mask() uint8 { return uint8((1<<f.Width)-1) << f.Shift }

// Set returns an update for Modify. Bits of v beyond the field width are dropped.
func (f Field) Set(v uint8) FieldValue { return FieldValue{f: f, v: v} }

// Get extracts the field from the current register contents.
func (f Field) Get(regs Registers) uint8 {
	return (regs.Get(f.Reg) & f.mask()) >> f.Shift
}

// Modify applies the updates with one read and one write per register,
// in order of first appearance. Bits not covered by an update keep the
// value read back from hardware.
func Modify(regs Registers, updates ...FieldValue) {
	for i, u := range updates {
		if seenBefore(updates[:i], u.f.Reg) {
			continue
		}
		reg := u.f.Reg
		v := regs.Get(reg)
		for _, w := range updates[i:] {
			if w.f.Reg != reg {
				continue
			}
			m := w.f.mask()
			v = v&^m | (w.v<<w.f.Shift)&m
		}
		regs.Set(reg, v)
	}
}

func seenBefore(prev []FieldValue, r Reg) bool {
	for _, p := range prev {
		if p.f.Reg == r {
			return true
		}
	}
	return false
}
