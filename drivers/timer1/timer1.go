package timer1

import "timerpwm-go/errcode"

// Config selects the prescaler, the first TOP and the system clock the
// frequency maths works from.
type Config struct {
	Prescale   PrescaleMode
	InitialTop uint16
	ClockHz    uint32 // if 0, DefaultClockHz
}

// Device is the configured timer. It owns the register window and the
// output pin; only TOP and the duty compare change after Configure.
type Device struct {
	regs     Registers
	pin      OutputPin
	prescale PrescaleMode
	clockHz  uint32

	top  uint16 // OCR1A
	duty uint16 // OCR1B
}

// Configure puts Timer1 into fast PWM (mode 15) with inverting compare
// output, starts it with cfg.Prescale, loads TOP = InitialTop and
// duty = InitialTop/2, then drives the output pin.
//
// Mode, compare output and clock select go out as one field update that
// keeps every other bit of TCCR1A/TCCR1B as found. On error nothing has
// been written.
func Configure(regs Registers, pin OutputPin, cfg Config) (*Device, error) {
	const op = "timer1.Configure"
	if regs == nil || pin == nil {
		return nil, errcode.Wrap(errcode.InvalidParams, op, "nil registers or pin")
	}
	if !cfg.Prescale.Valid() {
		return nil, errcode.Wrap(errcode.InvalidPrescale, op, "")
	}
	clk := cfg.ClockHz
	if clk == 0 {
		clk = DefaultClockHz
	}
	d := &Device{
		regs:     regs,
		pin:      pin,
		prescale: cfg.Prescale,
		clockHz:  clk,
	}

	Modify(regs,
		WGM1Low.Set(wgmFastPWMTopOCR1A&0b11),
		COM1A.Set(comInverting),
		COM1B.Set(comInverting),
		WGM1High.Set(wgmFastPWMTopOCR1A>>2),
		CS1.Set(cfg.Prescale.Bits()),
	)
	d.SetSquareWave(cfg.InitialTop)
	pin.ConfigureOutput()
	return d, nil
}

// SetTop writes OCR1A only. The value is not checked: any 16-bit TOP is
// accepted by the hardware and yields the matching frequency.
func (d *Device) SetTop(top uint16) {
	d.regs.Set16(OCR1AL, top)
	d.top = top
}

// SetDuty writes the OCR1B compare only.
func (d *Device) SetDuty(level uint16) {
	d.regs.Set16(OCR1BL, level)
	d.duty = level
}

// SetSquareWave writes TOP and a half-period duty compare.
func (d *Device) SetSquareWave(top uint16) {
	d.SetTop(top)
	d.SetDuty(top / 2)
}

// Silence parks the duty compare on TOP; in inverting mode the output
// then stays low while the timer keeps running.
func (d *Device) Silence() {
	d.SetDuty(d.top)
}

// SetFrequency retunes to hz with a square wave. A rejected frequency
// leaves the registers untouched.
func (d *Device) SetFrequency(hz uint32) error {
	top, err := TopForFrequency(hz, d.prescale, d.clockHz)
	if err != nil {
		return err
	}
	d.SetSquareWave(top)
	return nil
}

// SetPeriod retunes to a wave period in nanoseconds. A zero period is a
// rest and silences the output.
func (d *Device) SetPeriod(ns uint64) error {
	if ns == 0 {
		d.Silence()
		return nil
	}
	top, err := TopForPeriod(ns, d.prescale, d.clockHz)
	if err != nil {
		return err
	}
	d.SetSquareWave(top)
	return nil
}

func (d *Device) Top() uint16            { return d.top }
func (d *Device) Duty() uint16           { return d.duty }
func (d *Device) Prescale() PrescaleMode { return d.prescale }
func (d *Device) ClockHz() uint32        { return d.clockHz }

// Frequency is the output frequency for the current TOP.
func (d *Device) Frequency() uint32 {
	return FrequencyForTop(d.top, d.prescale, d.clockHz)
}
