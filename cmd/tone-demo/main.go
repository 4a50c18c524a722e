//go:build avr

package main

import (
	"context"
	"time"

	"timerpwm-go/drivers/timer1"
	"timerpwm-go/internal/platform/boards"
	"timerpwm-go/services/melody"
	"timerpwm-go/x/timex"

	"tinygo.org/x/drivers/tone"
)

const (
	beat = 300 * time.Millisecond
	rest = tone.Note(0)
)

// First phrase of Ode to Joy.
var tune = []tone.Note{
	tone.E4, tone.E4, tone.F4, tone.G4, tone.G4, tone.F4, tone.E4, tone.D4,
	tone.C4, tone.C4, tone.D4, tone.E4, tone.E4, tone.D4, tone.D4, rest,
}

func main() {
	time.Sleep(time.Second)
	b := boards.Selected

	// The lowest note decides how far the clock must be divided.
	lowest := timex.HzFromPeriod(tone.C4.Period())
	mode, top, err := timer1.SelectPrescale(lowest, b.ClockHz)
	if err != nil {
		println("[tone] no prescaler reaches", lowest, "Hz:", err.Error())
		return
	}
	println("[tone] prescale", mode.String(), "top", top, "on", b.Name)

	dev, err := timer1.Configure(timer1.MMIO{}, timer1.Pin(b.ToneOut), timer1.Config{
		Prescale:   mode,
		InitialTop: top,
		ClockHz:    b.ClockHz,
	})
	if err != nil {
		println("[tone] configure failed:", err.Error())
		return
	}
	dev.Silence()

	steps := make([]melody.Step, 0, len(tune))
	for i, n := range tune {
		d := beat
		if i == len(tune)-2 {
			d = 2 * beat
		}
		steps = append(steps, melody.Step{Pitch: n, Duration: d})
	}

	p := melody.New(dev, melody.SleepBlocking)
	p.SetGap(30 * time.Millisecond)
	ctx := context.Background()
	for {
		n, err := p.Play(ctx, steps)
		if err != nil {
			println("[tone] stopped:", err.Error())
			return
		}
		println("[tone] played", n, "notes")
		time.Sleep(time.Second)
	}
}
