//go:build avr

package main

import (
	"time"

	"timerpwm-go/drivers/timer1"
	"timerpwm-go/internal/platform/boards"
	"timerpwm-go/x/ramp"
)

const (
	initialTop = 255
	sweepTop   = 125
	stepDelay  = 20 * time.Millisecond
)

func main() {
	b := boards.Selected
	println("[breathe] configuring timer1 on", b.Name)

	dev, err := timer1.Configure(timer1.MMIO{}, timer1.Pin(b.ToneOut), timer1.Config{
		Prescale:   timer1.Freq1024,
		InitialTop: initialTop,
		ClockHz:    b.ClockHz,
	})
	if err != nil {
		println("[breathe] configure failed:", err.Error())
		return
	}
	println("[breathe] running at", dev.Frequency(), "Hz")

	wait := func(d time.Duration) bool {
		time.Sleep(d)
		return true
	}
	for {
		ramp.Sweep(0, sweepTop, stepDelay, wait, dev.SetSquareWave)
	}
}
