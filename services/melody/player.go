// Package melody plays a sequence of pitched steps on a tunable square-wave
// output such as the Timer1 driver.
package melody

import (
	"context"
	"time"
)

// Pitch is anything that knows its wave period in nanoseconds.
// tinygo.org/x/drivers/tone.Note satisfies it; a zero period is a rest.
type Pitch interface {
	Period() uint64
}

// Step is one note (or rest, if Pitch is nil) held for Duration.
type Step struct {
	Pitch    Pitch
	Duration time.Duration
}

// Tuner is the output the player drives.
type Tuner interface {
	SetPeriod(ns uint64) error
	Silence()
}

// Sleep waits for d and reports false if ctx ended first.
type Sleep func(ctx context.Context, d time.Duration) bool

// Player sequences steps. It is not safe for concurrent use; the output it
// drives has a single owner.
type Player struct {
	out   Tuner
	sleep Sleep
	gap   time.Duration // articulation silence carved out of each note
}

// New returns a player for out. A nil sleep uses SleepContext.
func New(out Tuner, sleep Sleep) *Player {
	if sleep == nil {
		sleep = SleepContext
	}
	return &Player{out: out, sleep: sleep}
}

// SetGap sets the silence inserted at the end of every sounded note.
func (p *Player) SetGap(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.gap = d
}

// Play runs steps in order and silences the output when done. A pitch the
// output rejects is logged and held as a rest. It returns the number of
// notes sounded, and ctx.Err() if cancelled.
func (p *Player) Play(ctx context.Context, steps []Step) (int, error) {
	defer p.out.Silence()
	played := 0
	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			return played, err
		}
		sounding := p.start(i, st)
		if sounding {
			played++
		}
		hold, gap := st.Duration, time.Duration(0)
		if sounding && p.gap > 0 && p.gap < hold {
			hold, gap = hold-p.gap, p.gap
		}
		if !p.sleep(ctx, hold) {
			return played, ctx.Err()
		}
		if gap > 0 {
			p.out.Silence()
			if !p.sleep(ctx, gap) {
				return played, ctx.Err()
			}
		}
	}
	return played, nil
}

func (p *Player) start(i int, st Step) bool {
	if st.Pitch == nil {
		p.out.Silence()
		return false
	}
	ns := st.Pitch.Period()
	if err := p.out.SetPeriod(ns); err != nil {
		println("[melody] step", i, "skipped:", err.Error())
		p.out.Silence()
		return false
	}
	return ns != 0
}

// SleepBlocking waits with time.Sleep and checks ctx only afterwards. It
// needs no timers, so it works on TinyGo targets built with scheduler=none
// (the AVR default).
func SleepBlocking(ctx context.Context, d time.Duration) bool {
	if d > 0 {
		time.Sleep(d)
	}
	return ctx.Err() == nil
}

// SleepContext blocks for d or until ctx is done. It relies on runtime
// timers and therefore on a goroutine scheduler; use SleepBlocking on
// targets without one.
func SleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
