// Command top-calc works out Timer1 TOP values on the host and shows the
// register image the driver would program.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"timerpwm-go/drivers/timer1"
	"timerpwm-go/x/mathx"
	"timerpwm-go/x/timex"

	"github.com/urfave/cli/v3"
)

var debugEnabled bool

func debugf(w io.Writer, format string, args ...any) {
	if debugEnabled {
		fmt.Fprintf(w, "[debug] "+format+"\n", args...)
	}
}

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "top-calc",
		Usage:  "Timer1 fast PWM TOP calculator",
		Writer: out,
		Flags: []cli.Flag{
			&cli.Uint32Flag{
				Name:  "clock",
				Usage: "system clock in Hz",
				Value: timer1.DefaultClockHz,
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "print intermediate values",
				Action: func(_ context.Context, _ *cli.Command, b bool) error {
					debugEnabled = b
					return nil
				},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "top",
				Usage: "TOP for a target frequency",
				Flags: []cli.Flag{
					prescaleFlag(),
					&cli.Uint32Flag{Name: "freq", Aliases: []string{"f"}, Usage: "target frequency in Hz", Required: true},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					mode, err := timer1.ParsePrescale(cmd.String("prescale"))
					if err != nil {
						return err
					}
					hz, clk := cmd.Uint32("freq"), cmd.Uint32("clock")
					debugf(out, "timer clock %d Hz", clk/mode.Divisor())
					top, err := timer1.TopForFrequency(hz, mode, clk)
					if err != nil {
						return err
					}
					printResult(out, hz, mode, top, clk)
					return nil
				},
			},
			{
				Name:  "period",
				Usage: "TOP for a wave period in nanoseconds",
				Flags: []cli.Flag{
					prescaleFlag(),
					&cli.Uint64Flag{Name: "ns", Usage: "period in nanoseconds", Required: true},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					mode, err := timer1.ParsePrescale(cmd.String("prescale"))
					if err != nil {
						return err
					}
					ns, clk := cmd.Uint64("ns"), cmd.Uint32("clock")
					top, err := timer1.TopForPeriod(ns, mode, clk)
					if err != nil {
						return err
					}
					printResult(out, timex.HzFromPeriod(ns), mode, top, clk)
					return nil
				},
			},
			{
				Name:  "select",
				Usage: "smallest prescaler that reaches a frequency",
				Flags: []cli.Flag{
					&cli.Uint32Flag{Name: "freq", Aliases: []string{"f"}, Usage: "target frequency in Hz", Required: true},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					hz, clk := cmd.Uint32("freq"), cmd.Uint32("clock")
					mode, top, err := timer1.SelectPrescale(hz, clk)
					if err != nil {
						return err
					}
					printResult(out, hz, mode, top, clk)
					return nil
				},
			},
			{
				Name:  "freq",
				Usage: "output frequency for a TOP",
				Flags: []cli.Flag{
					prescaleFlag(),
					&cli.Uint16Flag{Name: "top", Aliases: []string{"t"}, Usage: "OCR1A value", Required: true},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					mode, err := timer1.ParsePrescale(cmd.String("prescale"))
					if err != nil {
						return err
					}
					top := cmd.Uint16("top")
					fmt.Fprintf(out, "prescale=%s top=%d freq=%dHz\n", mode, top,
						timer1.FrequencyForTop(top, mode, cmd.Uint32("clock")))
					return nil
				},
			},
			{
				Name:  "regs",
				Usage: "register image after configuring Timer1",
				Flags: []cli.Flag{
					prescaleFlag(),
					&cli.Uint16Flag{Name: "top", Aliases: []string{"t"}, Usage: "initial TOP", Value: 255},
					&cli.Uint8Flag{Name: "tccr1a", Usage: "TCCR1A contents before configuring"},
					&cli.Uint8Flag{Name: "tccr1b", Usage: "TCCR1B contents before configuring"},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					mode, err := timer1.ParsePrescale(cmd.String("prescale"))
					if err != nil {
						return err
					}
					return dumpRegisters(out, mode, cmd.Uint16("top"), cmd.Uint32("clock"),
						cmd.Uint8("tccr1a"), cmd.Uint8("tccr1b"))
				},
			},
		},
	}
}

func prescaleFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "prescale",
		Aliases: []string{"p"},
		Usage:   "clock divisor: 1, 8, 64, 256 or 1024",
		Value:   "1024",
	}
}

func printResult(out io.Writer, hz uint32, mode timer1.PrescaleMode, top uint16, clk uint32) {
	actual := timer1.FrequencyForTop(top, mode, clk)
	// Deviation in parts per million of the target.
	ppm := mathx.RoundDiv(uint64(mathx.AbsDiff(actual, hz))*1_000_000, uint64(mathx.Max(hz, 1)))
	fmt.Fprintf(out, "prescale=%s top=%d actual=%dHz error=%dppm\n", mode, top, actual, ppm)
}

type noPin struct{}

func (noPin) ConfigureOutput() {}

func dumpRegisters(out io.Writer, mode timer1.PrescaleMode, top uint16, clk uint32, tccr1a, tccr1b uint8) error {
	mem := &timer1.Memory{}
	mem.Set(timer1.TCCR1A, tccr1a)
	mem.Set(timer1.TCCR1B, tccr1b)
	mem.Reset()

	dev, err := timer1.Configure(mem, noPin{}, timer1.Config{Prescale: mode, InitialTop: top, ClockHz: clk})
	if err != nil {
		return err
	}
	debugf(out, "%d register writes", len(mem.Writes))
	fmt.Fprintf(out, "TCCR1A=0x%02X\n", mem.Get(timer1.TCCR1A))
	fmt.Fprintf(out, "TCCR1B=0x%02X\n", mem.Get(timer1.TCCR1B))
	fmt.Fprintf(out, "OCR1A=%d\n", mem.Get16(timer1.OCR1AL))
	fmt.Fprintf(out, "OCR1B=%d\n", mem.Get16(timer1.OCR1BL))
	fmt.Fprintf(out, "freq=%dHz\n", dev.Frequency())
	return nil
}
