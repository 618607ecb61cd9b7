package handlers

import (
	"math"
	"strings"

	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/flight"
	"github.com/dshills/fcconsole/internal/numparse"
	"github.com/dshills/fcconsole/internal/settings"
)

// mixSanityLimit is the largest per-axis weight sum a balanced mix may have.
const mixSanityLimit = 0.01

// Mixer shows, lists or selects the mixer geometry.
func Mixer(ctx *execctx.ExecutionContext, args string) {
	switch {
	case args == "":
		ctx.Out.Printf("Current mixer: %s\r\n", ctx.Config.Mixer())

	case isListKeyword(args):
		ctx.Out.Print("Available mixers: ")
		for _, m := range flight.Mixers() {
			ctx.Out.Printf("%s ", m)
		}
		ctx.Out.Print("\r\n")

	default:
		m, ok := flight.MixerByPrefix(args)
		if !ok {
			ctx.Out.Print("Invalid mixer type...\r\n")
			return
		}
		ctx.Config.SetMixer(m)
		ctx.Logger.Info("mixer set to %s", m)
		ctx.Out.Printf("Mixer set to %s\r\n", m)
	}
}

// CMix edits the custom motor mix.
//
//	cmix                          print the table and its sanity check
//	cmix load <mixer>             replace the table with a preset
//	cmix <n> <thr> <roll> <pitch> <yaw>  write row n (1-based)
//
// A row is written only when the index is valid and all four weights are
// present.
func CMix(ctx *execctx.ExecutionContext, args string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		printCustomMix(ctx)
		return
	}

	if len(args) >= 4 && strings.EqualFold(args[:4], "load") {
		_, name, _ := strings.Cut(args, " ")
		m, ok := flight.MixerByPrefix(strings.TrimSpace(name))
		if !ok {
			ctx.Out.Print("Invalid mixer type...\r\n")
			return
		}
		ctx.Config.LoadMix(m)
		ctx.Logger.Info("custom mix loaded from %s", m)
		ctx.Out.Printf("Loaded %s mix...\r\n", m)
		printCustomMix(ctx)
		return
	}

	n, ok := numparse.ParseInt(fields[0])
	if !ok || n < 1 || n > flight.MaxMotors {
		ctx.Out.Printf("Motor number must be between 1 and %d\r\n", flight.MaxMotors)
		return
	}
	if len(fields) != 5 {
		ctx.Out.Print("Wrong number of arguments, needs idx thr roll pitch yaw\r\n")
		return
	}

	row := flight.MotorMix{
		Throttle: numparse.ParseFloat(fields[1]),
		Roll:     numparse.ParseFloat(fields[2]),
		Pitch:    numparse.ParseFloat(fields[3]),
		Yaw:      numparse.ParseFloat(fields[4]),
	}
	ctx.Config.CustomMixer[n-1] = row
	ctx.Logger.Info("custom mix row %d set to %+v", n, row)
	printCustomMix(ctx)
}

func printCustomMix(ctx *execctx.ExecutionContext) {
	ctx.Out.Print("Custom mixer: \r\nMotor\tThr\tRoll\tPitch\tYaw\r\n")

	var sums [3]float32
	for i, m := range ctx.Config.ActiveMotors() {
		ctx.Out.Printf("#%d:\t%s\t%s\t%s\t%s\r\n", i+1,
			settings.FormatFloat(m.Throttle),
			settings.FormatFloat(m.Roll),
			settings.FormatFloat(m.Pitch),
			settings.FormatFloat(m.Yaw))
		sums[0] += m.Roll
		sums[1] += m.Pitch
		sums[2] += m.Yaw
	}

	ctx.Out.Print("Sanity check:\t")
	for _, s := range sums {
		if math.Abs(float64(s)) > mixSanityLimit {
			ctx.Out.Print("NG\t")
		} else {
			ctx.Out.Print("OK\t")
		}
	}
	ctx.Out.Print("\r\n")
}
