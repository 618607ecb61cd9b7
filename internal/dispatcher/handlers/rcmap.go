package handlers

import (
	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/flight"
)

// Map shows the RC channel assignment, first applying args when it is a
// full eight letter assignment.
func Map(ctx *execctx.ExecutionContext, args string) {
	if len(args) == flight.RCChannels {
		m, err := flight.ParseRCMap(args)
		if err != nil {
			ctx.Out.Printf("Must be any order of %s\r\n", flight.RCChannelLetters)
			return
		}
		ctx.Config.RCMap = m
		ctx.Logger.Info("rc map set to %s", flight.RCMapString(m))
	}
	ctx.Out.Printf("Current assignment: %s\r\n", flight.RCMapString(ctx.Config.RCMap))
}
