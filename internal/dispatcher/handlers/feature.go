package handlers

import (
	"strings"

	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/flight"
)

// Feature shows, lists, enables or disables (with a leading '-') features.
func Feature(ctx *execctx.ExecutionContext, args string) {
	switch {
	case args == "":
		ctx.Out.Print("Enabled features: ")
		for _, f := range flight.Features() {
			if ctx.Config.FeatureEnabled(f) {
				ctx.Out.Printf("%s ", f)
			}
		}
		ctx.Out.Print("\r\n")

	case isListKeyword(args):
		ctx.Out.Print("Available features: ")
		for _, f := range flight.Features() {
			ctx.Out.Printf("%s ", f)
		}
		ctx.Out.Print("\r\n")

	default:
		name, remove := strings.CutPrefix(args, "-")
		f, ok := flight.FeatureByPrefix(name)
		if !ok {
			ctx.Out.Print("Invalid feature name...\r\n")
			return
		}

		if remove {
			ctx.Config.ClearFeature(f)
			ctx.Out.Print("Disabled ")
		} else {
			ctx.Config.SetFeature(f)
			ctx.Out.Print("Enabled ")
		}
		ctx.Logger.Info("feature %s enabled=%t", f, !remove)
		ctx.Out.Printf("%s\r\n", f)
	}
}
