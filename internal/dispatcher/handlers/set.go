package handlers

import (
	"strings"

	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
)

// Set lists, shows or assigns settings.
//
//	set            list every setting
//	set *          list every setting with its bounds
//	set name       show one setting
//	set name=value assign a setting
//
// Names match by prefix; the first setting in table order wins.
func Set(ctx *execctx.ExecutionContext, args string) {
	if args == "" || args == "*" {
		ctx.Out.Print("Current settings: \r\n")
		_ = ctx.Settings.List(ctx.Out, args == "*")
		return
	}

	name, value, assign := strings.Cut(args, "=")
	s := ctx.Settings.Find(strings.TrimSpace(name))
	if s == nil {
		ctx.Out.Print("ERR: Unknown variable name\r\n")
		return
	}

	if !assign {
		ctx.Out.Printf("%s = ", s.Name)
		_ = ctx.Settings.Print(ctx.Out, s, false)
		ctx.Out.Print("\r\n")
		return
	}

	old := s.String()
	if err := s.Set(strings.TrimSpace(value)); err != nil {
		ctx.Logger.Debug("set rejected: %v", err)
		ctx.Out.Print("ERR: Value assignment out of range\r\n")
		return
	}

	ctx.Logger.Info("setting %s changed %s -> %s", s.Name, old, s.String())
	ctx.Out.Printf("%s set to ", s.Name)
	_ = ctx.Settings.Print(ctx.Out, s, false)
}
