package handlers

import (
	"strings"

	"github.com/dshills/fcconsole/internal/dispatcher"
	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/dispatcher/handler"
)

// Command names.
const (
	CmdCMix     = "cmix"
	CmdDefaults = "defaults"
	CmdExit     = "exit"
	CmdFeature  = "feature"
	CmdHelp     = "help"
	CmdMap      = "map"
	CmdMixer    = "mixer"
	CmdSave     = "save"
	CmdSet      = "set"
	CmdStatus   = "status"
	CmdVersion  = "version"
)

// Commands returns the console command table.
func Commands() *dispatcher.Table {
	var table *dispatcher.Table
	help := handler.HandlerFunc(func(ctx *execctx.ExecutionContext, _ string) {
		Help(ctx, table)
	})

	table = dispatcher.MustNewTable(
		dispatcher.Command{Name: CmdCMix, Help: "design custom mixer", Handler: handler.HandlerFunc(CMix)},
		dispatcher.Command{Name: CmdDefaults, Help: "reset to defaults and reboot", Handler: handler.HandlerFunc(Defaults)},
		dispatcher.Command{Name: CmdExit, Help: "no save and reboot", Handler: handler.HandlerFunc(Exit)},
		dispatcher.Command{Name: CmdFeature, Help: "list or -val or val", Handler: handler.HandlerFunc(Feature)},
		dispatcher.Command{Name: CmdHelp, Help: "", Handler: help},
		dispatcher.Command{Name: CmdMap, Help: "mapping of rc channel order", Handler: handler.HandlerFunc(Map)},
		dispatcher.Command{Name: CmdMixer, Help: "mixer name or list", Handler: handler.HandlerFunc(Mixer)},
		dispatcher.Command{Name: CmdSave, Help: "save and reboot", Handler: handler.HandlerFunc(Save)},
		dispatcher.Command{Name: CmdSet, Help: "name=value or blank or * for list", Handler: handler.HandlerFunc(Set)},
		dispatcher.Command{Name: CmdStatus, Help: "show system status", Handler: handler.HandlerFunc(Status)},
		dispatcher.Command{Name: CmdVersion, Help: "", Handler: handler.HandlerFunc(Version)},
	)
	return table
}

// Help lists every command with its help text.
func Help(ctx *execctx.ExecutionContext, table *dispatcher.Table) {
	ctx.Out.Print("Available commands:\r\n")
	for _, c := range table.Commands() {
		ctx.Out.Printf("%s\t%s\r\n", c.Name, c.Help)
	}
}

// isListKeyword reports whether args abbreviates "list".
func isListKeyword(args string) bool {
	return len(args) <= len("list") && strings.EqualFold(args, "list"[:len(args)])
}
