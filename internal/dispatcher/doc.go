// Package dispatcher routes submitted console lines to command handlers.
//
// # Command Table
//
// The command set is fixed when the console is built. A Table holds the
// commands in ascending case-insensitive name order; NewTable rejects any
// table that is unsorted or names a command twice, so the binary search in
// Resolve can never silently misroute.
//
// Resolve requires the whole command word to match a name. Prefix matching
// of command names happens only in Complete, which the console uses for
// tab completion.
//
// # Dispatch
//
// A submitted line is split at its first space:
//
//	set midrc=1500
//	^^^ ^^^^^^^^^^
//	name  args
//
// The handler receives the trimmed remainder and an execctx.ExecutionContext
// carrying the output sink, the live flight configuration and its settings
// registry, and the persistence and device collaborators. A line that names
// no command prints UnknownCommand.
//
// With panic recovery enabled (the default) a handler panic is logged and
// reported to the operator as an internal error; the session keeps running.
//
// # Usage
//
//	table := dispatcher.MustNewTable(
//	    dispatcher.Command{Name: "help", Help: "", Handler: helpHandler},
//	    dispatcher.Command{Name: "set", Help: "name=value or blank or * for list", Handler: setHandler},
//	)
//	d := dispatcher.NewWithDefaults(table)
//	d.Dispatch(ctx, "set midrc=1500")
package dispatcher
