// Package dispatcher routes submitted console lines to command handlers.
package dispatcher

import (
	"runtime"
	"strings"
	"time"

	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
)

// UnknownCommand is printed when a line names no command.
const UnknownCommand = "ERR: Unknown command, try 'help'"

// Dispatcher resolves the command word of a line against a Table and runs
// its handler.
type Dispatcher struct {
	table   *Table
	config  Config
	metrics *Metrics
}

// New creates a dispatcher over table.
func New(table *Table, config Config) *Dispatcher {
	d := &Dispatcher{
		table:  table,
		config: config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with default configuration.
func NewWithDefaults(table *Table) *Dispatcher {
	return New(table, DefaultConfig())
}

// Table returns the command table.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Metrics returns the metrics collector, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// SplitLine separates the command word from its arguments. The command is
// everything before the first space; the arguments are the rest, trimmed.
func SplitLine(line string) (name, args string) {
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}
	return line, ""
}

// Dispatch runs the command named by line. It reports whether a command
// was found; an unknown command is reported to the operator.
func (d *Dispatcher) Dispatch(ctx *execctx.ExecutionContext, line string) bool {
	name, args := SplitLine(line)

	cmd, ok := d.table.Resolve(name)
	if !ok {
		ctx.Logger.Debug("unknown command %q", name)
		ctx.Out.Print(UnknownCommand)
		if d.metrics != nil {
			d.metrics.RecordUnknown()
		}
		return false
	}

	ctx.Logger.Debug("dispatch %s args=%q", cmd.Name, args)

	start := time.Now()
	panicked := false
	if d.config.RecoverFromPanic {
		panicked = d.executeWithRecovery(cmd, ctx, args)
	} else {
		cmd.Handler.Handle(ctx, args)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(cmd.Name, time.Since(start), panicked)
	}
	return true
}

// executeWithRecovery runs a handler, turning a panic into an operator
// error line and an ERROR log record.
func (d *Dispatcher) executeWithRecovery(cmd *Command, ctx *execctx.ExecutionContext, args string) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			ctx.Logger.Error("%v: %s: %v\n%s", ErrPanic, cmd.Name, r, stack[:n])
			ctx.Out.Print("ERR: Internal error\r\n")
			panicked = true
		}
	}()

	cmd.Handler.Handle(ctx, args)
	return false
}
