// Package handler provides the handler interface for command dispatch.
package handler

import "github.com/dshills/fcconsole/internal/dispatcher/execctx"

// Handler executes one console command. args is the remainder of the line
// after the command name, trimmed of surrounding whitespace.
//
// Handlers report every failure as operator text through ctx.Out and
// return normally.
type Handler interface {
	Handle(ctx *execctx.ExecutionContext, args string)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx *execctx.ExecutionContext, args string)

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx *execctx.ExecutionContext, args string) {
	f(ctx, args)
}
