// Package handlers implements the console commands.
//
// Every handler writes its result, including every failure, as operator
// text through the execution context and returns normally. Messages and
// their CRLF terminators are part of the console's wire contract:
// configurator tools parse them.
//
// Commands returns the sorted command table wired to these handlers.
package handlers
