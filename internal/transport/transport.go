// Package transport provides the byte streams a console session runs over:
// a hardware serial port, the controlling terminal, and an in-memory mock
// for tests.
package transport

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Transport is a bidirectional byte stream carrying console traffic.
type Transport interface {
	io.ReadWriteCloser

	// Name identifies the endpoint in logs.
	Name() string
}

// Flusher is implemented by transports that can discard input received
// but not yet read.
type Flusher interface {
	Flush() error
}

// Flush discards pending input on t if it supports it.
func Flush(t Transport) error {
	if f, ok := t.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Kind selects a transport implementation.
type Kind string

const (
	KindSerial   Kind = "serial"
	KindTerminal Kind = "terminal"
)

// ErrUnknownKind is returned by Open for an unsupported transport kind.
var ErrUnknownKind = errors.New("unknown transport kind")

// Options holds everything needed to open any transport kind.
type Options struct {
	Kind     Kind
	Port     string
	BaudRate int
	Timeout  time.Duration
}

// Open opens the transport selected by opts.Kind.
func Open(opts Options) (Transport, error) {
	switch opts.Kind {
	case KindSerial:
		return OpenSerial(SerialConfig{
			Port:     opts.Port,
			BaudRate: opts.BaudRate,
			Timeout:  opts.Timeout,
		})
	case KindTerminal, "":
		return OpenTerminal()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, opts.Kind)
	}
}
