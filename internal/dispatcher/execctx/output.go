package execctx

import (
	"fmt"
	"io"
)

// Output is the operator byte sink. The first write error is kept and all
// later writes are dropped, so handlers can print freely and the session
// checks Err once per command.
type Output struct {
	w   io.Writer
	err error
}

// NewOutput wraps w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	if o.err != nil {
		return 0, o.err
	}
	n, err := o.w.Write(p)
	if err != nil {
		o.err = err
	}
	return n, err
}

// Print writes s verbatim.
func (o *Output) Print(s string) {
	_, _ = io.WriteString(o, s)
}

// Printf writes formatted text.
func (o *Output) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o, format, args...)
}

// WriteByte writes a single byte.
func (o *Output) WriteByte(c byte) error {
	_, err := o.Write([]byte{c})
	return err
}

// Err returns the first write error, if any.
func (o *Output) Err() error {
	return o.err
}
