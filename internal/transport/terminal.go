package transport

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// TerminalTransport implements Transport over the process's stdin and
// stdout. When stdin is a terminal it is switched to raw mode so every
// keystroke reaches the console unbuffered and unechoed.
type TerminalTransport struct {
	in    *os.File
	out   *os.File
	state *term.State
	once  sync.Once
}

// OpenTerminal attaches to stdin and stdout.
func OpenTerminal() (*TerminalTransport, error) {
	return openTerminal(os.Stdin, os.Stdout)
}

func openTerminal(in, out *os.File) (*TerminalTransport, error) {
	t := &TerminalTransport{in: in, out: out}
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		t.state = state
	}
	return t, nil
}

// Raw reports whether the terminal was switched to raw mode.
func (t *TerminalTransport) Raw() bool {
	return t.state != nil
}

func (t *TerminalTransport) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

func (t *TerminalTransport) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Close restores the terminal mode. It does not close stdin or stdout.
func (t *TerminalTransport) Close() error {
	var err error
	t.once.Do(func() {
		if t.state != nil {
			err = term.Restore(int(t.in.Fd()), t.state)
		}
	})
	return err
}

// Name returns "terminal".
func (t *TerminalTransport) Name() string {
	return string(KindTerminal)
}
