// Package console implements the character-driven command line the
// operator types into: line editing, tab completion, control keys and
// submission of completed lines to the dispatcher.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dshills/fcconsole/internal/dispatcher"
	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/logging"
)

// BufferSize is the capacity of the line buffer.
const BufferSize = 48

// Operator-visible framing.
const (
	Prompt      = "\r\n# "
	Banner      = "\r\nEntering CLI Mode, type 'exit' to return, or 'help'\r\n"
	ClearScreen = "\033[2J\033[1;1H"
	ClearLine   = "\r\033[K"
	Erase       = "\010 \010"
)

// Control bytes.
const (
	keyEOT       = 4
	keyBackspace = 8
	keyTab       = '\t'
	keyNewline   = '\n'
	keyFormFeed  = 12
	keyReturn    = '\r'
	keyDelete    = 127

	// EnterKey switches an idle session into editing.
	EnterKey = '#'
)

// ErrLeft is returned by Run when the session leaves editing and was
// configured to stop on leave.
var ErrLeft = errors.New("console: session left")

// State is the session mode.
type State int

const (
	// StateIdle ignores input until EnterKey arrives.
	StateIdle State = iota
	// StateEditing accumulates a command line.
	StateEditing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Options configures a session.
type Options struct {
	// StopOnLeave makes Run return ErrLeft once the session leaves
	// editing (after exit, save or defaults).
	StopOnLeave bool

	// OnLeave, if set, runs each time the session returns to idle.
	OnLeave func()

	// Logger receives diagnostics. Defaults to a null logger.
	Logger *logging.Logger
}

// Session is one operator session. It is not safe for concurrent use: all
// input must be fed from a single goroutine, which Run guarantees.
type Session struct {
	d       *dispatcher.Dispatcher
	ctx     *execctx.ExecutionContext
	out     *execctx.Output
	logger  *logging.Logger
	opts    Options
	state   State
	buf     [BufferSize]byte
	n       int
	stopped bool
}

// New creates an idle session that dispatches through d. The session
// registers itself as ctx.Session and writes to ctx.Out.
func New(d *dispatcher.Dispatcher, ctx *execctx.ExecutionContext, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = logging.Null()
	}
	s := &Session{
		d:      d,
		ctx:    ctx,
		out:    ctx.Out,
		logger: opts.Logger,
		opts:   opts,
	}
	ctx.WithSession(s)
	return s
}

// State returns the current mode.
func (s *Session) State() State {
	return s.state
}

// Line returns the current contents of the line buffer.
func (s *Session) Line() string {
	return string(s.buf[:s.n])
}

// Enter switches to editing, printing the banner and prompt. It does
// nothing while already editing.
func (s *Session) Enter() {
	if s.state == StateEditing {
		return
	}
	s.state = StateEditing
	s.stopped = false
	s.reset()
	s.logger.Info("console entered")
	s.out.Print(Banner)
	s.out.Print(Prompt)
}

// Leave returns the session to idle.
func (s *Session) Leave() {
	if s.state == StateIdle {
		return
	}
	s.state = StateIdle
	s.reset()
	if s.opts.StopOnLeave {
		s.stopped = true
	}
	s.logger.Info("console left")
	if s.opts.OnLeave != nil {
		s.opts.OnLeave()
	}
}

// Feed processes one input byte.
func (s *Session) Feed(c byte) {
	if s.state == StateIdle {
		if c == EnterKey {
			s.Enter()
		}
		return
	}

	switch {
	case c == keyTab || c == '?':
		s.complete()

	case c == keyEOT && s.n == 0:
		s.dispatch("exit")

	case c == keyFormFeed:
		s.out.Print(ClearScreen)
		s.out.Print(Prompt)
		_, _ = s.out.Write(s.buf[:s.n])

	case (c == keyReturn || c == keyNewline) && s.n > 0:
		s.out.Print("\r\n")
		line := s.Line()
		s.reset()
		s.dispatch(line)

	case c == keyDelete || c == keyBackspace:
		if s.n > 0 {
			s.n--
			s.out.Print(Erase)
		}

	case s.n < BufferSize && c >= ' ' && c <= '~':
		if s.n == 0 && c == ' ' {
			return
		}
		s.buf[s.n] = c
		s.n++
		_ = s.out.WriteByte(c)
	}
}

// dispatch runs a line and reprints the prompt if the command left the
// session editing.
func (s *Session) dispatch(line string) {
	s.d.Dispatch(s.ctx, line)
	if s.state == StateEditing {
		s.out.Print(Prompt)
	}
}

func (s *Session) reset() {
	s.buf = [BufferSize]byte{}
	s.n = 0
}

// Run feeds bytes read from r into the session until ctx is cancelled, r
// reaches EOF, a transport error occurs, or (with StopOnLeave) the session
// leaves editing.
//
// Reads happen on a separate goroutine; every Feed happens on the calling
// goroutine. The reader goroutine exits once Run returns, unless it is
// blocked in Read; closing r releases it.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type chunk struct {
		data []byte
		err  error
	}
	chunks := make(chan chunk)

	go func() {
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				select {
				case chunks <- chunk{data: data}:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				select {
				case chunks <- chunk{err: err}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-chunks:
			if c.err != nil {
				if errors.Is(c.err, io.EOF) {
					return nil
				}
				return fmt.Errorf("console: read: %w", c.err)
			}
			for _, b := range c.data {
				s.Feed(b)
				if err := s.out.Err(); err != nil {
					return fmt.Errorf("console: write: %w", err)
				}
				if s.stopped {
					return ErrLeft
				}
			}
		}
	}
}
