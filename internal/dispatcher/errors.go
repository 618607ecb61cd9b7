package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnsortedTable indicates command names were not in ascending order.
	ErrUnsortedTable = errors.New("dispatcher: command table is not sorted")

	// ErrDuplicateCommand indicates two commands share a name.
	ErrDuplicateCommand = errors.New("dispatcher: duplicate command")

	// ErrInvalidCommand indicates a command with no name or handler.
	ErrInvalidCommand = errors.New("dispatcher: invalid command")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")
)
