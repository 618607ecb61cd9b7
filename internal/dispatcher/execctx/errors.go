package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingOutput indicates the output sink is required but not set.
	ErrMissingOutput = errors.New("execution context: output is required")

	// ErrMissingConfig indicates the flight configuration is required but not set.
	ErrMissingConfig = errors.New("execution context: configuration is required")

	// ErrMissingSettings indicates the settings registry is required but not set.
	ErrMissingSettings = errors.New("execution context: settings registry is required")

	// ErrMissingStore indicates the persistence collaborator is required but not set.
	ErrMissingStore = errors.New("execution context: store is required")

	// ErrMissingDevice indicates the device is required but not set.
	ErrMissingDevice = errors.New("execution context: device is required")
)
