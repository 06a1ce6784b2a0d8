package configstore

import "errors"

// Common errors for config store operations.
var (
	// ErrInvalidDriver indicates an unknown store driver name.
	ErrInvalidDriver = errors.New("invalid store driver")

	// ErrInvalidConfig indicates a driver was selected without its
	// required connection (redis client, pgx pool).
	ErrInvalidConfig = errors.New("invalid store configuration")

	// ErrInvalidKey indicates a key outside the two-member enumeration.
	ErrInvalidKey = errors.New("invalid config key")

	// ErrClosed indicates an operation on a closed store.
	ErrClosed = errors.New("store is closed")
)
