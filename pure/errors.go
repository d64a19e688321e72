package pure

import "errors"

var (
	// ErrNilCalculator is the panic value (wrapped) raised when a cacher is built without a calculator.
	ErrNilCalculator = errors.New("calculator must not be nil")

	// ErrNilStrategy is the panic value (wrapped) raised when NewWith or NewTryWith gets a nil KeyStrategy.
	ErrNilStrategy = errors.New("key strategy must not be nil")
)
