package nn

import "errors"

// Construction and shape errors. Callers match them with errors.Is.
var (
	// ErrOutputInitialized is returned when the build sequence is violated:
	// a hidden layer is added, or the output stage attached again, after
	// the output stage exists.
	ErrOutputInitialized = errors.New("output layer already initialized")

	// ErrOutputNotInitialized is returned by operations that need the
	// output stage before it has been attached.
	ErrOutputNotInitialized = errors.New("output layer not initialized")

	// ErrNoForwardPass is returned by Backward when no input has been seen.
	ErrNoForwardPass = errors.New("backward called before forward")

	// ErrShapeMismatch is returned when a vector length does not match the
	// width it is fed into.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidSize is returned for non-positive layer widths.
	ErrInvalidSize = errors.New("invalid layer size")

	ErrUnknownActivation = errors.New("unknown activation")
	ErrUnknownLoss       = errors.New("unknown loss")
)
