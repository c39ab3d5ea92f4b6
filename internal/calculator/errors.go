package calculator

import "errors"

// Error kinds surfaced to HTTP clients. Everything that is not an
// ErrInvalidRequest is reported as a computation failure.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrComputation    = errors.New("computation failed")
)

// Client-facing messages. Underlying causes are only logged.
const (
	msgInvalidType = "Invalid calculator type"
	msgInvalidBody = "Invalid request body"

	// MsgGraphFailed is the body of every 500 response, panics included.
	MsgGraphFailed = "Graph generation failed"
)
