package message

import "errors"

// ErrDuplicateMessage reports that a message_id already exists. It maps
// to a 409 at the transport layer and signals a prior successful write,
// so callers should not blindly retry.
var ErrDuplicateMessage = errors.New("message_id already exists")

// ValidationError is a request-shape failure: always the client's
// fault, never retried by the server.
type ValidationError struct {
	Message string
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func invalid(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func invalidWithDetails(msg, details string) *ValidationError {
	return &ValidationError{Message: msg, Details: details}
}
