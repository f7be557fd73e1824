package api

import "errors"

var (
	// ErrUnavailable marks transport failures: connection errors, timeouts,
	// and responses whose body is not a parseable envelope.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnauthorized is returned when the backend rejects the auth token.
	ErrUnauthorized = errors.New("unauthorized")
)

// RejectedError is a well-formed backend refusal: the envelope arrived with
// success=false. Message is the backend's verbatim explanation and is meant
// to be shown to the user (bad credentials, duplicate email, ownership
// violation and the like).
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// RejectionMessage extracts the backend message if err is a RejectedError,
// otherwise returns "".
func RejectionMessage(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message
	}
	return ""
}
