package entity

import "errors"

var (
	// ErrNotFound: the referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPostNotFound: a comment insert hit the posts foreign key. Kept
	// distinct from ErrNotFound so callers can report "invalid post" instead
	// of a generic server error.
	ErrPostNotFound = errors.New("post does not exist")

	// ErrInvalidCredentials covers both unknown username and wrong password;
	// login must not reveal which check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError marks missing, malformed or oversized input. Its message is
// safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
