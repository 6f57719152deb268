package service

import "errors"

const (
	ErrCodeDatabase = "DATABASE_ERROR"
)

var ErrAlreadyDecided = errors.New("submission already decided")

// Error ties a machine-readable code to its cause. The HTTP layer maps the
// code to a status and message; the cause stays in the logs.
type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
