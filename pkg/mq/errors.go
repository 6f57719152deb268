package mq

type retryableError struct {
	err error
}

func (e retryableError) Error() string { return e.err.Error() }

func (e retryableError) Unwrap() error { return e.err }

// Temporary marks err as transient so the consumer requeues the delivery
// instead of dropping it.
func Temporary(err error) error {
	return retryableError{err: err}
}
