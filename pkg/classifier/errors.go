package classifier

import "errors"

const (
	ErrCodeDisabled     = "CLASSIFIER_DISABLED"
	ErrCodeTimeout      = "CLASSIFIER_TIMEOUT"
	ErrCodeServerError  = "CLASSIFIER_SERVER_ERROR"
	ErrCodeInvalidImage = "CLASSIFIER_INVALID_IMAGE"
)

var (
	ErrDisabled     = errors.New(ErrCodeDisabled)
	ErrTimeout      = errors.New(ErrCodeTimeout)
	ErrServerError  = errors.New(ErrCodeServerError)
	ErrInvalidImage = errors.New(ErrCodeInvalidImage)
)

var statusErrorMap = map[int]error{
	400: ErrInvalidImage,
	415: ErrInvalidImage,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}
