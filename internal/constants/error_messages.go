package constants

const (
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeSightingNotFound    = "SIGHTING_NOT_FOUND"
	ErrCodeCleanupNotFound     = "CLEANUP_NOT_FOUND"
	ErrCodeAlreadyDecided      = "ALREADY_DECIDED"
	ErrCodeInvalidImage        = "INVALID_IMAGE"
	ErrCodeDuplicateImage      = "DUPLICATE_IMAGE"
	ErrCodeNotInCollection     = "NOT_IN_COLLECTION"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

const (
	ErrMsgUserNotFound        = "user not found"
	ErrMsgSightingNotFound    = "sighting not found"
	ErrMsgCleanupNotFound     = "cleanup not found"
	ErrMsgAlreadyDecided      = "submission already decided"
	ErrMsgInvalidImage        = "uploaded file is not a readable image"
	ErrMsgDuplicateImage      = "image matches a previously submitted photo"
	ErrMsgNotInCollection     = "creature has not been discovered yet"
	ErrMsgInsufficientBalance = "insufficient points"
	ErrMsgInternalError       = "Internal server error"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
	ErrMsgValidationFailed    = "request validation failed"
)

var errorMessages = map[string]string{
	ErrCodeUserNotFound:        ErrMsgUserNotFound,
	ErrCodeSightingNotFound:    ErrMsgSightingNotFound,
	ErrCodeCleanupNotFound:     ErrMsgCleanupNotFound,
	ErrCodeAlreadyDecided:      ErrMsgAlreadyDecided,
	ErrCodeInvalidImage:        ErrMsgInvalidImage,
	ErrCodeDuplicateImage:      ErrMsgDuplicateImage,
	ErrCodeNotInCollection:     ErrMsgNotInCollection,
	ErrCodeInsufficientBalance: ErrMsgInsufficientBalance,
	ErrCodeInternalError:       ErrMsgInternalError,
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:    ErrMsgValidationFailed,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeNotInCollection, ErrCodeInvalidImage:
		return 400
	case ErrCodeUserNotFound, ErrCodeSightingNotFound, ErrCodeCleanupNotFound:
		return 404
	case ErrCodeInsufficientBalance, ErrCodeDuplicateImage, ErrCodeAlreadyDecided:
		return 409
	case ErrCodeValidationFailed:
		return 422
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
