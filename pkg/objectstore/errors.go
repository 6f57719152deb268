package objectstore

import "errors"

const (
	ErrCodeUploadFailed = "UPLOAD_FAILED"
	ErrCodeDeleteFailed = "DELETE_FAILED"
	ErrCodeTimeout      = "STORAGE_TIMEOUT"
)

var (
	ErrUploadFailed = errors.New(ErrCodeUploadFailed)
	ErrDeleteFailed = errors.New(ErrCodeDeleteFailed)
	ErrTimeout      = errors.New(ErrCodeTimeout)
)
