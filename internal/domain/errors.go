package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrEmptyFile           = errors.New("uploaded file is empty")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidSortField    = errors.New("invalid sort field")
	ErrInvalidPAN          = errors.New("PAN must be exactly 10 characters")
)
