package document

import "errors"

// Document-related errors
var (
	ErrEmptyName        = errors.New("document name cannot be empty")
	ErrEmptyData        = errors.New("document payload cannot be empty")
	ErrInvalidID        = errors.New("invalid document ID")
	ErrDocumentNotFound = errors.New("document not found")
)
