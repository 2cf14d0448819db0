package link

import "errors"

// Link-related errors
var (
	ErrEmptyTitle   = errors.New("link title cannot be empty")
	ErrEmptyURL     = errors.New("link URL cannot be empty")
	ErrInvalidID    = errors.New("invalid link ID")
	ErrLinkNotFound = errors.New("link not found")
)
