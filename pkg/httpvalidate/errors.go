package httpvalidate

import "errors"

var (
	ErrMissingContentType   = errors.New("httpvalidate: missing content type")
	ErrUnsupportedMediaType = errors.New("httpvalidate: unsupported media type")
	ErrInvalidJSON          = errors.New("httpvalidate: invalid JSON")
	ErrBodyTooLarge         = errors.New("httpvalidate: request body too large")
)
