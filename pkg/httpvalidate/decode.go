package httpvalidate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxBodySize limits the request bodies read by DecodeJSON.
const MaxBodySize = 1 << 20

// DecodeJSON reads a single JSON value of type T from the request body.
// Unknown fields and trailing data are rejected.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var v T

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return v, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return v, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return v, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		case errors.Is(err, io.EOF):
			return v, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		default:
			return v, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return v, fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}
	return v, nil
}
