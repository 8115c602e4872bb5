package httpvalidate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Response is the JSON envelope written by this package.
type Response struct {
	Code  string       `json:"code,omitempty"`
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

const (
	CodeOK               = "ok"
	CodeValidationError  = "validation_error"
	CodeBadRequest       = "bad_request"
	CodeUnsupportedMedia = "unsupported_media_type"
	CodeTooLarge         = "request_too_large"
	CodeInternalError    = "internal_error"
)

// WriteJSON writes data with status inside the success envelope.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	return write(w, status, Response{Code: CodeOK, Data: data})
}

// WriteError maps err to a status and writes the error envelope. A
// validator.Report, also when wrapped, becomes 422 with per-field details.
// Decoding errors become 4xx. Anything else is a 500 whose message does not
// leak err.
func WriteError(w http.ResponseWriter, err error) error {
	status, detail := classify(err)
	return write(w, status, Response{Code: detail.Code, Error: detail})
}

func classify(err error) (int, *ErrorDetail) {
	if report, ok := validator.AsReport(err); ok {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    CodeValidationError,
			Message: "validation failed",
			Details: report.Messages(),
		}
	}

	switch {
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: CodeUnsupportedMedia, Message: err.Error()}
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: CodeTooLarge, Message: err.Error()}
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, &ErrorDetail{Code: CodeBadRequest, Message: err.Error()}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

func write(w http.ResponseWriter, status int, body Response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
