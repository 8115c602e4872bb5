package httpvalidate_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/httpvalidate"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httpvalidate.Response {
	t.Helper()
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body httpvalidate.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	t.Run("report becomes 422 with details", func(t *testing.T) {
		report := validator.Report{
			{ID: validator.Key("email"), Message: "must be a valid email address"},
			{ID: validator.Key("password"), Message: "must be at least 8 characters long"},
			{ID: validator.Key("password"), Message: "must contain at least one digit"},
		}
		rec := httptest.NewRecorder()
		require.NoError(t, httpvalidate.WriteError(rec, fmt.Errorf("signup: %w", report)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeResponse(t, rec)
		assert.Equal(t, httpvalidate.CodeValidationError, body.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, map[string][]string{
			"email":    {"must be a valid email address"},
			"password": {"must be at least 8 characters long", "must contain at least one digit"},
		}, body.Error.Details)
	})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"bad json", fmt.Errorf("%w: eof", httpvalidate.ErrInvalidJSON), http.StatusBadRequest, httpvalidate.CodeBadRequest},
		{"media type", httpvalidate.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, httpvalidate.CodeUnsupportedMedia},
		{"missing type", httpvalidate.ErrMissingContentType, http.StatusUnsupportedMediaType, httpvalidate.CodeUnsupportedMedia},
		{"too large", httpvalidate.ErrBodyTooLarge, http.StatusRequestEntityTooLarge, httpvalidate.CodeTooLarge},
		{"unknown", errors.New("db password is hunter2"), http.StatusInternalServerError, httpvalidate.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, httpvalidate.WriteError(rec, tt.err))
			assert.Equal(t, tt.status, rec.Code)
			body := decodeResponse(t, rec)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "hunter2")
		})
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, httpvalidate.WriteJSON(rec, http.StatusCreated, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"code":"ok","data":{"id":"1"}}`, rec.Body.String())
}
