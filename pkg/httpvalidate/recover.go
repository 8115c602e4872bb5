package httpvalidate

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Recover is middleware that answers panics with a 500 error envelope.
// http.ErrAbortHandler is re-raised so net/http can abort the response.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Component("httpvalidate"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}

				msg := "panic recovered"
				if validator.IsUsageError(rec) {
					msg = "validation rule misuse"
				}
				log.ErrorContext(r.Context(), msg,
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					logger.Error(err),
				)
				_ = write(w, http.StatusInternalServerError, Response{
					Code: CodeInternalError,
					Error: &ErrorDetail{
						Code:    CodeInternalError,
						Message: http.StatusText(http.StatusInternalServerError),
					},
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
