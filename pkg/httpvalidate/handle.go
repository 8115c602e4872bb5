package httpvalidate

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// HandlerFunc receives a request body that passed validation.
type HandlerFunc[T any] func(w http.ResponseWriter, r *http.Request, value T)

// Handle decodes the body into T, checks it with rule and calls next with
// the value returned by the rule. Decoding and validation failures are
// logged at warn level and answered by WriteError.
func Handle[T any](log *slog.Logger, rule validator.Rule[T], next HandlerFunc[T]) http.HandlerFunc {
	log = log.With(logger.Component("httpvalidate"))

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := DecodeJSON[T](r)
		if err != nil {
			log.WarnContext(ctx, "request body rejected", logger.Error(err))
			_ = WriteError(w, err)
			return
		}

		value, err := rule.Check(body, validator.NoID)
		if err != nil {
			log.WarnContext(ctx, "validation failed",
				slog.String("path", r.URL.Path),
				logger.Report(err),
			)
			_ = WriteError(w, err)
			return
		}

		next(w, r, value)
	}
}
