package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/internal/forms"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/httpvalidate"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
)

// NewRouter returns the HTTP routes of the server:
//
//	GET  /health   liveness probe
//	POST /signup   validates a forms.Signup and echoes the normalised value
//	POST /address  validates a forms.Address
func NewRouter(log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, httpvalidate.Recover(log))

	r.Get("/health", httpserver.HealthCheckHandler(log))

	r.Post("/signup", httpvalidate.Handle(log, forms.SignupRule(),
		func(w http.ResponseWriter, r *http.Request, s forms.Signup) {
			log.InfoContext(r.Context(), "signup accepted", slog.String("email", s.Email))
			s.Password = ""
			if err := httpvalidate.WriteJSON(w, http.StatusCreated, s); err != nil {
				log.ErrorContext(r.Context(), "write response", logger.Error(err))
			}
		},
	))

	r.Post("/address", httpvalidate.Handle(log, forms.AddressRule(),
		func(w http.ResponseWriter, r *http.Request, a forms.Address) {
			if err := httpvalidate.WriteJSON(w, http.StatusOK, a); err != nil {
				log.ErrorContext(r.Context(), "write response", logger.Error(err))
			}
		},
	))

	return r
}
