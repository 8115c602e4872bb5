package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// HeaderRule accepts client supplied identifiers that are safe to echo and log.
func HeaderRule() validator.Rule[string] {
	return validator.Compose(
		validator.NotEmpty(),
		validator.MaxLen(maxIDLength),
		validator.Matches(idRegex, "request id"),
	)
}

func Middleware(next http.Handler) http.Handler {
	rule := HeaderRule()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := rule.Check(r.Header.Get(Header), Header)
		if err != nil {
			id = newID()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
