package middleware

import (
	"crypto/subtle"
	"feedbacker/internal/http/payload"
	"feedbacker/pkg/session"
	"net/http"

	"go.uber.org/zap"
)

const (
	CSRFField   = "csrf_token"
	csrfFailure = "invalid or missing CSRF token"
)

type CSRFMiddleware struct {
	logs *zap.SugaredLogger
}

func NewCSRFMiddleware(logger *zap.SugaredLogger) *CSRFMiddleware {
	return &CSRFMiddleware{
		logs: logger,
	}
}

// CSRF rejects every POST whose csrf_token field does not match the session.
// It must run inside the session middleware.
func (m *CSRFMiddleware) CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		requestID := RequestIDFromContext(r.Context())

		s := session.FromContext(r.Context())
		values, err := payload.DecodeForm(w, r)
		if err != nil || s == nil || !tokensEqual(values.Get(CSRFField), s.CSRFToken) {
			m.logs.Errorw("csrf check failed",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			http.Error(w, csrfFailure, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func tokensEqual(got, want string) bool {
	if got == "" || want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
