package middleware

import (
	"feedbacker/pkg/session"
	"net/http"

	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionLoader . SessionLoader
type SessionLoader interface {
	Load(r *http.Request) (*session.Session, error)
}

type SessionMiddleware struct {
	logs   *zap.SugaredLogger
	loader SessionLoader
}

func NewSessionMiddleware(logger *zap.SugaredLogger, loader SessionLoader) *SessionMiddleware {
	return &SessionMiddleware{
		logs:   logger,
		loader: loader,
	}
}

// Session attaches the client session to the request context. A cookie that
// cannot be trusted is replaced by a fresh anonymous session.
func (m *SessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.loader.Load(r)
		if err != nil {
			m.logs.Infow("session cookie discarded",
				"error", err,
				"request_id", RequestIDFromContext(r.Context()))
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), s)))
	})
}
