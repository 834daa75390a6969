package handler

import (
	"context"
	"feedbacker/internal/core"
	"feedbacker/pkg/session"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BoardService . BoardService
type BoardService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	GetUserPage(ctx context.Context, actor, username string) (core.UserPage, error)
	DeleteUser(ctx context.Context, actor, username string) error
	AddFeedback(ctx context.Context, actor, owner string, msg core.FeedbackMessage) (core.FeedbackRecord, error)
	GetFeedbackForEdit(ctx context.Context, actor string, id uint) (core.FeedbackRecord, error)
	EditFeedback(ctx context.Context, actor string, id uint, msg core.FeedbackMessage) (core.FeedbackRecord, error)
	DeleteFeedback(ctx context.Context, actor string, id uint) (core.FeedbackRecord, error)
}

type SessionStore interface {
	Save(w http.ResponseWriter, s *session.Session) error
	Login(ctx context.Context, s *session.Session, username string) error
	Logout(ctx context.Context, s *session.Session) error
}
