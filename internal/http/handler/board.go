package handler

import (
	"errors"
	"feedbacker/internal/core"
	"feedbacker/internal/http/handler/middleware"
	"feedbacker/internal/http/payload"
	"feedbacker/pkg/session"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

var (
	Index            = "GET /{$}"
	RegisterForm     = "GET /register"
	Register         = "POST /register"
	LoginForm        = "GET /login"
	Login            = "POST /login"
	Logout           = "GET /logout"
	ShowUser         = "GET /users/{username}"
	DeleteUser       = "POST /users/{username}/delete"
	AddFeedbackForm  = "GET /users/{username}/feedback/add"
	AddFeedback      = "POST /users/{username}/feedback/add"
	EditFeedbackForm = "GET /feedback/{id}/edit"
	EditFeedback     = "POST /feedback/{id}/edit"
	DeleteFeedback   = "POST /feedback/{id}/delete"
)

type BoardHandler struct {
	logs      *zap.SugaredLogger
	board     BoardService
	sessions  SessionStore
	templates map[string]*template.Template
}

func NewBoardHandler(logger *zap.SugaredLogger, board BoardService, sessions SessionStore) (*BoardHandler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &BoardHandler{
		logs:      logger,
		board:     board,
		sessions:  sessions,
		templates: templates,
	}, nil
}

func (h *BoardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(Index, h.HandleIndex)
	mux.HandleFunc(RegisterForm, h.HandleRegisterForm)
	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(LoginForm, h.HandleLoginForm)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(Logout, h.HandleLogout)
	mux.HandleFunc(ShowUser, h.HandleShowUser)
	mux.HandleFunc(DeleteUser, h.HandleDeleteUser)
	mux.HandleFunc(AddFeedbackForm, h.HandleAddFeedbackForm)
	mux.HandleFunc(AddFeedback, h.HandleAddFeedback)
	mux.HandleFunc(EditFeedbackForm, h.HandleEditFeedbackForm)
	mux.HandleFunc(EditFeedback, h.HandleEditFeedback)
	mux.HandleFunc(DeleteFeedback, h.HandleDeleteFeedback)
}

func (h *BoardHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.redirect(w, r, "/login")
}

func (h *BoardHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageRegister, pageData{})
}

func (h *BoardHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())

	values, err := payload.DecodeForm(w, r)
	if err != nil {
		h.fail(w, r, err, Register)
		return
	}

	form := payload.NewRegisterForm(values)
	fieldErrs, err := payload.Validate(form)
	if err != nil {
		h.fail(w, r, err, Register)
		return
	}

	msg := form.ToMessage()
	form.Password = ""
	if fieldErrs != nil {
		h.render(w, r, http.StatusOK, pageRegister, pageData{Register: form, Errors: fieldErrs})
		return
	}

	user, err := h.board.Register(r.Context(), msg)
	if err != nil {
		fieldErrs = payload.FieldErrors{}
		switch {
		case errors.Is(err, core.ErrDuplicateUsername):
			fieldErrs.Add("username", usernameTakenMsg)
		case errors.Is(err, core.ErrDuplicateEmail):
			fieldErrs.Add("email", emailTakenMsg)
		default:
			h.fail(w, r, err, Register)
			return
		}

		h.logs.Infow("registration rejected",
			"error", err,
			"handler", Register,
			"request_id", requestID)
		h.render(w, r, http.StatusOK, pageRegister, pageData{Register: form, Errors: fieldErrs})
		return
	}

	s := session.FromContext(r.Context())
	if err := h.sessions.Login(r.Context(), s, user.Username); err != nil {
		h.fail(w, r, err, Register)
		return
	}
	s.AddFlash(session.FlashSuccess, fmt.Sprintf(registeredFlash, user.Username))

	h.logs.Infow("user registered and logged in",
		"username", user.Username,
		"handler", Register,
		"request_id", requestID)

	h.redirect(w, r, userPath(user.Username))
}

func (h *BoardHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageLogin, pageData{})
}

func (h *BoardHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())

	values, err := payload.DecodeForm(w, r)
	if err != nil {
		h.fail(w, r, err, Login)
		return
	}

	form := payload.NewLoginForm(values)
	fieldErrs, err := payload.Validate(form)
	if err != nil {
		h.fail(w, r, err, Login)
		return
	}

	msg := form.ToMessage()
	form.Password = ""
	if fieldErrs != nil {
		h.render(w, r, http.StatusOK, pageLogin, pageData{Login: form, Errors: fieldErrs})
		return
	}

	user, err := h.board.Authenticate(r.Context(), msg)
	if err != nil {
		if !errors.Is(err, core.ErrInvalidCredentials) {
			h.fail(w, r, err, Login)
			return
		}

		h.logs.Infow("login rejected",
			"username", form.Username,
			"handler", Login,
			"request_id", requestID)
		fieldErrs = payload.FieldErrors{}
		fieldErrs.Add("username", invalidCredentialsMsg)
		h.render(w, r, http.StatusOK, pageLogin, pageData{Login: form, Errors: fieldErrs})
		return
	}

	s := session.FromContext(r.Context())
	if err := h.sessions.Login(r.Context(), s, user.Username); err != nil {
		h.fail(w, r, err, Login)
		return
	}
	s.AddFlash(session.FlashInfo, fmt.Sprintf(loggedInFlash, user.Username))

	h.logs.Infow("user logged in",
		"username", user.Username,
		"handler", Login,
		"request_id", requestID)

	h.redirect(w, r, userPath(user.Username))
}

func (h *BoardHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	username := s.Username

	if err := h.sessions.Logout(r.Context(), s); err != nil {
		h.fail(w, r, err, Logout)
		return
	}
	s.AddFlash(session.FlashInfo, loggedOutFlash)

	h.logs.Infow("user logged out",
		"username", username,
		"handler", Logout,
		"request_id", middleware.RequestIDFromContext(r.Context()))

	h.redirect(w, r, "/")
}

func (h *BoardHandler) HandleShowUser(w http.ResponseWriter, r *http.Request) {
	actor := session.FromContext(r.Context()).Username

	page, err := h.board.GetUserPage(r.Context(), actor, r.PathValue("username"))
	if err != nil {
		h.fail(w, r, err, ShowUser)
		return
	}

	h.render(w, r, http.StatusOK, pageUser, pageData{Page: page})
}

func (h *BoardHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	username := r.PathValue("username")

	if err := h.board.DeleteUser(r.Context(), s.Username, username); err != nil {
		h.fail(w, r, err, DeleteUser)
		return
	}

	if err := h.sessions.Logout(r.Context(), s); err != nil {
		h.fail(w, r, err, DeleteUser)
		return
	}

	h.logs.Infow("user deleted",
		"username", username,
		"handler", DeleteUser,
		"request_id", middleware.RequestIDFromContext(r.Context()))

	h.redirect(w, r, "/login")
}

func (h *BoardHandler) HandleAddFeedbackForm(w http.ResponseWriter, r *http.Request) {
	actor := session.FromContext(r.Context()).Username
	owner := r.PathValue("username")

	if actor == "" {
		h.fail(w, r, core.ErrUnauthorized, AddFeedbackForm)
		return
	}
	if actor != owner {
		h.fail(w, r, core.ErrForbidden, AddFeedbackForm)
		return
	}

	h.render(w, r, http.StatusOK, pageFeedback, addFeedbackPage(owner, payload.FeedbackForm{}, nil))
}

func (h *BoardHandler) HandleAddFeedback(w http.ResponseWriter, r *http.Request) {
	actor := session.FromContext(r.Context()).Username
	owner := r.PathValue("username")

	form, fieldErrs, err := h.feedbackForm(w, r)
	if err != nil {
		h.fail(w, r, err, AddFeedback)
		return
	}
	if fieldErrs != nil {
		if actor != owner {
			h.fail(w, r, guardError(actor), AddFeedback)
			return
		}
		h.render(w, r, http.StatusOK, pageFeedback, addFeedbackPage(owner, form, fieldErrs))
		return
	}

	feedback, err := h.board.AddFeedback(r.Context(), actor, owner, form.ToMessage())
	if err != nil {
		h.fail(w, r, err, AddFeedback)
		return
	}

	h.logs.Infow("feedback added",
		"username", owner,
		"feedback_id", feedback.ID,
		"handler", AddFeedback,
		"request_id", middleware.RequestIDFromContext(r.Context()))

	h.redirect(w, r, userPath(feedback.Username))
}

func (h *BoardHandler) HandleEditFeedbackForm(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(r)
	if !ok {
		h.fail(w, r, core.ErrFeedbackNotFound, EditFeedbackForm)
		return
	}

	actor := session.FromContext(r.Context()).Username
	feedback, err := h.board.GetFeedbackForEdit(r.Context(), actor, id)
	if err != nil {
		h.fail(w, r, err, EditFeedbackForm)
		return
	}

	form := payload.FeedbackForm{Title: feedback.Title, Content: feedback.Content}
	h.render(w, r, http.StatusOK, pageFeedback, editFeedbackPage(id, form, nil))
}

func (h *BoardHandler) HandleEditFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(r)
	if !ok {
		h.fail(w, r, core.ErrFeedbackNotFound, EditFeedback)
		return
	}

	actor := session.FromContext(r.Context()).Username

	form, fieldErrs, err := h.feedbackForm(w, r)
	if err != nil {
		h.fail(w, r, err, EditFeedback)
		return
	}
	if fieldErrs != nil {
		// existence and ownership are checked before showing the form again
		if _, err := h.board.GetFeedbackForEdit(r.Context(), actor, id); err != nil {
			h.fail(w, r, err, EditFeedback)
			return
		}
		h.render(w, r, http.StatusOK, pageFeedback, editFeedbackPage(id, form, fieldErrs))
		return
	}

	feedback, err := h.board.EditFeedback(r.Context(), actor, id, form.ToMessage())
	if err != nil {
		h.fail(w, r, err, EditFeedback)
		return
	}

	h.logs.Infow("feedback edited",
		"username", feedback.Username,
		"feedback_id", feedback.ID,
		"handler", EditFeedback,
		"request_id", middleware.RequestIDFromContext(r.Context()))

	h.redirect(w, r, userPath(feedback.Username))
}

func (h *BoardHandler) HandleDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(r)
	if !ok {
		h.fail(w, r, core.ErrFeedbackNotFound, DeleteFeedback)
		return
	}

	actor := session.FromContext(r.Context()).Username
	feedback, err := h.board.DeleteFeedback(r.Context(), actor, id)
	if err != nil {
		h.fail(w, r, err, DeleteFeedback)
		return
	}

	h.logs.Infow("feedback deleted",
		"username", feedback.Username,
		"feedback_id", feedback.ID,
		"handler", DeleteFeedback,
		"request_id", middleware.RequestIDFromContext(r.Context()))

	h.redirect(w, r, userPath(feedback.Username))
}

func (h *BoardHandler) feedbackForm(w http.ResponseWriter, r *http.Request) (payload.FeedbackForm, payload.FieldErrors, error) {
	values, err := payload.DecodeForm(w, r)
	if err != nil {
		return payload.FeedbackForm{}, nil, err
	}

	form := payload.NewFeedbackForm(values)
	fieldErrs, err := payload.Validate(form)
	if err != nil {
		return payload.FeedbackForm{}, nil, err
	}

	return form, fieldErrs, nil
}

// fail maps a service error onto a status code and error page. Unexpected
// errors are logged and rendered without detail.
func (h *BoardHandler) fail(w http.ResponseWriter, r *http.Request, err error, handler string) {
	requestID := middleware.RequestIDFromContext(r.Context())

	var status int
	var message string
	switch {
	case errors.Is(err, core.ErrForbidden):
		status, message = http.StatusForbidden, forbiddenMsg
	case errors.Is(err, core.ErrUnauthorized):
		status, message = http.StatusUnauthorized, unauthorizedMsg
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrFeedbackNotFound):
		status, message = http.StatusNotFound, notFoundMsg
	default:
		h.logs.Errorw("request failed",
			"error", err,
			"handler", handler,
			"request_id", requestID)
		h.renderError(w, r, http.StatusInternalServerError, oopsErr)
		return
	}

	h.logs.Infow("request rejected",
		"error", err,
		"status", status,
		"handler", handler,
		"request_id", requestID)
	h.renderError(w, r, status, message)
}

func guardError(actor string) error {
	if actor == "" {
		return core.ErrUnauthorized
	}
	return core.ErrForbidden
}

// feedbackID parses the {id} path value. Ids beyond the bigint range cannot
// exist and are reported like any other unknown id.
func feedbackID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 63)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func userPath(username string) string {
	return "/users/" + url.PathEscape(username)
}

func addFeedbackPage(owner string, form payload.FeedbackForm, fieldErrs payload.FieldErrors) pageData {
	return pageData{
		Heading:  "Add Feedback",
		Action:   userPath(owner) + "/feedback/add",
		Feedback: form,
		Errors:   fieldErrs,
	}
}

func editFeedbackPage(id uint, form payload.FeedbackForm, fieldErrs payload.FieldErrors) pageData {
	return pageData{
		Heading:  "Edit Feedback",
		Action:   fmt.Sprintf("/feedback/%d/edit", id),
		Feedback: form,
		Errors:   fieldErrs,
	}
}
