package handler

import (
	"bytes"
	"embed"
	"feedbacker/internal/core"
	"feedbacker/internal/http/handler/middleware"
	"feedbacker/internal/http/payload"
	"feedbacker/pkg/session"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageRegister = "register.html"
	pageLogin    = "login.html"
	pageUser     = "user.html"
	pageFeedback = "feedback_form.html"
	pageError    = "error.html"
)

type pageData struct {
	CurrentUser string
	CSRFToken   string
	Flashes     []session.Flash
	Errors      payload.FieldErrors

	Register payload.RegisterForm
	Login    payload.LoginForm
	Feedback payload.FeedbackForm
	Page     core.UserPage

	Heading string
	Action  string

	Status  int
	Message string
}

func parseTemplates() (map[string]*template.Template, error) {
	pages := []string{pageRegister, pageLogin, pageUser, pageFeedback, pageError}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}

	return templates, nil
}

// render executes page into a buffer, stores the session with its flashes
// consumed and only then writes the response.
func (h *BoardHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	requestID := middleware.RequestIDFromContext(r.Context())
	s := session.FromContext(r.Context())
	if s == nil {
		s = &session.Session{}
	}

	data.CurrentUser = s.Username
	data.CSRFToken = s.CSRFToken
	data.Flashes = s.PopFlashes()

	var buf bytes.Buffer
	if err := h.templates[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logs.Errorw("failed to render template",
			"error", err,
			"page", page,
			"request_id", requestID)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	if s.ID != "" {
		if err := h.sessions.Save(w, s); err != nil {
			h.logs.Errorw("failed to save session",
				"error", err,
				"request_id", requestID)
			http.Error(w, oopsErr, http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestID)
	}
}

func (h *BoardHandler) redirect(w http.ResponseWriter, r *http.Request, location string) {
	if s := session.FromContext(r.Context()); s != nil {
		if err := h.sessions.Save(w, s); err != nil {
			h.logs.Errorw("failed to save session",
				"error", err,
				"request_id", middleware.RequestIDFromContext(r.Context()))
			http.Error(w, oopsErr, http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, location, http.StatusFound)
}

func (h *BoardHandler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, pageError, pageData{
		Status:  status,
		Message: message,
	})
}
