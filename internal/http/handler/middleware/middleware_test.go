package middleware_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"feedbacker/internal/http/handler/middleware"
	"feedbacker/internal/http/handler/middleware/fake"
	"feedbacker/pkg/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		fakeLogger *zap.SugaredLogger
		w          *httptest.ResponseRecorder
		nextCalled bool
		seen       *http.Request
		next       http.Handler
	)

	BeforeEach(func() {
		fakeLogger = zap.NewNop().Sugar()
		w = httptest.NewRecorder()
		nextCalled = false
		seen = nil
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			seen = r
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should expose the id in context and header", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(nextCalled).To(BeTrue())
			requestID := middleware.RequestIDFromContext(seen.Context())
			Expect(requestID).NotTo(BeEmpty())
			Expect(w.Header().Get("X-Request-ID")).To(Equal(requestID))
		})

		It("should return empty outside the middleware", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			Expect(middleware.RequestIDFromContext(req.Context())).To(BeEmpty())
		})
	})

	Describe("Logging", func() {
		It("should pass the response through", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			middleware.NewLoggingMiddleware(fakeLogger).Logging(next).ServeHTTP(w, req)

			Expect(nextCalled).To(BeTrue())
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("Session", func() {
		var fakeLoader *fake.SessionLoader

		BeforeEach(func() {
			fakeLoader = new(fake.SessionLoader)
		})

		It("should attach the loaded session", func() {
			s := &session.Session{ID: "sid", Username: "alice", CSRFToken: "csrf"}
			fakeLoader.LoadReturns(s, nil)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			middleware.NewSessionMiddleware(fakeLogger, fakeLoader).Session(next).ServeHTTP(w, req)

			Expect(session.FromContext(seen.Context())).To(BeIdenticalTo(s))
		})

		It("should continue with the fresh session when the cookie was discarded", func() {
			fresh := &session.Session{ID: "new", CSRFToken: "csrf"}
			fakeLoader.LoadReturns(fresh, errors.New("token is not valid"))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			middleware.NewSessionMiddleware(fakeLogger, fakeLoader).Session(next).ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(session.FromContext(seen.Context())).To(BeIdenticalTo(fresh))
		})
	})

	Describe("CSRF", func() {
		var (
			s       *session.Session
			handler http.Handler
		)

		post := func(values url.Values) *http.Request {
			req := httptest.NewRequest(http.MethodPost, "/feedback/1/delete", strings.NewReader(values.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			return req.WithContext(session.NewContext(req.Context(), s))
		}

		BeforeEach(func() {
			s = &session.Session{ID: "sid", CSRFToken: "csrf-token"}
			handler = middleware.NewCSRFMiddleware(fakeLogger).CSRF(next)
		})

		It("should let GET requests through", func() {
			req := httptest.NewRequest(http.MethodGet, "/login", nil)
			handler.ServeHTTP(w, req)
			Expect(nextCalled).To(BeTrue())
		})

		It("should accept a matching token", func() {
			handler.ServeHTTP(w, post(url.Values{"csrf_token": {"csrf-token"}, "title": {"Hi"}}))
			Expect(nextCalled).To(BeTrue())
			Expect(seen.PostForm.Get("title")).To(Equal("Hi"))
		})

		It("should accept a matching token in a multipart body", func() {
			var body bytes.Buffer
			mw := multipart.NewWriter(&body)
			Expect(mw.WriteField("csrf_token", "csrf-token")).To(Succeed())
			Expect(mw.Close()).To(Succeed())

			req := httptest.NewRequest(http.MethodPost, "/feedback/1/delete", &body)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			handler.ServeHTTP(w, req.WithContext(session.NewContext(req.Context(), s)))

			Expect(nextCalled).To(BeTrue())
		})

		It("should reject a missing token", func() {
			handler.ServeHTTP(w, post(url.Values{}))
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("invalid or missing CSRF token"))
		})

		It("should reject a wrong token", func() {
			handler.ServeHTTP(w, post(url.Values{"csrf_token": {"other"}}))
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a request without session", func() {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("csrf_token=csrf-token"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			handler.ServeHTTP(w, req)
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
