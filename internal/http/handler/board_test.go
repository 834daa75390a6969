package handler_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"feedbacker/internal/core"
	"feedbacker/internal/http/handler"
	"feedbacker/internal/http/handler/fake"
	"feedbacker/internal/http/handler/middleware"
	"feedbacker/pkg/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("BoardHandler", func() {
	var (
		fakeBoard  *fake.BoardService
		fakeLogger *zap.SugaredLogger
		manager    *session.Manager
		srv        http.Handler
		sess       *session.Session
		fakeErr    error
	)

	// do sends a request carrying the current session cookie. A non-nil form
	// is posted together with the session's CSRF token.
	do := func(method, target string, form url.Values) *httptest.ResponseRecorder {
		var body io.Reader
		if form != nil {
			form.Set("csrf_token", sess.CSRFToken)
			body = strings.NewReader(form.Encode())
		}

		req := httptest.NewRequest(method, target, body)
		if form != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}

		cookieRec := httptest.NewRecorder()
		Expect(manager.Save(cookieRec, sess)).To(Succeed())
		for _, c := range cookieRec.Result().Cookies() {
			req.AddCookie(c)
		}

		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		return w
	}

	// responseSession decodes the session cookie set on the response.
	responseSession := func(w *httptest.ResponseRecorder) *session.Session {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range w.Result().Cookies() {
			req.AddCookie(c)
		}
		s, err := manager.Load(req)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	BeforeEach(func() {
		fakeBoard = new(fake.BoardService)
		fakeLogger = zap.NewNop().Sugar()
		manager = session.NewManager([]byte("test-secret"), time.Hour, false, nil)
		fakeErr = errors.New("fake error")

		bh, err := handler.NewBoardHandler(fakeLogger, fakeBoard, manager)
		Expect(err).NotTo(HaveOccurred())

		mux := http.NewServeMux()
		bh.RegisterRoutes(mux)
		srv = middleware.NewCSRFMiddleware(fakeLogger).CSRF(mux)
		srv = middleware.NewSessionMiddleware(fakeLogger, manager).Session(srv)

		sess = manager.New()
	})

	Describe("Index", func() {
		It("should redirect to login", func() {
			w := do(http.MethodGet, "/", nil)
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/login"))
		})
	})

	Describe("Register", func() {
		var form url.Values

		BeforeEach(func() {
			form = url.Values{
				"username":   {"alice"},
				"password":   {"pw123"},
				"email":      {"a@x.com"},
				"first_name": {"Alice"},
				"last_name":  {"A"},
			}
			fakeBoard.RegisterReturns(core.UserRecord{Username: "alice", Email: "a@x.com"}, nil)
		})

		It("should render the form with a csrf token", func() {
			w := do(http.MethodGet, "/register", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(sess.CSRFToken))
			Expect(w.Body.String()).To(ContainSubstring(`name="first_name"`))
		})

		When("the form is valid", func() {
			It("should log the user in and redirect to the user page", func() {
				w := do(http.MethodPost, "/register", form)
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/users/alice"))

				_, msg := fakeBoard.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.RegisterMessage{
					Username:  "alice",
					Password:  "pw123",
					Email:     "a@x.com",
					FirstName: "Alice",
					LastName:  "A",
				}))

				s := responseSession(w)
				Expect(s.Username).To(Equal("alice"))
				Expect(s.ID).NotTo(Equal(sess.ID))
				Expect(s.Flashes).To(ConsistOf(session.Flash{
					Category: session.FlashSuccess,
					Message:  "Welcome, alice! Account successfully created!",
				}))
			})
		})

		When("fields are missing", func() {
			It("should re-render with field errors and not register", func() {
				w := do(http.MethodPost, "/register", url.Values{"username": {"alice"}})
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("cannot be blank"))
				Expect(w.Body.String()).To(ContainSubstring(`value="alice"`))
				Expect(fakeBoard.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username is taken", func() {
			It("should show the conflict on the form", func() {
				fakeBoard.RegisterReturns(core.UserRecord{}, core.ErrDuplicateUsername)

				w := do(http.MethodPost, "/register", form)
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Username taken. Please enter another username."))
				Expect(w.Body.String()).NotTo(ContainSubstring("pw123"))
				Expect(responseSession(w).Authenticated()).To(BeFalse())
			})
		})

		When("the email is taken", func() {
			It("should show the conflict on the form", func() {
				fakeBoard.RegisterReturns(core.UserRecord{}, core.ErrDuplicateEmail)

				w := do(http.MethodPost, "/register", form)
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Email already registered."))
			})
		})

		When("the service fails", func() {
			It("should render the generic error page", func() {
				fakeBoard.RegisterReturns(core.UserRecord{}, fakeErr)

				w := do(http.MethodPost, "/register", form)
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("Oops! Something went wrong. Please try again later."))
				Expect(w.Body.String()).NotTo(ContainSubstring("fake error"))
			})
		})

		When("the csrf token is wrong", func() {
			It("should reject the request before the handler runs", func() {
				req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				w := httptest.NewRecorder()
				srv.ServeHTTP(w, req)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeBoard.RegisterCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Login", func() {
		var form url.Values

		BeforeEach(func() {
			form = url.Values{"username": {"alice"}, "password": {"pw123"}}
		})

		It("should render pending flashes once", func() {
			sess.AddFlash(session.FlashInfo, "Goodbye!")

			w := do(http.MethodGet, "/login", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Goodbye!"))
			Expect(responseSession(w).Flashes).To(BeEmpty())
		})

		When("credentials match", func() {
			It("should bind the session and redirect", func() {
				fakeBoard.AuthenticateReturns(core.UserRecord{Username: "alice"}, nil)

				w := do(http.MethodPost, "/login", form)
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/users/alice"))

				_, msg := fakeBoard.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "alice", Password: "pw123"}))

				s := responseSession(w)
				Expect(s.Username).To(Equal("alice"))
				Expect(s.CSRFToken).NotTo(Equal(sess.CSRFToken))
				Expect(s.Flashes).To(ConsistOf(session.Flash{Category: session.FlashInfo, Message: "Welcome back, alice!"}))
			})
		})

		When("credentials do not match", func() {
			It("should re-render with the generic error", func() {
				fakeBoard.AuthenticateReturns(core.UserRecord{}, core.ErrInvalidCredentials)

				w := do(http.MethodPost, "/login", form)
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Invalid username/password combination."))
				Expect(responseSession(w).Authenticated()).To(BeFalse())
			})
		})

		When("the service fails", func() {
			It("should return 500", func() {
				fakeBoard.AuthenticateReturns(core.UserRecord{}, fakeErr)

				w := do(http.MethodPost, "/login", form)
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("Logout", func() {
		It("should clear the session and redirect home", func() {
			sess.Username = "alice"

			w := do(http.MethodGet, "/logout", nil)
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/"))

			s := responseSession(w)
			Expect(s.Authenticated()).To(BeFalse())
			Expect(s.Flashes).To(ConsistOf(session.Flash{Category: session.FlashInfo, Message: "Goodbye!"}))
		})
	})

	Describe("ShowUser", func() {
		BeforeEach(func() {
			sess.Username = "alice"
			fakeBoard.GetUserPageReturns(core.UserPage{
				User:     core.UserRecord{Username: "alice", Email: "a@x.com", FirstName: "Alice", LastName: "A"},
				Feedback: []core.FeedbackRecord{{ID: 7, Title: "Hi", Content: "Hello", Username: "alice"}},
			}, nil)
		})

		It("should render profile and feedback", func() {
			w := do(http.MethodGet, "/users/alice", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("a@x.com"))
			Expect(w.Body.String()).To(ContainSubstring("/feedback/7/edit"))

			_, actor, username := fakeBoard.GetUserPageArgsForCall(0)
			Expect(actor).To(Equal("alice"))
			Expect(username).To(Equal("alice"))
		})

		It("should return 401 with a login link when anonymous", func() {
			sess.Username = ""
			fakeBoard.GetUserPageReturns(core.UserPage{}, core.ErrUnauthorized)

			w := do(http.MethodGet, "/users/alice", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring(`href="/login"`))
		})

		It("should return 403 for another user", func() {
			fakeBoard.GetUserPageReturns(core.UserPage{}, core.ErrForbidden)

			w := do(http.MethodGet, "/users/bob", nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("should return 404 for a missing user", func() {
			fakeBoard.GetUserPageReturns(core.UserPage{}, core.ErrUserNotFound)

			w := do(http.MethodGet, "/users/alice", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DeleteUser", func() {
		BeforeEach(func() {
			sess.Username = "alice"
		})

		It("should delete, clear the session and redirect to login", func() {
			w := do(http.MethodPost, "/users/alice/delete", url.Values{})
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/login"))
			Expect(responseSession(w).Authenticated()).To(BeFalse())

			_, actor, username := fakeBoard.DeleteUserArgsForCall(0)
			Expect(actor).To(Equal("alice"))
			Expect(username).To(Equal("alice"))
		})

		It("should keep the session when forbidden", func() {
			fakeBoard.DeleteUserReturns(core.ErrForbidden)

			w := do(http.MethodPost, "/users/bob/delete", url.Values{})
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(responseSession(w).Username).To(Equal("alice"))
		})
	})

	Describe("AddFeedback", func() {
		var form url.Values

		BeforeEach(func() {
			sess.Username = "alice"
			form = url.Values{"title": {"Hi"}, "content": {"Hello"}}
			fakeBoard.AddFeedbackReturns(core.FeedbackRecord{ID: 1, Title: "Hi", Content: "Hello", Username: "alice"}, nil)
		})

		It("should render the form for the owner", func() {
			w := do(http.MethodGet, "/users/alice/feedback/add", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`action="/users/alice/feedback/add"`))
		})

		It("should refuse the form to another user", func() {
			w := do(http.MethodGet, "/users/bob/feedback/add", nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("should refuse the form to anonymous visitors", func() {
			sess.Username = ""
			w := do(http.MethodGet, "/users/alice/feedback/add", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should create feedback and redirect", func() {
			w := do(http.MethodPost, "/users/alice/feedback/add", form)
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/users/alice"))

			_, actor, owner, msg := fakeBoard.AddFeedbackArgsForCall(0)
			Expect(actor).To(Equal("alice"))
			Expect(owner).To(Equal("alice"))
			Expect(msg).To(Equal(core.FeedbackMessage{Title: "Hi", Content: "Hello"}))
		})

		It("should re-render an invalid form without creating", func() {
			w := do(http.MethodPost, "/users/alice/feedback/add", url.Values{"title": {"Hi"}})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("cannot be blank"))
			Expect(fakeBoard.AddFeedbackCallCount()).To(Equal(0))
		})

		It("should not reveal form errors to another user", func() {
			w := do(http.MethodPost, "/users/bob/feedback/add", url.Values{})
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("should return 403 when posting under another user", func() {
			fakeBoard.AddFeedbackReturns(core.FeedbackRecord{}, core.ErrForbidden)

			w := do(http.MethodPost, "/users/bob/feedback/add", form)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("EditFeedback", func() {
		var form url.Values

		BeforeEach(func() {
			sess.Username = "alice"
			form = url.Values{"title": {"New"}, "content": {"New body"}}
			fakeBoard.GetFeedbackForEditReturns(core.FeedbackRecord{ID: 5, Title: "Old title", Content: "Old body", Username: "alice"}, nil)
			fakeBoard.EditFeedbackReturns(core.FeedbackRecord{ID: 5, Title: "New", Content: "New body", Username: "alice"}, nil)
		})

		It("should pre-fill the form", func() {
			w := do(http.MethodGet, "/feedback/5/edit", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`value="Old title"`))
			Expect(w.Body.String()).To(ContainSubstring("Old body"))

			_, actor, id := fakeBoard.GetFeedbackForEditArgsForCall(0)
			Expect(actor).To(Equal("alice"))
			Expect(id).To(Equal(uint(5)))
		})

		It("should return 404 for a non-integer id", func() {
			w := do(http.MethodGet, "/feedback/abc/edit", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(fakeBoard.GetFeedbackForEditCallCount()).To(Equal(0))
		})

		It("should return 404 for an id beyond the bigint range", func() {
			w := do(http.MethodGet, "/feedback/9223372036854775808/edit", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(fakeBoard.GetFeedbackForEditCallCount()).To(Equal(0))

			w = do(http.MethodPost, "/feedback/18446744073709551615/edit", form)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(fakeBoard.EditFeedbackCallCount()).To(Equal(0))
		})

		It("should accept the largest bigint id", func() {
			w := do(http.MethodGet, "/feedback/9223372036854775807/edit", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			_, _, id := fakeBoard.GetFeedbackForEditArgsForCall(0)
			Expect(uint64(id)).To(Equal(uint64(9223372036854775807)))
		})

		It("should update and redirect to the owner page", func() {
			w := do(http.MethodPost, "/feedback/5/edit", form)
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/users/alice"))

			_, _, id, msg := fakeBoard.EditFeedbackArgsForCall(0)
			Expect(id).To(Equal(uint(5)))
			Expect(msg).To(Equal(core.FeedbackMessage{Title: "New", Content: "New body"}))
		})

		It("should return 404 when the feedback is missing", func() {
			fakeBoard.EditFeedbackReturns(core.FeedbackRecord{}, core.ErrFeedbackNotFound)

			w := do(http.MethodPost, "/feedback/99/edit", form)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should check ownership before showing form errors", func() {
			fakeBoard.GetFeedbackForEditReturns(core.FeedbackRecord{}, core.ErrForbidden)

			w := do(http.MethodPost, "/feedback/5/edit", url.Values{})
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(fakeBoard.EditFeedbackCallCount()).To(Equal(0))
		})
	})

	Describe("DeleteFeedback", func() {
		BeforeEach(func() {
			sess.Username = "alice"
		})

		It("should delete and redirect to the owner page", func() {
			fakeBoard.DeleteFeedbackReturns(core.FeedbackRecord{ID: 5, Username: "alice"}, nil)

			w := do(http.MethodPost, "/feedback/5/delete", url.Values{})
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/users/alice"))
		})

		It("should return 403 for another user's feedback", func() {
			sess.Username = "bob"
			fakeBoard.DeleteFeedbackReturns(core.FeedbackRecord{}, core.ErrForbidden)

			w := do(http.MethodPost, "/feedback/5/delete", url.Values{})
			Expect(w.Code).To(Equal(http.StatusForbidden))
			_, actor, _ := fakeBoard.DeleteFeedbackArgsForCall(0)
			Expect(actor).To(Equal("bob"))
		})

		It("should return 404 for a non-integer id", func() {
			w := do(http.MethodPost, "/feedback/x/delete", url.Values{})
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(fakeBoard.DeleteFeedbackCallCount()).To(Equal(0))
		})

		It("should return 404 for an id beyond the bigint range", func() {
			w := do(http.MethodPost, "/feedback/9223372036854775808/delete", url.Values{})
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(fakeBoard.DeleteFeedbackCallCount()).To(Equal(0))
		})
	})
})
