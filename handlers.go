package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/Bios-Marcel/join/account"
	"github.com/Bios-Marcel/join/repository"
	"github.com/Bios-Marcel/join/session"
	"github.com/Bios-Marcel/join/summary"
	"github.com/Bios-Marcel/join/views"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

const (
	// clientCookie identifies the browser. It outlives the browser session
	// and scopes the durable storage.
	clientCookie = "client"
	// tabCookie dies with the browser session and scopes the ephemeral
	// storage.
	tabCookie = "tab"

	clientCookieMaxAge = 365 * 24 * 60 * 60
)

const (
	noticeRegistered      = "Successfully registered!"
	noticeLoginFailed     = "Please check user name or password!"
	noticeGuestMissing    = "Guest login is not available!"
	noticePasswordUpdated = "Password updated!"
)

type app struct {
	store     repository.Store
	durable   *session.BoltStore
	ephemeral *session.MemoryStore
	accounts  *account.Service
	log       *zap.SugaredLogger
	now       func() time.Time
}

func (a *app) mount(router chi.Router) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(a.log))

	router.Get("/", a.index)
	router.Get("/signup", a.signup)
	router.Post("/signup", a.signupPost)
	router.Get("/login", a.login)
	router.Post("/login", a.loginPost)
	router.Post("/login/guest", a.guestLogin)
	router.Post("/logout", a.logout)
	router.Get("/summary", a.summary)
	router.Get("/avatar.svg", a.avatar)
	router.Post("/password", a.passwordPost)
}

// session builds the request scoped session, handing out the client and
// tab cookies on first contact.
func (a *app) session(responseWriter http.ResponseWriter, request *http.Request) *session.Session {
	clientID := cookieValue(responseWriter, request, clientCookie, clientCookieMaxAge)
	tabID := cookieValue(responseWriter, request, tabCookie, 0)
	repo := repository.New(a.store, a.log)
	return session.New(repo, a.durable.Scope(clientID), a.ephemeral.Scope(tabID))
}

func cookieValue(responseWriter http.ResponseWriter, request *http.Request, name string, maxAge int) string {
	if cookie, err := request.Cookie(name); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	value := uuid.Must(uuid.NewV4()).String()
	http.SetCookie(responseWriter, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return value
}

func (a *app) index(responseWriter http.ResponseWriter, request *http.Request) {
	loggedIn, err := a.session(responseWriter, request).LoggedIn()
	if err != nil {
		a.fail(responseWriter, request, err)
		return
	}
	if loggedIn {
		http.Redirect(responseWriter, request, "/summary", http.StatusSeeOther)
		return
	}
	http.Redirect(responseWriter, request, "/login", http.StatusSeeOther)
}

// redirectLoggedIn sends a browser that already holds a session to its
// summary. It reports whether the request was handled.
func (a *app) redirectLoggedIn(responseWriter http.ResponseWriter, request *http.Request, sess *session.Session) bool {
	loggedIn, err := sess.LoggedIn()
	if err != nil {
		a.fail(responseWriter, request, err)
		return true
	}
	if loggedIn {
		http.Redirect(responseWriter, request, "/summary", http.StatusSeeOther)
		return true
	}
	return false
}

// redirectStale drops a session whose id matches no stored user, then
// sends the browser to the login page.
func (a *app) redirectStale(responseWriter http.ResponseWriter, request *http.Request, sess *session.Session) {
	if err := sess.Clear(); err != nil {
		a.fail(responseWriter, request, err)
		return
	}
	http.Redirect(responseWriter, request, "/login", http.StatusSeeOther)
}

func (a *app) signup(responseWriter http.ResponseWriter, request *http.Request) {
	if a.redirectLoggedIn(responseWriter, request, a.session(responseWriter, request)) {
		return
	}

	writeHTML(responseWriter)
	views.WriteSignup(responseWriter, false)
}

func (a *app) signupPost(responseWriter http.ResponseWriter, request *http.Request) {
	sess := a.session(responseWriter, request)
	if a.redirectLoggedIn(responseWriter, request, sess) {
		return
	}

	_, err := a.accounts.Register(request.Context(), sess.Repository(), account.RegisterInput{
		Name:            request.PostFormValue("name"),
		Email:           request.PostFormValue("email"),
		Password:        request.PostFormValue("password"),
		PasswordConfirm: request.PostFormValue("passwordConfirm"),
	})
	if errors.Is(err, account.ErrPasswordMismatch) {
		writeHTML(responseWriter)
		views.WriteSignup(responseWriter, true)
		return
	}
	if err != nil {
		a.fail(responseWriter, request, err)
		return
	}

	writeHTML(responseWriter)
	views.WriteLogin(responseWriter, noticeRegistered)
}

func (a *app) login(responseWriter http.ResponseWriter, request *http.Request) {
	if a.redirectLoggedIn(responseWriter, request, a.session(responseWriter, request)) {
		return
	}

	writeHTML(responseWriter)
	views.WriteLogin(responseWriter, "")
}

func (a *app) loginPost(responseWriter http.ResponseWriter, request *http.Request) {
	sess := a.session(responseWriter, request)
	if a.redirectLoggedIn(responseWriter, request, sess) {
		return
	}

	_, err := a.accounts.Login(request.Context(), sess, account.LoginInput{
		Email:    request.PostFormValue("email"),
		Password: request.PostFormValue("password"),
		Remember: request.PostFormValue("remember") == "on",
	})
	if errors.Is(err, account.ErrInvalidCredentials) {
		writeHTML(responseWriter)
		views.WriteLogin(responseWriter, noticeLoginFailed)
		return
	}
	if err != nil {
		a.fail(responseWriter, request, err)
		return
	}

	http.Redirect(responseWriter, request, "/summary", http.StatusSeeOther)
}

func (a *app) guestLogin(responseWriter http.ResponseWriter, request *http.Request) {
	sess := a.session(responseWriter, request)
	if a.redirectLoggedIn(responseWriter, request, sess) {
		return
	}

	_, err := a.accounts.GuestLogin(request.Context(), sess)
	if errors.Is(err, account.ErrGuestUnavailable) {
		writeHTML(responseWriter)
		views.WriteLogin(responseWriter, noticeGuestMissing)
		return
	}
	if err != nil {
		a.fail(responseWriter, request, err)
		return
	}

	http.Redirect(responseWriter, request, "/summary", http.StatusSeeOther)
}

func (a *app) logout(responseWriter http.ResponseWriter, request *http.Request) {
	if err := a.accounts.Logout(a.session(responseWriter, request)); err != nil {
		a.fail(responseWriter, request, err)
		return
	}
	http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
}

func (a *app) summary(responseWriter http.ResponseWriter, request *http.Request) {
	sess := a.session(responseWriter, request)
	user, err := sess.Resolve(request.Context())
	if err != nil {
		a.fail(responseWriter, request, err)
		return
	}
	if user == nil {
		a.redirectStale(responseWriter, request, sess)
		return
	}

	a.writeSummary(sess, responseWriter, "")
}

func (a *app) writeSummary(sess *session.Session, responseWriter http.ResponseWriter, notice string) {
	now := a.now()
	user := sess.User()
	writeHTML(responseWriter)
	views.WriteSummary(responseWriter, user, summary.Compute(user.Tasks, now), summary.Greeting(now.Hour()), notice)
}

func (a *app) avatar(responseWriter http.ResponseWriter, request *http.Request) {
	user, err := a.session(responseWriter, request).Resolve(request.Context())
	if err != nil {
		a.fail(responseWriter, request, err)
		return
	}
	if user == nil || user.SVG == "" {
		http.NotFound(responseWriter, request)
		return
	}

	responseWriter.Header().Set("Content-Type", "image/svg+xml")
	_, _ = responseWriter.Write([]byte(user.SVG))
}

func (a *app) passwordPost(responseWriter http.ResponseWriter, request *http.Request) {
	sess := a.session(responseWriter, request)
	user, err := sess.Resolve(request.Context())
	if err != nil {
		a.fail(responseWriter, request, err)
		return
	}
	if user == nil {
		a.redirectStale(responseWriter, request, sess)
		return
	}

	password := request.PostFormValue("password")
	if password == "" {
		http.Error(responseWriter, "password is required", http.StatusBadRequest)
		return
	}
	if err := a.accounts.UpdatePassword(request.Context(), sess.Repository(), user, password); err != nil {
		a.fail(responseWriter, request, err)
		return
	}

	a.writeSummary(sess, responseWriter, noticePasswordUpdated)
}

// fail reports a storage or transport failure.
func (a *app) fail(responseWriter http.ResponseWriter, request *http.Request, err error) {
	a.log.Errorw("request failed", "error", err, "path", request.URL.Path,
		"request_id", middleware.GetReqID(request.Context()))
	http.Error(responseWriter, "storage unavailable, please try again", http.StatusBadGateway)
}

func writeHTML(responseWriter http.ResponseWriter) {
	responseWriter.Header().Set("Content-Type", "text/html; charset=utf-8")
}
