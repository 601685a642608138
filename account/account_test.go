package account

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Bios-Marcel/join/avatar"
	"github.com/Bios-Marcel/join/blobstore"
	"github.com/Bios-Marcel/join/repository"
	"github.com/Bios-Marcel/join/session"

	"go.uber.org/zap"
)

type fixture struct {
	service   *Service
	client    *blobstore.Client
	durable   session.Storage
	ephemeral session.Storage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zap.NewNop().Sugar()
	srv := httptest.NewServer(blobstore.NewServer(blobstore.NewMemoryBackend(), "token", log))
	t.Cleanup(srv.Close)

	fixed := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	return &fixture{
		service:   New(avatar.New(func(int) int { return 0x123456 }), func() time.Time { return fixed }, log),
		client:    blobstore.NewClient(srv.URL, "token", 0, log),
		durable:   session.NewMemoryStore().Scope("client"),
		ephemeral: session.NewMemoryStore().Scope("tab"),
	}
}

func (f *fixture) repo() *repository.Repository {
	return repository.New(f.client, zap.NewNop().Sugar())
}

func (f *fixture) session() *session.Session {
	return session.New(f.repo(), f.durable, f.ephemeral)
}

func (f *fixture) register(t *testing.T, name, email, password string) {
	t.Helper()
	_, err := f.service.Register(context.Background(), f.repo(), RegisterInput{
		Name: name, Email: email, Password: password, PasswordConfirm: password,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
}

func (f *fixture) stored(t *testing.T) *repository.Repository {
	t.Helper()
	repo := f.repo()
	if err := repo.LoadAll(context.Background()); err != nil {
		t.Fatalf("load all: %v", err)
	}
	return repo
}

func TestRegisterAppendsSeededUser(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ann Lee", "ann@example.com", "secret")
	f.register(t, "Bob", "bob@example.com", "hunter2")

	users := f.stored(t).Users()
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	ann := users[0]
	if ann.ID != 0 || users[1].ID != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", ann.ID, users[1].ID)
	}
	if len(ann.Tasks) != 3 || len(ann.Contacts) != 3 {
		t.Fatalf("expected 3 tasks and 3 contacts, got %d and %d", len(ann.Tasks), len(ann.Contacts))
	}
	if !strings.Contains(ann.SVG, ">AL</text>") || !strings.Contains(ann.SVG, "#123456") {
		t.Fatalf("unexpected avatar %s", ann.SVG)
	}
	if ann.Tasks[0].Assignments[0].SVG != ann.SVG {
		t.Fatal("expected seed tasks to be assigned to the new user")
	}

	base := int(time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC).UnixMilli())
	if ann.Tasks[0].ID != base || ann.Contacts[2].ID != base+5 {
		t.Fatalf("unexpected seed ids %d..%d", ann.Tasks[0].ID, ann.Contacts[2].ID)
	}
	if !strings.Contains(ann.Contacts[1].Monogram, `fill="#7e356"`) {
		t.Fatalf("unexpected seed contact monogram %s", ann.Contacts[1].Monogram)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Register(context.Background(), f.repo(), RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: "a", PasswordConfirm: "b",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if n := len(f.stored(t).Users()); n != 0 {
		t.Fatalf("expected no users, got %d", n)
	}
}

func TestLoginOnlyAcceptsRegisteredAccount(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ann", "ann@example.com", "secret")
	ctx := context.Background()

	_, err := f.service.Login(ctx, f.session(), LoginInput{Email: "guenther@jauch.de", Password: "1234"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("seed contact login: expected ErrInvalidCredentials, got %v", err)
	}
	_, err = f.service.Login(ctx, f.session(), LoginInput{Email: "ann@example.com", Password: "Secret"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	user, err := f.service.Login(ctx, f.session(), LoginInput{Email: "ann@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != 0 {
		t.Fatalf("expected user 0, got %d", user.ID)
	}
	if id, ok, _ := f.ephemeral.Get(session.ActiveUserKey); !ok || id != "0" {
		t.Fatalf("expected ephemeral session 0, got %q %v", id, ok)
	}
	if _, ok, _ := f.durable.Get(session.ActiveUserKey); ok {
		t.Fatal("expected no durable session without remember")
	}
}

func TestLoginRememberUsesDurableStorage(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ann", "ann@example.com", "secret")
	f.register(t, "Bob", "bob@example.com", "pw")

	_, err := f.service.Login(context.Background(), f.session(), LoginInput{
		Email: "bob@example.com", Password: "pw", Remember: true,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id, ok, _ := f.durable.Get(session.ActiveUserKey); !ok || id != "1" {
		t.Fatalf("expected durable session 1, got %q %v", id, ok)
	}

	sess := f.session()
	user, err := sess.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user == nil || user.Email != "bob@example.com" {
		t.Fatalf("expected bob, got %+v", user)
	}
}

func TestGuestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.GuestLogin(ctx, f.session()); !errors.Is(err, ErrGuestUnavailable) {
		t.Fatalf("expected ErrGuestUnavailable, got %v", err)
	}

	f.register(t, "Ann", "ann@example.com", "secret")
	if err := f.service.EnsureGuest(ctx, f.repo()); err != nil {
		t.Fatalf("ensure guest: %v", err)
	}
	if err := f.service.EnsureGuest(ctx, f.repo()); err != nil {
		t.Fatalf("ensure guest twice: %v", err)
	}
	if n := len(f.stored(t).Users()); n != 2 {
		t.Fatalf("expected a single guest record, got %d users", n)
	}

	user, err := f.service.GuestLogin(ctx, f.session())
	if err != nil {
		t.Fatalf("guest login: %v", err)
	}
	if user.Email != GuestEmail || user.ID != 1 {
		t.Fatalf("unexpected guest %+v", user)
	}
	if id, ok, _ := f.ephemeral.Get(session.ActiveUserKey); !ok || id != "1" {
		t.Fatalf("expected ephemeral guest session, got %q %v", id, ok)
	}
	if _, ok, _ := f.durable.Get(session.ActiveUserKey); ok {
		t.Fatal("guest sessions must not be durable")
	}
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ann", "ann@example.com", "secret")
	sess := f.session()

	if err := f.service.Logout(sess); err != nil {
		t.Fatalf("logout without session: %v", err)
	}

	_ = sess.Establish(0, true)
	_ = sess.Establish(0, false)
	if err := f.service.Logout(sess); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if id, _ := sess.ActiveUserID(); id != "" {
		t.Fatalf("expected no active user, got %q", id)
	}
}

func TestUpdatePassword(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ann", "ann@example.com", "old")
	ctx := context.Background()

	sess := f.session()
	_ = sess.Establish(0, false)
	user, err := sess.Resolve(ctx)
	if err != nil || user == nil {
		t.Fatalf("resolve: %+v %v", user, err)
	}

	if err := f.service.UpdatePassword(ctx, sess.Repository(), user, "new"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	if _, err := f.service.Login(ctx, f.session(), LoginInput{Email: "ann@example.com", Password: "new"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := f.service.Login(ctx, f.session(), LoginInput{Email: "ann@example.com", Password: "old"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected old password to fail, got %v", err)
	}
	if got := f.stored(t).Users()[0]; len(got.Tasks) != 3 {
		t.Fatalf("expected tasks to survive the password change, got %d", len(got.Tasks))
	}
}
