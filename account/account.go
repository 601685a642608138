// Package account implements sign up, login, guest login, logout and
// password changes on top of the user repository.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bios-Marcel/join/avatar"
	"github.com/Bios-Marcel/join/data"
	"github.com/Bios-Marcel/join/repository"
	"github.com/Bios-Marcel/join/session"

	"go.uber.org/zap"
)

// Guest sentinel credentials.
const (
	GuestEmail    = "guest"
	GuestPassword = "guest"
	GuestName     = "Guest"
)

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrGuestUnavailable   = errors.New("guest account not available")
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

type LoginInput struct {
	Email    string
	Password string
	Remember bool
}

// Service runs the account flows. It holds no per-user state; the
// repository and session are passed in for each request.
type Service struct {
	avatars *avatar.Generator
	now     func() time.Time
	log     *zap.SugaredLogger
}

// New creates a service. A nil now uses time.Now.
func New(avatars *avatar.Generator, now func() time.Time, log *zap.SugaredLogger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		avatars: avatars,
		now:     now,
		log:     log.Named("account"),
	}
}

// Register appends a new user seeded with demo tasks and contacts. The
// password and its confirmation must match exactly; nothing else is
// checked, duplicate emails included.
func (s *Service) Register(ctx context.Context, repo *repository.Repository, input RegisterInput) (data.User, error) {
	if input.Password != input.PasswordConfirm {
		return data.User{}, ErrPasswordMismatch
	}

	if err := repo.LoadAll(ctx); err != nil {
		return data.User{}, err
	}

	user := s.newUser(repo.NextID(), input.Name, input.Email, input.Password)
	if err := repo.Append(ctx, user); err != nil {
		return data.User{}, fmt.Errorf("register user: %w", err)
	}

	s.log.Infow("user registered", "user_id", user.ID, "tasks", len(user.Tasks), "contacts", len(user.Contacts))
	return user, nil
}

func (s *Service) newUser(id int, name, email, password string) data.User {
	svg := s.avatars.SVG(name)
	ids := &idSequence{next: int(s.now().UnixMilli())}
	return data.User{
		ID:       id,
		Name:     name,
		Email:    email,
		Password: password,
		SVG:      svg,
		Tasks:    seedTasks(svg, ids),
		Contacts: seedContacts(ids),
	}
}

// Login looks for the first user with exactly this email and password
// and stores its id in durable storage when Remember is set, in
// ephemeral storage otherwise.
func (s *Service) Login(ctx context.Context, sess *session.Session, input LoginInput) (data.User, error) {
	repo := sess.Repository()
	if err := repo.LoadAll(ctx); err != nil {
		return data.User{}, err
	}

	user, ok := repo.FindByCredentials(input.Email, input.Password)
	if !ok {
		s.log.Infow("login rejected", "email", input.Email)
		return data.User{}, ErrInvalidCredentials
	}
	if err := sess.Establish(user.ID, input.Remember); err != nil {
		return data.User{}, err
	}

	s.log.Infow("user logged in", "user_id", user.ID, "remember", input.Remember)
	return *user, nil
}

// GuestLogin logs into the guest sentinel account. Guest sessions are
// never remembered.
func (s *Service) GuestLogin(ctx context.Context, sess *session.Session) (data.User, error) {
	user, err := s.Login(ctx, sess, LoginInput{Email: GuestEmail, Password: GuestPassword})
	if errors.Is(err, ErrInvalidCredentials) {
		return data.User{}, ErrGuestUnavailable
	}
	return user, err
}

// EnsureGuest registers the guest sentinel account if it is missing.
func (s *Service) EnsureGuest(ctx context.Context, repo *repository.Repository) error {
	if err := repo.LoadAll(ctx); err != nil {
		return err
	}
	if _, ok := repo.FindByCredentials(GuestEmail, GuestPassword); ok {
		return nil
	}

	user := s.newUser(repo.NextID(), GuestName, GuestEmail, GuestPassword)
	if err := repo.Append(ctx, user); err != nil {
		return fmt.Errorf("create guest: %w", err)
	}
	s.log.Infow("guest account created", "user_id", user.ID)
	return nil
}

// Logout clears both storages. Logging out without a session is a no-op.
func (s *Service) Logout(sess *session.Session) error {
	return sess.Clear()
}

// UpdatePassword changes the password of a resolved user record and
// saves the whole collection. The old password is not asked for.
func (s *Service) UpdatePassword(ctx context.Context, repo *repository.Repository, user *data.User, password string) error {
	user.Password = password
	if err := repo.SaveAll(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	s.log.Infow("password updated", "user_id", user.ID)
	return nil
}
