// Package session resolves which user is logged in from the durable and
// ephemeral storage of the current browser.
package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Bios-Marcel/join/data"
	"github.com/Bios-Marcel/join/repository"
)

// ActiveUserKey is the storage key holding the logged-in user's id.
const ActiveUserKey = "actualUser"

// Session ties one browser's storages to a request-scoped repository.
type Session struct {
	repo      *repository.Repository
	durable   Storage
	ephemeral Storage
	user      *data.User
}

func New(repo *repository.Repository, durable, ephemeral Storage) *Session {
	return &Session{
		repo:      repo,
		durable:   durable,
		ephemeral: ephemeral,
	}
}

// ActiveUserID reads durable storage first and falls back to ephemeral
// storage. It returns "" when neither holds an id.
func (s *Session) ActiveUserID() (string, error) {
	id, ok, err := s.durable.Get(ActiveUserKey)
	if err != nil {
		return "", fmt.Errorf("read durable session: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}

	id, _, err = s.ephemeral.Get(ActiveUserKey)
	if err != nil {
		return "", fmt.Errorf("read ephemeral session: %w", err)
	}
	return id, nil
}

// LoggedIn reports whether either storage holds an id.
func (s *Session) LoggedIn() (bool, error) {
	id, err := s.ActiveUserID()
	return id != "", err
}

// Resolve loads all users and picks the record matching the active id.
// A missing session or an id without a matching record leaves the
// current user nil without an error.
func (s *Session) Resolve(ctx context.Context) (*data.User, error) {
	if err := s.repo.LoadAll(ctx); err != nil {
		return nil, err
	}

	id, err := s.ActiveUserID()
	if err != nil {
		return nil, err
	}

	s.user = nil
	if id == "" {
		return nil, nil
	}
	if user, ok := s.repo.FindByID(id); ok {
		s.user = user
	}
	return s.user, nil
}

// User is the record found by the last Resolve, or nil.
func (s *Session) User() *data.User {
	return s.user
}

// Repository is the repository the session resolves against.
func (s *Session) Repository() *repository.Repository {
	return s.repo
}

// Establish stores userID in durable storage when remember is set and in
// ephemeral storage otherwise.
func (s *Session) Establish(userID int, remember bool) error {
	target := s.ephemeral
	if remember {
		target = s.durable
	}
	if err := target.Set(ActiveUserKey, strconv.Itoa(userID)); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Clear removes the id from both storages.
func (s *Session) Clear() error {
	if err := s.durable.Remove(ActiveUserKey); err != nil {
		return fmt.Errorf("clear durable session: %w", err)
	}
	if err := s.ephemeral.Remove(ActiveUserKey); err != nil {
		return fmt.Errorf("clear ephemeral session: %w", err)
	}
	s.user = nil
	return nil
}
