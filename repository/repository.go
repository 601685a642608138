// Package repository keeps the user collection, which is stored as one
// JSON blob under the "users" key.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Bios-Marcel/join/blobstore"
	"github.com/Bios-Marcel/join/data"

	"go.uber.org/zap"
)

// UsersKey is the blob store key holding the whole collection.
const UsersKey = "users"

// Store is the part of the blob store client the repository needs.
type Store interface {
	GetItem(ctx context.Context, key string) (blobstore.Item, error)
	SetItem(ctx context.Context, key, value string) error
}

// Repository owns the in-memory user list for one request scope. Every
// write replaces the whole remote collection; there is no version check,
// so concurrent writers overwrite each other.
type Repository struct {
	store Store
	log   *zap.SugaredLogger
	users []data.User
}

func New(store Store, log *zap.SugaredLogger) *Repository {
	return &Repository{
		store: store,
		log:   log.Named("repository"),
	}
}

// LoadAll replaces the in-memory list with the stored collection. An
// absent key yields an empty list.
func (r *Repository) LoadAll(ctx context.Context) error {
	item, err := r.store.GetItem(ctx, UsersKey)
	if errors.Is(err, blobstore.ErrNotFound) {
		r.users = []data.User{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	var users []data.User
	if err := json.Unmarshal([]byte(item.Value), &users); err != nil {
		return fmt.Errorf("decode users: %w: %v", blobstore.ErrMalformedEnvelope, err)
	}
	if err := data.ValidateUsers(users); err != nil {
		return fmt.Errorf("decode users: %w", err)
	}
	if users == nil {
		users = []data.User{}
	}

	r.users = users
	r.log.Debugw("users loaded", "count", len(users))
	return nil
}

// SaveAll writes the full in-memory list back to the store.
func (r *Repository) SaveAll(ctx context.Context) error {
	users := r.users
	if users == nil {
		users = []data.User{}
	}
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := r.store.SetItem(ctx, UsersKey, string(raw)); err != nil {
		return fmt.Errorf("save users: %w", err)
	}

	r.log.Debugw("users saved", "count", len(users))
	return nil
}

// Append adds user to the list and saves the collection.
func (r *Repository) Append(ctx context.Context, user data.User) error {
	r.users = append(r.users, user)
	return r.SaveAll(ctx)
}

// Users returns the loaded list. Callers must not keep the slice across
// Append calls.
func (r *Repository) Users() []data.User {
	return r.users
}

// NextID is the id the next appended user gets: the current length.
func (r *Repository) NextID() int {
	return len(r.users)
}

// FindByID compares the ids as strings, the way session storage keeps
// them.
func (r *Repository) FindByID(id string) (*data.User, bool) {
	for i := range r.users {
		if r.users[i].IDString() == id {
			return &r.users[i], true
		}
	}
	return nil, false
}

// FindByCredentials returns the first user whose email and password
// both match exactly.
func (r *Repository) FindByCredentials(email, password string) (*data.User, bool) {
	for i := range r.users {
		if r.users[i].Email == email && r.users[i].Password == password {
			return &r.users[i], true
		}
	}
	return nil, false
}
