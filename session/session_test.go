package session

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Bios-Marcel/join/blobstore"
	"github.com/Bios-Marcel/join/repository"

	"github.com/boltdb/bolt"
	"go.uber.org/zap"
)

func newRepository(t *testing.T, users string) *repository.Repository {
	t.Helper()
	backend := blobstore.NewMemoryBackend()
	if users != "" {
		_ = backend.Put(repository.UsersKey, users)
	}
	srv := httptest.NewServer(blobstore.NewServer(backend, "token", zap.NewNop().Sugar()))
	t.Cleanup(srv.Close)
	client := blobstore.NewClient(srv.URL, "token", 0, zap.NewNop().Sugar())
	return repository.New(client, zap.NewNop().Sugar())
}

func newBoltStore(t *testing.T) *BoltStore {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "sessions.db"), 0600, nil)
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store, err := NewBoltStore(db)
	if err != nil {
		t.Fatalf("new bolt store: %v", err)
	}
	return store
}

func TestActiveUserIDDurableWins(t *testing.T) {
	durable := NewMemoryStore().Scope("client")
	ephemeral := NewMemoryStore().Scope("tab")
	_ = durable.Set(ActiveUserKey, "1")
	_ = ephemeral.Set(ActiveUserKey, "2")

	sess := New(nil, durable, ephemeral)
	id, err := sess.ActiveUserID()
	if err != nil {
		t.Fatalf("active user id: %v", err)
	}
	if id != "1" {
		t.Fatalf("expected durable id 1, got %q", id)
	}

	_ = durable.Remove(ActiveUserKey)
	if id, _ := sess.ActiveUserID(); id != "2" {
		t.Fatalf("expected ephemeral id 2, got %q", id)
	}
}

func TestClearRemovesBoth(t *testing.T) {
	durable := newBoltStore(t).Scope("client")
	ephemeral := NewMemoryStore().Scope("tab")
	sess := New(nil, durable, ephemeral)

	if err := sess.Establish(3, true); err != nil {
		t.Fatalf("establish durable: %v", err)
	}
	if err := sess.Establish(4, false); err != nil {
		t.Fatalf("establish ephemeral: %v", err)
	}
	if err := sess.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	id, err := sess.ActiveUserID()
	if err != nil {
		t.Fatalf("active user id: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}

	// Clearing twice is fine.
	if err := sess.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestResolve(t *testing.T) {
	repo := newRepository(t, `[{"id":0,"name":"Ann"},{"id":1,"name":"Bob"}]`)
	ephemeral := NewMemoryStore().Scope("tab")
	sess := New(repo, NewMemoryStore().Scope("client"), ephemeral)

	user, err := sess.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user != nil {
		t.Fatalf("expected no user without a session, got %+v", user)
	}

	_ = sess.Establish(1, false)
	user, err = sess.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user == nil || user.Name != "Bob" || sess.User() != user {
		t.Fatalf("expected Bob, got %+v", user)
	}

	_ = ephemeral.Set(ActiveUserKey, "9")
	user, err = sess.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve unknown id: %v", err)
	}
	if user != nil || sess.User() != nil {
		t.Fatalf("expected no user for unknown id, got %+v", user)
	}
}

func TestBoltScopesAreIsolated(t *testing.T) {
	store := newBoltStore(t)
	a := store.Scope("a")
	b := store.Scope("b")

	if err := a.Set(ActiveUserKey, "5"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, _ := b.Get(ActiveUserKey); ok {
		t.Fatal("expected scope b to be empty")
	}
	if value, ok, _ := a.Get(ActiveUserKey); !ok || value != "5" {
		t.Fatalf("unexpected scope a value %q %v", value, ok)
	}
	if err := b.Remove(ActiveUserKey); err != nil {
		t.Fatalf("remove from empty scope: %v", err)
	}
}
