package homecache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// memStore is an in-memory Store; writes signal done for async callers.
type memStore struct {
	mu      sync.Mutex
	entries map[string]string
	getErr  error
	done    chan struct{}
}

func newMemStore() *memStore {
	return &memStore{
		entries: map[string]string{},
		done:    make(chan struct{}, 8),
	}
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", s.getErr
	}
	v, ok := s.entries[key]
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *memStore) Del(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *memStore) get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *memStore) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for async cache operation")
	}
}

func TestKey(t *testing.T) {
	if Key(true) != KeyPrivate {
		t.Errorf("Admin viewers must read %s, got %s", KeyPrivate, Key(true))
	}
	if Key(false) != KeyPublic {
		t.Errorf("Anonymous viewers must read %s, got %s", KeyPublic, Key(false))
	}
	if KeyPrivate == KeyPublic {
		t.Error("Auth classes must never share a cache entry")
	}
}

func TestRead_AuthClassSelectsKey(t *testing.T) {
	store := newMemStore()
	store.entries[KeyPublic] = "<html>public</html>"
	store.entries[KeyPrivate] = "<html>private</html>"
	g := NewWithStore(store)

	ctx := context.Background()
	if html, hit := g.Read(ctx, false); !hit || html != "<html>public</html>" {
		t.Errorf("Anonymous read = (%q, %v), want the public variant", html, hit)
	}
	if html, hit := g.Read(ctx, true); !hit || html != "<html>private</html>" {
		t.Errorf("Admin read = (%q, %v), want the private variant", html, hit)
	}
}

func TestRead_MissAndFailureDegrade(t *testing.T) {
	store := newMemStore()
	g := NewWithStore(store)
	ctx := context.Background()

	if _, hit := g.Read(ctx, false); hit {
		t.Error("Empty store must read as a miss")
	}

	store.entries[KeyPublic] = ""
	if _, hit := g.Read(ctx, false); hit {
		t.Error("Empty cached value must read as a miss")
	}

	store.getErr = errors.New("connection refused")
	store.entries[KeyPublic] = "<html></html>"
	if _, hit := g.Read(ctx, false); hit {
		t.Error("Store failure must degrade to a miss, not an error page")
	}
}

func TestStoreAsync_WritesAuthClassKey(t *testing.T) {
	store := newMemStore()
	g := NewWithStore(store)

	g.StoreAsync(false, "<html>rendered</html>")
	store.wait(t)

	if v, ok := store.get(KeyPublic); !ok || v != "<html>rendered</html>" {
		t.Errorf("Public write landed as (%q, %v)", v, ok)
	}
	if _, ok := store.get(KeyPrivate); ok {
		t.Error("Anonymous write must not touch the private variant")
	}
}

func TestPurge_DeletesBothVariants(t *testing.T) {
	store := newMemStore()
	store.entries[KeyPublic] = "a"
	store.entries[KeyPrivate] = "b"
	g := NewWithStore(store)

	if err := g.Purge(context.Background()); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if _, ok := store.get(KeyPublic); ok {
		t.Error("Public variant survived the purge")
	}
	if _, ok := store.get(KeyPrivate); ok {
		t.Error("Private variant survived the purge")
	}
}
