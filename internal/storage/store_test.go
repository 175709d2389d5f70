package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agric-empower/portal/internal/testutil"
)

// exerciseStore runs the behavior every backend shares.
func exerciseStore(t *testing.T, newStore func(t *testing.T, quota int) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t, 0)
		if _, err := s.Get(ctx, "client-a", "sf_user"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("set replaces", func(t *testing.T) {
		s := newStore(t, 0)
		if err := s.Set(ctx, "client-a", "sf_user", "one"); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := s.Set(ctx, "client-a", "sf_user", "two"); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := s.Get(ctx, "client-a", "sf_user")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != "two" {
			t.Fatalf("expected last write to win, got %q", got)
		}
	})

	t.Run("clients are isolated", func(t *testing.T) {
		s := newStore(t, 0)
		if err := s.Set(ctx, "client-a", "sf_user", "a"); err != nil {
			t.Fatalf("set: %v", err)
		}
		if _, err := s.Get(ctx, "client-b", "sf_user"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected other client to see nothing, got %v", err)
		}
		if err := s.Clear(ctx, "client-b"); err != nil {
			t.Fatalf("clear: %v", err)
		}
		if got, err := s.Get(ctx, "client-a", "sf_user"); err != nil || got != "a" {
			t.Fatalf("clear leaked across clients: %q %v", got, err)
		}
	})

	t.Run("remove and clear", func(t *testing.T) {
		s := newStore(t, 0)
		_ = s.Set(ctx, "client-a", "sf_user", "p")
		_ = s.Set(ctx, "client-a", "contactMessages", "[]")
		if err := s.Remove(ctx, "client-a", "sf_user"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if err := s.Remove(ctx, "client-a", "sf_user"); err != nil {
			t.Fatalf("second remove: %v", err)
		}
		if _, err := s.Get(ctx, "client-a", "sf_user"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected removed key to be gone, got %v", err)
		}
		if err := s.Clear(ctx, "client-a"); err != nil {
			t.Fatalf("clear: %v", err)
		}
		if _, err := s.Get(ctx, "client-a", "contactMessages"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected clear to remove every key, got %v", err)
		}
		if err := s.Clear(ctx, "client-a"); err != nil {
			t.Fatalf("clearing an empty store: %v", err)
		}
	})

	t.Run("quota", func(t *testing.T) {
		s := newStore(t, 32)
		if err := s.Set(ctx, "client-a", "k", strings.Repeat("x", 20)); err != nil {
			t.Fatalf("set within quota: %v", err)
		}
		if err := s.Set(ctx, "client-a", "other", strings.Repeat("y", 20)); !errors.Is(err, ErrQuotaExceeded) {
			t.Fatalf("expected ErrQuotaExceeded, got %v", err)
		}
		// Replacing a value only charges the difference.
		if err := s.Set(ctx, "client-a", "k", strings.Repeat("z", 31)); err != nil {
			t.Fatalf("replace within quota: %v", err)
		}
		got, _ := s.Get(ctx, "client-a", "k")
		if got != strings.Repeat("z", 31) {
			t.Fatalf("unexpected value after replace: %q", got)
		}
		if _, err := s.Get(ctx, "client-a", "other"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("rejected write must not be stored, got %v", err)
		}
	})

	t.Run("empty client", func(t *testing.T) {
		s := newStore(t, 0)
		if err := s.Set(ctx, "", "k", "v"); !errors.Is(err, ErrInvalidClient) {
			t.Fatalf("expected ErrInvalidClient, got %v", err)
		}
		if _, err := s.Get(ctx, "", "k"); !errors.Is(err, ErrInvalidClient) {
			t.Fatalf("expected ErrInvalidClient, got %v", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, func(_ *testing.T, quota int) Store {
		return NewMemoryStore(quota)
	})
}

func TestMemoryStoreEvictsLeastRecentClient(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, WithClientLimit(2, 0))

	for _, id := range []string{"client-a", "client-b"} {
		if err := s.Set(ctx, id, "sf_user", `{"role":"farmer"}`); err != nil {
			t.Fatalf("set %s: %v", id, err)
		}
	}
	if _, err := s.Get(ctx, "client-a", "sf_user"); err != nil {
		t.Fatalf("get client-a: %v", err)
	}
	if err := s.Set(ctx, "client-c", "sf_user", `{"role":"admin"}`); err != nil {
		t.Fatalf("set client-c: %v", err)
	}

	if got := s.Clients(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}
	if _, err := s.Get(ctx, "client-b", "sf_user"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected client-b evicted, got %v", err)
	}
	for _, id := range []string{"client-a", "client-c"} {
		if _, err := s.Get(ctx, id, "sf_user"); err != nil {
			t.Fatalf("expected %s kept, got %v", id, err)
		}
	}
}

func TestMemoryStoreExpiresIdleClients(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, WithClientLimit(0, 50*time.Millisecond))

	if err := s.Set(ctx, "client-a", "sf_user", `{"role":"farmer"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(150 * time.Millisecond)

	if _, err := s.Get(ctx, "client-a", "sf_user"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected idle client expired, got %v", err)
	}
}

func TestMemoryStoreUnboundedByDefault(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	for i := range 100 {
		if err := s.Set(ctx, fmt.Sprintf("client-%d", i), "sf_user", "{}"); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	if got := s.Clients(); got != 100 {
		t.Fatalf("expected 100 clients, got %d", got)
	}
}

func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, func(t *testing.T, quota int) Store {
		s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "store.db"), quota)
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(path, 0)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := s.Set(ctx, "client-a", "sf_user", `{"role":"farmer"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	_ = s.Close()

	reopened, err := NewSQLiteStore(path, 0)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	got, err := reopened.Get(ctx, "client-a", "sf_user")
	if err != nil || got != `{"role":"farmer"}` {
		t.Fatalf("unexpected value after reopen: %q %v", got, err)
	}
}

func TestFirestoreStore(t *testing.T) {
	exerciseStore(t, func(t *testing.T, quota int) Store {
		return NewFirestoreStore(testutil.NewFirestoreClient(t), quota)
	})
}

func TestFits(t *testing.T) {
	items := map[string]string{"a": "1234"}
	if !fits(0, items, "b", strings.Repeat("x", 1000)) {
		t.Fatal("zero quota should be unlimited")
	}
	if !fits(10, items, "a", "123456789") {
		t.Fatal("replacement should only count the new value")
	}
	if fits(10, items, "b", "123456") {
		t.Fatal("expected write to exceed quota")
	}
}
