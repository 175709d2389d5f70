package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/agric-empower/portal/internal/storage"
)

func fullRecord() Record {
	return Record{
		FullName:      "Amina Okello",
		FirstName:     "Amina",
		LastName:      "Okello",
		Email:         "amina@agric-empower.org",
		Phone:         "+256 700 000 001",
		Location:      "Ocea",
		Role:          RoleFarmer,
		ProfilePicURL: "./images/amina.jpg",
		IsActive:      true,
		CreatedAt:     "2025-03-01T08:00:00.000Z",
		JoinDate:      "2025-03-01T08:00:00.000Z",
		LoginTime:     "2025-03-02T09:15:30.123Z",
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemoryStore(0))

	for _, rec := range []Record{fullRecord(), {}, {Role: "extension-officer"}} {
		if err := s.Save(ctx, "client-1", rec); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := s.Load(ctx, "client-1")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got != rec {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, rec)
		}
	}
}

func TestStoreLoadMissing(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(0))
	if _, err := s.Load(context.Background(), "client-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreLoadDiscardsUnusableRecord(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed", "{not json"},
		{"null", "null"},
		{"padded null", "  null\n"},
		{"number", "42"},
		{"string", `"x"`},
		{"array", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend := storage.NewMemoryStore(0)
			if err := backend.Set(ctx, "client-1", StorageKey, tt.raw); err != nil {
				t.Fatalf("seed: %v", err)
			}

			s := NewStore(backend)
			if _, err := s.Load(ctx, "client-1"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			if _, err := backend.Get(ctx, "client-1", StorageKey); !errors.Is(err, storage.ErrNotFound) {
				t.Fatalf("expected unusable entry to be removed, got %v", err)
			}
		})
	}
}

func TestStoreClearRemovesEverything(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryStore(0)
	s := NewStore(backend)
	if err := s.Save(ctx, "client-1", fullRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := backend.Set(ctx, "client-1", "contactMessages", "[]"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := s.Clear(ctx, "client-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := s.Load(ctx, "client-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
	if _, err := backend.Get(ctx, "client-1", "contactMessages"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected contact messages to be cleared, got %v", err)
	}
}

func TestStoreSavePropagatesQuota(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(16))
	err := s.Save(context.Background(), "client-1", fullRecord())
	if !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestStoreSaveLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemoryStore(0))
	first := fullRecord()
	second := fullRecord()
	second.Role = RoleAdmin

	_ = s.Save(ctx, "client-1", first)
	_ = s.Save(ctx, "client-1", second)

	got, err := s.Load(ctx, "client-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Role != RoleAdmin {
		t.Fatalf("expected last write to win, got role %q", got.Role)
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{storage.ErrQuotaExceeded, "quota_exceeded"},
		{storage.ErrInvalidClient, "invalid_client"},
		{context.Canceled, "cancelled"},
		{errors.New("boom"), "internal_error"},
	}
	for _, tt := range tests {
		if got := categorizeError(tt.err); got != tt.want {
			t.Fatalf("categorizeError(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}
