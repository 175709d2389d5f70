// Package storage holds each client's local store: a small key-value
// namespace that only the owning client reads or writes.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the key is absent.
	ErrNotFound = errors.New("key not found")
	// ErrQuotaExceeded indicates the write would take the client past its quota.
	ErrQuotaExceeded = errors.New("local store quota exceeded")
	// ErrInvalidClient indicates an empty client identifier.
	ErrInvalidClient = errors.New("client id required")
)

// Store is the per-client key-value store. Values are opaque strings.
type Store interface {
	Get(ctx context.Context, clientID, key string) (string, error)
	Set(ctx context.Context, clientID, key, value string) error
	Remove(ctx context.Context, clientID, key string) error
	// Clear removes every key owned by clientID.
	Clear(ctx context.Context, clientID string) error
}

// usage is the byte count charged against a client's quota.
func usage(items map[string]string) int {
	n := 0
	for k, v := range items {
		n += len(k) + len(v)
	}
	return n
}

// fits reports whether replacing key with value keeps items within quota.
// A non-positive quota means unlimited.
func fits(quota int, items map[string]string, key, value string) bool {
	if quota <= 0 {
		return true
	}
	n := usage(items) + len(key) + len(value)
	if old, ok := items[key]; ok {
		n -= len(key) + len(old)
	}
	return n <= quota
}
