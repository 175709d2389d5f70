package storage

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore keeps client stores in process memory. Clients are held in an
// LRU; with a client limit set, the least recently used client is dropped
// once the limit is reached and idle clients expire.
type MemoryStore struct {
	mu      sync.Mutex
	quota   int
	clients *expirable.LRU[string, map[string]string]
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	maxClients int
	idle       time.Duration
}

// WithClientLimit caps the number of clients kept and expires a client
// after idle without a read or write. Zero values disable either bound.
func WithClientLimit(maxClients int, idle time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.maxClients = maxClients
		o.idle = idle
	}
}

// NewMemoryStore returns an empty store. quota caps each client's usage in
// bytes; zero disables the cap.
func NewMemoryStore(quota int, opts ...MemoryOption) *MemoryStore {
	var o memoryOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxClients < 0 {
		o.maxClients = 0
	}
	return &MemoryStore{
		quota:   quota,
		clients: expirable.NewLRU[string, map[string]string](o.maxClients, nil, o.idle),
	}
}

// Get returns the value stored under key. A hit counts as activity.
func (s *MemoryStore) Get(_ context.Context, clientID, key string) (string, error) {
	if clientID == "" {
		return "", ErrInvalidClient
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.clients.Get(clientID)
	if !ok {
		return "", ErrNotFound
	}
	s.clients.Add(clientID, items)
	v, ok := items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key, replacing any prior value.
func (s *MemoryStore) Set(_ context.Context, clientID, key, value string) error {
	if clientID == "" {
		return ErrInvalidClient
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items, _ := s.clients.Get(clientID)
	if !fits(s.quota, items, key, value) {
		return ErrQuotaExceeded
	}
	if items == nil {
		items = make(map[string]string)
	}
	items[key] = value
	s.clients.Add(clientID, items)
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *MemoryStore) Remove(_ context.Context, clientID, key string) error {
	if clientID == "" {
		return ErrInvalidClient
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if items, ok := s.clients.Peek(clientID); ok {
		delete(items, key)
	}
	return nil
}

// Clear drops the client's namespace.
func (s *MemoryStore) Clear(_ context.Context, clientID string) error {
	if clientID == "" {
		return ErrInvalidClient
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients.Remove(clientID)
	return nil
}

// Clients reports how many client namespaces are held.
func (s *MemoryStore) Clients() int {
	return s.clients.Len()
}

var _ Store = (*MemoryStore)(nil)
