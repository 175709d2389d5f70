package storage

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const localStorageCollection = "local_storage"

// firestoreNamespace maps to one client's document.
type firestoreNamespace struct {
	Items     map[string]string `firestore:"items"`
	UpdatedAt time.Time         `firestore:"updated_at"`
}

// FirestoreStore keeps each client's store in one Firestore document.
type FirestoreStore struct {
	client *firestore.Client
	quota  int
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client, quota int) *FirestoreStore {
	return &FirestoreStore{client: client, quota: quota}
}

func (s *FirestoreStore) doc(clientID string) *firestore.DocumentRef {
	return s.client.Collection(localStorageCollection).Doc(clientID)
}

// Get returns the value stored under key.
func (s *FirestoreStore) Get(ctx context.Context, clientID, key string) (string, error) {
	if clientID == "" {
		return "", ErrInvalidClient
	}
	snap, err := s.doc(clientID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", ErrNotFound
		}
		return "", err
	}
	var ns firestoreNamespace
	if err := snap.DataTo(&ns); err != nil {
		return "", err
	}
	v, ok := ns.Items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set writes key with a read-modify-write transaction so the quota check and
// the write see the same document.
func (s *FirestoreStore) Set(ctx context.Context, clientID, key, value string) error {
	if clientID == "" {
		return ErrInvalidClient
	}
	return s.mutate(ctx, clientID, func(items map[string]string) error {
		if !fits(s.quota, items, key, value) {
			return ErrQuotaExceeded
		}
		items[key] = value
		return nil
	})
}

// Remove deletes key. Removing an absent key is not an error.
func (s *FirestoreStore) Remove(ctx context.Context, clientID, key string) error {
	if clientID == "" {
		return ErrInvalidClient
	}
	return s.mutate(ctx, clientID, func(items map[string]string) error {
		delete(items, key)
		return nil
	})
}

// Clear deletes the client's document.
func (s *FirestoreStore) Clear(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrInvalidClient
	}
	_, err := s.doc(clientID).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return err
	}
	return nil
}

func (s *FirestoreStore) mutate(ctx context.Context, clientID string, fn func(map[string]string) error) error {
	docRef := s.doc(clientID)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ns := firestoreNamespace{}
		snap, err := tx.Get(docRef)
		switch {
		case err == nil:
			if err := snap.DataTo(&ns); err != nil {
				return err
			}
		case status.Code(err) != codes.NotFound:
			return err
		}
		if ns.Items == nil {
			ns.Items = make(map[string]string)
		}
		if err := fn(ns.Items); err != nil {
			return err
		}
		ns.UpdatedAt = time.Now().UTC()
		return tx.Set(docRef, ns)
	})
}

var _ Store = (*FirestoreStore)(nil)
