package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

type memoryStore struct {
	items map[string]Credential
	mutex sync.RWMutex
}

// NewMemory builds an in-memory credential store from the given records.
func NewMemory(creds ...Credential) Store {
	items := make(map[string]Credential, len(creds))
	for _, c := range creds {
		if c.Username == "" {
			continue
		}
		items[c.Username] = c
	}
	return &memoryStore{items: items}
}

// SeededMemory returns the store pre-loaded with the reference
// deployment's mock users (user1/password1, user2/password2).
func SeededMemory() Store {
	return NewMemory(
		Credential{
			Username:     "user1",
			PasswordHash: sha256Hex("password1"),
			UserID:       "user1",
			Email:        "user1@example.com",
		},
		Credential{
			Username:     "user2",
			PasswordHash: sha256Hex("password2"),
			UserID:       "user2",
			Email:        "user2@example.com",
		},
	)
}

func (s *memoryStore) Lookup(_ context.Context, username string) (Credential, bool, error) {
	s.mutex.RLock()
	cred, ok := s.items[username]
	s.mutex.RUnlock()
	return cred, ok, nil
}

func (s *memoryStore) Close(context.Context) error {
	return nil
}

func sha256Hex(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
