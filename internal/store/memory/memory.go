// Package memory implements store.Store with process-local maps. Contents are
// lost on restart; a single lock serializes writers so two concurrent
// registrations of the same email cannot both win.
package memory

import (
	"context"
	"sync"

	"github.com/GH-57/First-Project/internal/apperr"
	"github.com/GH-57/First-Project/internal/store"
)

type Store struct {
	mu       sync.RWMutex
	accounts map[string]store.Account
	history  map[string][]store.ChatRecord
}

func New() *Store {
	return &Store{
		accounts: make(map[string]store.Account),
		history:  make(map[string][]store.ChatRecord),
	}
}

func (s *Store) CreateAccount(_ context.Context, a store.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[a.Email]; exists {
		return apperr.ErrEmailTaken
	}
	s.accounts[a.Email] = a
	return nil
}

func (s *Store) AccountByEmail(_ context.Context, email string) (*store.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[email]
	if !ok {
		return nil, apperr.ErrUnknownAccount
	}
	return &a, nil
}

func (s *Store) AppendChat(_ context.Context, rec store.ChatRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history[rec.Email] = append(s.history[rec.Email], rec)
	return nil
}

func (s *Store) ChatHistory(_ context.Context, email string) ([]store.ChatRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.history[email]
	out := make([]store.ChatRecord, len(recs))
	copy(out, recs)
	return out, nil
}
