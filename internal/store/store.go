// Package store defines the persistence boundary for accounts and per-user
// chat history. Handlers only see the Store interface; the memory and mysql
// subpackages provide the two backends.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GH-57/First-Project/internal/proverb"
)

// Account is a registered user. Email is the identity key; records are never
// updated or deleted.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Nickname     string
	CreatedAt    time.Time
}

// ChatRecord is one classified prompt and the proverb it resolved to,
// appended to the owning account's history.
type ChatRecord struct {
	ID        uuid.UUID
	Email     string
	Prompt    string
	Mood      proverb.Mood
	Proverb   proverb.Entry
	CreatedAt time.Time
}

// Store is the account and chat-history backend.
//
// CreateAccount returns apperr.ErrEmailTaken when the email is already
// registered. AccountByEmail returns apperr.ErrUnknownAccount when no account
// matches. ChatHistory returns records in append order; an account with no
// history yields an empty slice, not an error.
type Store interface {
	CreateAccount(ctx context.Context, a Account) error
	AccountByEmail(ctx context.Context, email string) (*Account, error)
	AppendChat(ctx context.Context, rec ChatRecord) error
	ChatHistory(ctx context.Context, email string) ([]ChatRecord, error)
}
