package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/GH-57/First-Project/internal/apperr"
	"github.com/GH-57/First-Project/internal/proverb"
	"github.com/GH-57/First-Project/internal/store"
)

func testAccount(email, nickname string) store.Account {
	return store.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Nickname:     nickname,
		CreatedAt:    time.Now(),
	}
}

func TestCreateAccount_Duplicate(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	first := testAccount("a@x.com", "Nick")
	if err := s.CreateAccount(ctx, first); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}

	err := s.CreateAccount(ctx, testAccount("a@x.com", "Other"))
	if !errors.Is(err, apperr.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// the first record must be unchanged by the failed second attempt
	got, err := s.AccountByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("AccountByEmail error: %v", err)
	}
	if got.ID != first.ID || got.Nickname != "Nick" {
		t.Fatalf("first account was modified: %+v", got)
	}
}

func TestAccountByEmail_Unknown(t *testing.T) {
	t.Parallel()

	s := New()
	_, err := s.AccountByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, apperr.ErrUnknownAccount) {
		t.Fatalf("expected ErrUnknownAccount, got %v", err)
	}
}

func TestChatHistory_AppendOrder(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	prompts := []string{"오늘 기분 최고", "조금 우울해", "화가 난다"}
	for _, p := range prompts {
		rec := store.ChatRecord{
			ID:        uuid.New(),
			Email:     "a@x.com",
			Prompt:    p,
			Mood:      proverb.MoodJoy,
			Proverb:   proverb.Lookup(proverb.MoodJoy),
			CreatedAt: time.Now(),
		}
		if err := s.AppendChat(ctx, rec); err != nil {
			t.Fatalf("AppendChat error: %v", err)
		}
	}

	recs, err := s.ChatHistory(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("ChatHistory error: %v", err)
	}
	if len(recs) != len(prompts) {
		t.Fatalf("got %d records, want %d", len(recs), len(prompts))
	}
	for i, p := range prompts {
		if recs[i].Prompt != p {
			t.Fatalf("record %d out of order: got %q want %q", i, recs[i].Prompt, p)
		}
	}
}

func TestChatHistory_EmptyForUnknownEmail(t *testing.T) {
	t.Parallel()

	s := New()
	recs, err := s.ChatHistory(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("ChatHistory error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty history, got %d records", len(recs))
	}
}

func TestCreateAccount_ConcurrentSameEmail(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.CreateAccount(ctx, testAccount("race@x.com", "N"))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else if !errors.Is(err, apperr.ErrEmailTaken) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("%d writers succeeded, want exactly 1", wins)
	}
}
