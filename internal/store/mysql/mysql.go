// Package mysql implements store.Store on MySQL. Uniqueness of emails is
// enforced by the accounts primary key, so a duplicate registration loses the
// race at the database rather than in application code.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/GH-57/First-Project/internal/apperr"
	"github.com/GH-57/First-Project/internal/config"
	"github.com/GH-57/First-Project/internal/proverb"
	"github.com/GH-57/First-Project/internal/store"
)

const mysqlErrDuplicateEntry = 1062

type Store struct {
	db *sql.DB
}

// Connect opens the MySQL pool, applies pending migrations and returns the
// store. Connection failures are fatal: the service cannot run without its
// configured backend.
func Connect(cfg config.DatabaseConfig) *Store {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Unable to open DB connection: %v\n", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	runMigrations(dsn)

	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) CreateAccount(ctx context.Context, a store.Account) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts (id, email, password_hash, nickname, created_at) VALUES (?, ?, ?, ?, ?)",
		a.ID.String(), a.Email, a.PasswordHash, a.Nickname, a.CreatedAt)

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return apperr.ErrEmailTaken
	}
	return err
}

func (s *Store) AccountByEmail(ctx context.Context, email string) (*store.Account, error) {
	var (
		a  store.Account
		id string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, nickname, created_at FROM accounts WHERE email = ?",
		email).Scan(&id, &a.Email, &a.PasswordHash, &a.Nickname, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, apperr.ErrUnknownAccount
	}
	if err != nil {
		return nil, err
	}

	a.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) AppendChat(ctx context.Context, rec store.ChatRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_records (id, email, prompt, mood, verse, content, comment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Email, rec.Prompt, string(rec.Mood),
		rec.Proverb.Verse, rec.Proverb.Content, rec.Proverb.Comment, rec.CreatedAt)
	return err
}

func (s *Store) ChatHistory(ctx context.Context, email string) ([]store.ChatRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, prompt, mood, verse, content, comment, created_at
		 FROM chat_records WHERE email = ? ORDER BY seq`,
		email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []store.ChatRecord{}
	for rows.Next() {
		var (
			rec  store.ChatRecord
			id   string
			mood string
		)
		if err := rows.Scan(&id, &rec.Email, &rec.Prompt, &mood,
			&rec.Proverb.Verse, &rec.Proverb.Content, &rec.Proverb.Comment, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		rec.Mood = proverb.Mood(mood)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
