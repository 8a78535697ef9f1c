// Package session persists the signed-in user's credentials (username and
// login token) between runs, in a small local SQLite database. It plays the
// role the browser's localStorage plays for the web client: a stale or
// invalid stored token simply degrades to "logged out" at startup.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hacksnooze/hacksnooze-go/internal/dbx"
)

// Well-known keys used by the auth service.
const (
	KeyUsername = "username"
	KeyToken    = "token"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`

// Open opens (creating if needed) the session database at path. The caller
// must have imported an sqlite driver registered under the name "sqlite".
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}
	return db, nil
}

// Repository is a key/value view over the session table. It accepts either
// *sql.DB or a transaction handle, so multi-key writes can go through
// dbx.WithTx.
type Repository struct {
	db dbx.DBTX
}

func NewRepository(db dbx.DBTX) *Repository {
	return &Repository{db: db}
}

// Get returns the stored value for key, or nil when the key is absent.
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session[%s]: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w", key, err)
	}
	return nil
}

// Clear wipes all stored session data (logout).
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
