package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hacksnooze/hacksnooze-go/internal/client/client"
	"github.com/hacksnooze/hacksnooze-go/internal/client/models"
	"github.com/hacksnooze/hacksnooze-go/internal/client/session"
	"github.com/hacksnooze/hacksnooze-go/internal/dbx"
	"github.com/hacksnooze/hacksnooze-go/internal/logging"
)

// AuthService handles signup, login, and session restore/persistence.
// Signup and login failures propagate to the caller for display; session
// restore never fails outward — a stale or invalid stored credential
// degrades to "not logged in".
type AuthService struct {
	client client.Client
	db     *sql.DB
	log    logging.Logger
}

// NewAuthService binds the service to the API client and the local session
// database.
func NewAuthService(c client.Client, db *sql.DB, log logging.Logger) *AuthService {
	return &AuthService{client: c, db: db, log: log}
}

func (a *AuthService) sessionRepo() *session.Repository {
	return session.NewRepository(a.db)
}

// Signup registers a new account and returns the signed-in user. A taken
// username surfaces as client.ErrDuplicateUsername.
func (a *AuthService) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	rec, token, err := a.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, err
	}
	return models.NewUserFromRecord(rec, token), nil
}

// Login authenticates an existing account. Rejected credentials surface as
// client.ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	rec, token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return models.NewUserFromRecord(rec, token), nil
}

// RestoreSession tries to rebuild the user from locally stored credentials.
// It returns nil on any failure — missing credentials, network error,
// rejected token — never an error: startup with a bad session must land on
// "logged out", not crash.
func (a *AuthService) RestoreSession(ctx context.Context) *models.User {
	repo := a.sessionRepo()

	username, err := repo.Get(ctx, session.KeyUsername)
	if err != nil || len(username) == 0 {
		return nil
	}
	token, err := repo.Get(ctx, session.KeyToken)
	if err != nil || len(token) == 0 {
		return nil
	}

	rec, err := a.client.GetUser(ctx, string(token), string(username))
	if err != nil {
		a.log.Warn(ctx, "session restore failed, starting logged out", "username", string(username), "error", err)
		return nil
	}
	return models.NewUserFromRecord(rec, string(token))
}

// SaveSession persists the user's username and token in one transaction so
// a later RestoreSession can pick them up.
func (a *AuthService) SaveSession(ctx context.Context, user *models.User) error {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewRepository(tx)
		if err := repo.Set(ctx, session.KeyUsername, []byte(user.Username)); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyToken, []byte(user.LoginToken))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearSession wipes stored credentials (logout).
func (a *AuthService) ClearSession(ctx context.Context) error {
	if err := a.sessionRepo().Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
