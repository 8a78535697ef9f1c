package client

import (
	"context"

	"github.com/hacksnooze/hacksnooze-go/internal/client/models"
)

// StoryDraft carries the user-supplied story fields for create and edit
// requests. The server fills in StoryID, Username, and CreatedAt.
type StoryDraft struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// Client is the API contract for the Hack or Snooze service. Mutating
// operations carry the user's login token; the server is the authority on
// ownership and validation, the client performs no pre-checks.
type Client interface {
	ListStories(ctx context.Context) ([]*models.Story, error)
	GetStory(ctx context.Context, storyID string) (*models.Story, error)
	CreateStory(ctx context.Context, token string, draft StoryDraft) (*models.Story, error)
	UpdateStory(ctx context.Context, token, storyID string, draft StoryDraft) (*models.Story, error)
	DeleteStory(ctx context.Context, token, storyID string) error

	Signup(ctx context.Context, username, password, name string) (models.UserRecord, string, error)
	Login(ctx context.Context, username, password string) (models.UserRecord, string, error)
	GetUser(ctx context.Context, token, username string) (models.UserRecord, error)

	AddFavorite(ctx context.Context, token, username, storyID string) error
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
