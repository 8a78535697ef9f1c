package devserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hacksnooze/hacksnooze-go/internal/client/client"
	"github.com/hacksnooze/hacksnooze-go/internal/logging"
)

func newJSONBody(s string) io.Reader {
	return strings.NewReader(s)
}

// newTestAPI starts the dev server under httptest and returns a wire client
// pointed at it.
func newTestAPI(t *testing.T) *client.HTTPClient {
	t.Helper()

	srv := NewServer(NewStore(), []byte("test-secret"), time.Hour, logging.New(slog.LevelError))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return client.NewHTTPClient(ts.URL)
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	rec, token, err := api.Signup(ctx, "alice", "password", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "alice", rec.Username)
	require.Equal(t, "Alice", rec.Name)
	require.Empty(t, rec.Favorites)
	require.Empty(t, rec.Stories)

	_, _, err = api.Signup(ctx, "alice", "other", "Alice")
	require.ErrorIs(t, err, client.ErrDuplicateUsername)

	_, _, err = api.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, client.ErrInvalidCredentials)

	rec, token, err = api.Login(ctx, "alice", "password")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "alice", rec.Username)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	_, token, err := api.Signup(ctx, "alice", "password", "Alice")
	require.NoError(t, err)

	rec, err := api.GetUser(ctx, token, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", rec.Username)

	_, err = api.GetUser(ctx, "bogus-token", "alice")
	require.ErrorIs(t, err, client.ErrRequestFailed)

	// valid token for a different user is rejected
	_, otherToken, err := api.Signup(ctx, "bob", "password", "Bob")
	require.NoError(t, err)
	_, err = api.GetUser(ctx, otherToken, "alice")
	require.ErrorIs(t, err, client.ErrRequestFailed)
}

func TestStoryLifecycle(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	_, token, err := api.Signup(ctx, "alice", "password", "Alice")
	require.NoError(t, err)

	created, err := api.CreateStory(ctx, token, client.StoryDraft{
		Title:  "Test Driven Snoozing",
		Author: "Alice",
		URL:    "https://example.com/tds",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.StoryID)
	require.Equal(t, "alice", created.Username)

	got, err := api.GetStory(ctx, created.StoryID)
	require.NoError(t, err)
	require.Equal(t, created.StoryID, got.StoryID)

	_, err = api.GetStory(ctx, "missing")
	require.ErrorIs(t, err, client.ErrNotFound)

	updated, err := api.UpdateStory(ctx, token, created.StoryID, client.StoryDraft{
		Title:  "Test Driven Snoozing, 2nd ed.",
		Author: "Alice",
		URL:    "https://example.com/tds2",
	})
	require.NoError(t, err)
	require.Equal(t, created.StoryID, updated.StoryID)
	require.Equal(t, "Test Driven Snoozing, 2nd ed.", updated.Title)

	stories, err := api.ListStories(ctx)
	require.NoError(t, err)
	require.Len(t, stories, 1)
	require.Equal(t, "Test Driven Snoozing, 2nd ed.", stories[0].Title)

	require.NoError(t, api.DeleteStory(ctx, token, created.StoryID))
	require.ErrorIs(t, api.DeleteStory(ctx, token, created.StoryID), client.ErrNotFound)

	stories, err = api.ListStories(ctx)
	require.NoError(t, err)
	require.Empty(t, stories)
}

func TestStoryOwnership(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	_, aliceToken, err := api.Signup(ctx, "alice", "password", "Alice")
	require.NoError(t, err)
	_, bobToken, err := api.Signup(ctx, "bob", "password", "Bob")
	require.NoError(t, err)

	created, err := api.CreateStory(ctx, aliceToken, client.StoryDraft{
		Title: "Mine", Author: "Alice", URL: "https://example.com",
	})
	require.NoError(t, err)

	_, err = api.UpdateStory(ctx, bobToken, created.StoryID, client.StoryDraft{
		Title: "Stolen", Author: "Bob", URL: "https://example.com",
	})
	require.ErrorIs(t, err, client.ErrRequestFailed)

	err = api.DeleteStory(ctx, bobToken, created.StoryID)
	require.ErrorIs(t, err, client.ErrRequestFailed)
}

func TestFavoriteEndpoints(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	_, token, err := api.Signup(ctx, "alice", "password", "Alice")
	require.NoError(t, err)

	created, err := api.CreateStory(ctx, token, client.StoryDraft{
		Title: "Fav me", Author: "Alice", URL: "https://example.com",
	})
	require.NoError(t, err)

	require.NoError(t, api.AddFavorite(ctx, token, "alice", created.StoryID))

	rec, err := api.GetUser(ctx, token, "alice")
	require.NoError(t, err)
	require.Len(t, rec.Favorites, 1)
	require.Equal(t, created.StoryID, rec.Favorites[0].StoryID)

	err = api.AddFavorite(ctx, token, "alice", "missing")
	require.ErrorIs(t, err, client.ErrRequestFailed)

	require.NoError(t, api.RemoveFavorite(ctx, token, "alice", created.StoryID))

	rec, err = api.GetUser(ctx, token, "alice")
	require.NoError(t, err)
	require.Empty(t, rec.Favorites)
}

func TestCreateStoryValidation(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	_, token, err := api.Signup(ctx, "alice", "password", "Alice")
	require.NoError(t, err)

	_, err = api.CreateStory(ctx, token, client.StoryDraft{Author: "Alice"})
	require.ErrorIs(t, err, client.ErrRequestFailed)

	_, err = api.CreateStory(ctx, "bogus", client.StoryDraft{
		Title: "x", Author: "x", URL: "https://example.com",
	})
	require.ErrorIs(t, err, client.ErrRequestFailed)
}

func TestSignupValidation(t *testing.T) {
	srv := NewServer(NewStore(), []byte("test-secret"), time.Hour, logging.New(slog.LevelError))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	resp, err := http.Post(ts.URL+"/signup", "application/json",
		newJSONBody(`{"user":{"username":"","password":""}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/signup", "application/json", newJSONBody(`{not json`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
