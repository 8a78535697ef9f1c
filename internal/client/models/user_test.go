package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewUserFromRecord(t *testing.T) {
	created := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := UserRecord{
		Username:  "alice",
		Name:      "Alice",
		CreatedAt: created,
		Favorites: []*Story{story("f1", "Fav")},
		Stories:   []*Story{story("o1", "Own")},
	}

	u := NewUserFromRecord(rec, "tok-123")

	require.Equal(t, "alice", u.Username)
	require.Equal(t, "Alice", u.Name)
	require.Equal(t, created, u.CreatedAt)
	require.Equal(t, "tok-123", u.LoginToken)
	// the server's "stories" field maps to OwnStories
	require.Len(t, u.OwnStories, 1)
	require.Equal(t, "o1", u.OwnStories[0].StoryID)
	require.Len(t, u.Favorites, 1)
	require.Equal(t, "f1", u.Favorites[0].StoryID)
}

func TestNewUserFromRecord_NilSlices(t *testing.T) {
	u := NewUserFromRecord(UserRecord{Username: "bob"}, "t")
	require.NotNil(t, u.Favorites)
	require.NotNil(t, u.OwnStories)
	require.Empty(t, u.Favorites)
	require.Empty(t, u.OwnStories)
}

func TestIsFavorite(t *testing.T) {
	fav := story("s1", "S1")
	u := NewUserFromRecord(UserRecord{Favorites: []*Story{fav}}, "t")

	require.True(t, u.IsFavorite(fav))
	// matching is by id, not by pointer
	require.True(t, u.IsFavorite(story("s1", "same id, other copy")))
	require.False(t, u.IsFavorite(story("s2", "S2")))
}
