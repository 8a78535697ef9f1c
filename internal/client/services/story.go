// Package services contains the application services for the Hack or Snooze
// client: the story service (the in-memory story list and its
// synchronization with the server) and the auth service (accounts and
// session persistence).
//
// Every mutating operation takes the acting user as an explicit argument;
// there is no ambient current-user state in this layer.
package services

import (
	"context"
	"fmt"

	"github.com/hacksnooze/hacksnooze-go/internal/client/client"
	"github.com/hacksnooze/hacksnooze-go/internal/client/models"
)

// StoryService owns the story list and keeps it, plus the acting user's
// Favorites and OwnStories, synchronized with the server. Each operation is
// one network round-trip followed by a local structural update; the local
// update applies only after a successful response.
type StoryService struct {
	client client.Client

	// List mirrors the server's story set as of the last Refresh, plus
	// local updates from Add/Remove/Edit.
	List *models.StoryList
}

func NewStoryService(c client.Client) *StoryService {
	return &StoryService{client: c, List: models.NewStoryList(nil)}
}

// Refresh fetches the full story listing and rebuilds the list preserving
// server order.
func (s *StoryService) Refresh(ctx context.Context) error {
	stories, err := s.client.ListStories(ctx)
	if err != nil {
		return fmt.Errorf("fetch stories: %w", err)
	}
	s.List = models.NewStoryList(stories)
	return nil
}

// GetByID fetches a single story straight from the server, bypassing the
// local list.
func (s *StoryService) GetByID(ctx context.Context, storyID string) (*models.Story, error) {
	return s.client.GetStory(ctx, storyID)
}

// Add submits a draft under the user's token, prepends the server-built
// story to the list and to user.OwnStories, and returns it. No local
// validation happens before the request; server rejections propagate.
func (s *StoryService) Add(ctx context.Context, user *models.User, draft client.StoryDraft) (*models.Story, error) {
	story, err := s.client.CreateStory(ctx, user.LoginToken, draft)
	if err != nil {
		return nil, fmt.Errorf("add story: %w", err)
	}
	s.List.Prepend(story)
	user.OwnStories = models.Prepend(user.OwnStories, story)
	return story, nil
}

// Remove deletes the story on the server, then drops the id from the list,
// user.Favorites, and user.OwnStories. Removal is unconditional; the server
// is the authority on ownership, and a missing id in any sequence is a
// silent no-op.
func (s *StoryService) Remove(ctx context.Context, user *models.User, storyID string) error {
	if err := s.client.DeleteStory(ctx, user.LoginToken, storyID); err != nil {
		return fmt.Errorf("remove story: %w", err)
	}
	s.List.Remove(storyID)
	user.Favorites = models.RemoveByID(user.Favorites, storyID)
	user.OwnStories = models.RemoveByID(user.OwnStories, storyID)
	return nil
}

// Edit submits a partial update, builds a replacement story from the
// response, and substitutes it by id into the list, user.Favorites, and
// user.OwnStories. Sequences that don't hold the id are skipped.
func (s *StoryService) Edit(ctx context.Context, user *models.User, storyID string, patch client.StoryDraft) (*models.Story, error) {
	updated, err := s.client.UpdateStory(ctx, user.LoginToken, storyID, patch)
	if err != nil {
		return nil, fmt.Errorf("edit story: %w", err)
	}
	s.List.Replace(updated)
	user.Favorites = models.ReplaceByID(user.Favorites, updated)
	user.OwnStories = models.ReplaceByID(user.OwnStories, updated)
	return updated, nil
}

// AddFavorite marks the story on the server and prepends it to
// user.Favorites. It does not de-duplicate; callers are expected to check
// user.IsFavorite first.
func (s *StoryService) AddFavorite(ctx context.Context, user *models.User, story *models.Story) error {
	if err := s.client.AddFavorite(ctx, user.LoginToken, user.Username, story.StoryID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	user.Favorites = models.Prepend(user.Favorites, story)
	return nil
}

// RemoveFavorite clears the mark on the server and drops the id from
// user.Favorites.
func (s *StoryService) RemoveFavorite(ctx context.Context, user *models.User, story *models.Story) error {
	if err := s.client.RemoveFavorite(ctx, user.LoginToken, user.Username, story.StoryID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	user.Favorites = models.RemoveByID(user.Favorites, story.StoryID)
	return nil
}
