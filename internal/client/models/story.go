// Package models defines client-side data models for Hack or Snooze:
// stories, the signed-in user, and the in-memory story list that mirrors
// the server's story set.
package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ErrMalformedURL is returned by Hostname when the story URL is not a
// well-formed absolute URL. Callers should use errors.Is to match it.
var ErrMalformedURL = errors.New("malformed story url")

// Story is a single submitted news item. All field values come from the
// server; the client never assigns a StoryID. The struct is decoded directly
// from the API's story records.
type Story struct {
	// StoryID is the server-assigned, immutable identifier.
	StoryID string `json:"storyId"`

	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`

	// Username identifies the story's author (owner).
	Username string `json:"username"`

	CreatedAt time.Time `json:"createdAt"`
}

// Hostname parses the story URL and returns its host component for display.
// A malformed or relative URL surfaces here, not at construction time; there
// is no fallback value.
func (s *Story) Hostname() (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, s.URL)
	}
	return u.Hostname(), nil
}

// Prepend inserts s at the front of stories (newest-first convention).
func Prepend(stories []*Story, s *Story) []*Story {
	return append([]*Story{s}, stories...)
}

// RemoveByID returns stories without any entry matching storyID.
// A missing id is a silent no-op.
func RemoveByID(stories []*Story, storyID string) []*Story {
	out := stories[:0]
	for _, s := range stories {
		if s.StoryID != storyID {
			out = append(out, s)
		}
	}
	return out
}

// ReplaceByID substitutes updated for any entry with the same StoryID,
// keeping position. A missing id is a silent no-op.
func ReplaceByID(stories []*Story, updated *Story) []*Story {
	for i, s := range stories {
		if s.StoryID == updated.StoryID {
			stories[i] = updated
		}
	}
	return stories
}

// FindByID returns the entry with the given id, or nil if absent.
func FindByID(stories []*Story, storyID string) *Story {
	for _, s := range stories {
		if s.StoryID == storyID {
			return s
		}
	}
	return nil
}
