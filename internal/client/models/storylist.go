package models

// StoryList is the in-memory mirror of the server's story set. It reflects
// the server state as of the last full fetch, plus any local inserts,
// removals, and replacements applied after successful mutation requests.
// It is owned and mutated only by the story service.
type StoryList struct {
	Stories []*Story
}

// NewStoryList builds a list from server-ordered stories.
func NewStoryList(stories []*Story) *StoryList {
	return &StoryList{Stories: stories}
}

// Prepend inserts a freshly created story at the front.
func (l *StoryList) Prepend(s *Story) {
	l.Stories = Prepend(l.Stories, s)
}

// Remove drops any entry with the given id. Missing ids are a no-op.
func (l *StoryList) Remove(storyID string) {
	l.Stories = RemoveByID(l.Stories, storyID)
}

// Replace substitutes updated for the entry with the same StoryID,
// keeping its position. Missing ids are a no-op.
func (l *StoryList) Replace(updated *Story) {
	l.Stories = ReplaceByID(l.Stories, updated)
}

// Find returns the listed story with the given id, or nil.
func (l *StoryList) Find(storyID string) *Story {
	return FindByID(l.Stories, storyID)
}

// Len returns the number of listed stories.
func (l *StoryList) Len() int {
	return len(l.Stories)
}
