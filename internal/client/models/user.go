package models

import "time"

// User is the signed-in user. Exactly one user is current at a time; the
// instance is discarded on logout. Favorites and OwnStories are independent
// copies of the stories they reference, not shared objects, so the
// synchronization services replace entries in every sequence explicitly.
type User struct {
	Username  string
	Name      string
	CreatedAt time.Time

	// Favorites holds favorited stories, most recently favorited first.
	// At most one entry per StoryID; callers keep the invariant by checking
	// IsFavorite before favoriting (this is not enforced here).
	Favorites []*Story

	// OwnStories holds stories authored by this user, newest first.
	OwnStories []*Story

	// LoginToken is the opaque credential sent with mutating requests.
	LoginToken string
}

// UserRecord is the server's user representation. The server calls the
// user's own stories "stories"; the client names them OwnStories. That
// mapping happens in NewUserFromRecord and nowhere else.
type UserRecord struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Favorites []*Story  `json:"favorites"`
	Stories   []*Story  `json:"stories"`
}

// NewUserFromRecord builds a User from a server record and a login token.
// Nil story slices come back as empty, never nil.
func NewUserFromRecord(rec UserRecord, token string) *User {
	u := &User{
		Username:   rec.Username,
		Name:       rec.Name,
		CreatedAt:  rec.CreatedAt,
		Favorites:  rec.Favorites,
		OwnStories: rec.Stories,
		LoginToken: token,
	}
	if u.Favorites == nil {
		u.Favorites = []*Story{}
	}
	if u.OwnStories == nil {
		u.OwnStories = []*Story{}
	}
	return u
}

// IsFavorite reports whether a story with the same id is in Favorites.
// Purely local, no network call.
func (u *User) IsFavorite(s *Story) bool {
	return FindByID(u.Favorites, s.StoryID) != nil
}
