package devserver

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hacksnooze/hacksnooze-go/internal/client/models"
)

var (
	ErrUserExists     = errors.New("username already exists")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrUserNotFound   = errors.New("user not found")
	ErrStoryNotFound  = errors.New("story not found")
	ErrNotOwner       = errors.New("story belongs to another user")
)

// account is one registered user. Favorite and own-story ids are kept
// most-recent-first, matching the order the web client renders them in.
type account struct {
	Username     string
	Name         string
	CreatedAt    time.Time
	PasswordHash []byte
	FavoriteIDs  []string
	StoryIDs     []string
}

// Store is the mutex-guarded in-memory state of the development server.
// Stories are kept newest-first, the order the listing endpoint returns.
type Store struct {
	mu       sync.Mutex
	accounts map[string]*account
	stories  []*models.Story
}

func NewStore() *Store {
	return &Store{accounts: make(map[string]*account)}
}

// CreateUser registers a new account, hashing the password with bcrypt.
func (s *Store) CreateUser(username, password, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; ok {
		return ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.accounts[username] = &account{
		Username:     username,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
		PasswordHash: hash,
	}
	return nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *Store) Authenticate(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)) != nil {
		return ErrBadCredentials
	}
	return nil
}

// UserRecord assembles the API user representation: profile fields plus
// resolved favorite and own-story records.
func (s *Store) UserRecord(username string) (models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return models.UserRecord{}, ErrUserNotFound
	}
	return models.UserRecord{
		Username:  acc.Username,
		Name:      acc.Name,
		CreatedAt: acc.CreatedAt,
		Favorites: s.resolve(acc.FavoriteIDs),
		Stories:   s.resolve(acc.StoryIDs),
	}, nil
}

// resolve maps story ids to story records, skipping ids whose story has
// been deleted. Caller must hold s.mu.
func (s *Store) resolve(ids []string) []*models.Story {
	out := make([]*models.Story, 0, len(ids))
	for _, id := range ids {
		if st := s.findLocked(id); st != nil {
			out = append(out, st)
		}
	}
	return out
}

func (s *Store) findLocked(storyID string) *models.Story {
	return models.FindByID(s.stories, storyID)
}

// ListStories returns the stories newest-first.
func (s *Store) ListStories() []*models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Story, len(s.stories))
	copy(out, s.stories)
	return out
}

// GetStory returns one story by id.
func (s *Store) GetStory(storyID string) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findLocked(storyID)
	if st == nil {
		return nil, ErrStoryNotFound
	}
	return st, nil
}

// AddStory creates a story owned by username, assigns it a fresh id, and
// prepends it to the listing.
func (s *Store) AddStory(username, title, author, url string) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	st := &models.Story{
		StoryID:   uuid.NewString(),
		Title:     title,
		Author:    author,
		URL:       url,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	s.stories = models.Prepend(s.stories, st)
	acc.StoryIDs = append([]string{st.StoryID}, acc.StoryIDs...)
	return st, nil
}

// UpdateStory replaces the mutable fields of a story owned by username and
// returns the fresh record.
func (s *Store) UpdateStory(username, storyID, title, author, url string) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.findLocked(storyID)
	if st == nil {
		return nil, ErrStoryNotFound
	}
	if st.Username != username {
		return nil, ErrNotOwner
	}
	updated := &models.Story{
		StoryID:   st.StoryID,
		Title:     title,
		Author:    author,
		URL:       url,
		Username:  st.Username,
		CreatedAt: st.CreatedAt,
	}
	s.stories = models.ReplaceByID(s.stories, updated)
	return updated, nil
}

// DeleteStory removes a story owned by username, along with every user's
// favorite references to it.
func (s *Store) DeleteStory(username, storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.findLocked(storyID)
	if st == nil {
		return ErrStoryNotFound
	}
	if st.Username != username {
		return ErrNotOwner
	}
	s.stories = models.RemoveByID(s.stories, storyID)
	for _, acc := range s.accounts {
		acc.FavoriteIDs = removeID(acc.FavoriteIDs, storyID)
		acc.StoryIDs = removeID(acc.StoryIDs, storyID)
	}
	return nil
}

// AddFavorite marks a story as a favorite of username. Re-favoriting an
// already favorited story is idempotent.
func (s *Store) AddFavorite(username, storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return ErrUserNotFound
	}
	if s.findLocked(storyID) == nil {
		return ErrStoryNotFound
	}
	for _, id := range acc.FavoriteIDs {
		if id == storyID {
			return nil
		}
	}
	acc.FavoriteIDs = append([]string{storyID}, acc.FavoriteIDs...)
	return nil
}

// RemoveFavorite clears a favorite mark. Missing marks are a no-op.
func (s *Store) RemoveFavorite(username, storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return ErrUserNotFound
	}
	acc.FavoriteIDs = removeID(acc.FavoriteIDs, storyID)
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
