package devserver

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hacksnooze/hacksnooze-go/internal/logging"
)

// Server exposes the Hack or Snooze API over an in-memory store.
type Server struct {
	store  *Store
	secret []byte
	ttl    time.Duration
	log    logging.Logger
}

func NewServer(store *Store, secret []byte, ttl time.Duration, log logging.Logger) *Server {
	return &Server{store: store, secret: secret, ttl: ttl, log: log}
}

// Router builds the route table. Paths, envelopes, and token placement
// mirror the public service: tokens ride in the JSON body on mutating story
// and favorite requests, and in the query string on the user endpoint.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestLogger(s.log))

	r.Get("/stories", s.handleListStories)
	r.Get("/stories/{storyID}", s.handleGetStory)
	r.Post("/stories", s.handleCreateStory)
	r.Patch("/stories/{storyID}", s.handleUpdateStory)
	r.Delete("/stories/{storyID}", s.handleDeleteStory)

	r.Group(func(r chi.Router) {
		r.Use(rateLimit(5, 10))
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
	})

	r.Get("/users/{username}", s.handleGetUser)
	r.Post("/users/{username}/favorites/{storyID}", s.handleAddFavorite)
	r.Delete("/users/{username}/favorites/{storyID}", s.handleRemoveFavorite)

	return r
}
