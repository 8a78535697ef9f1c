package devserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hacksnooze/hacksnooze-go/internal/client/models"
)

// Request bodies.

type credentialsBody struct {
	User struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
	} `json:"user"`
}

type storyBody struct {
	Token string `json:"token"`
	Story struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
	} `json:"story"`
}

type tokenBody struct {
	Token string `json:"token"`
}

// Response envelopes.

type storyEnvelope struct {
	Story *models.Story `json:"story"`
}

type storiesEnvelope struct {
	Stories []*models.Story `json:"stories"`
}

type userEnvelope struct {
	User  models.UserRecord `json:"user"`
	Token string            `json:"token,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// authorize validates a login token and returns the username it belongs to.
func (s *Server) authorize(w http.ResponseWriter, token string) (string, bool) {
	username, err := ValidateToken(token, s.secret)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse("invalid or expired token"))
		return "", false
	}
	return username, true
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsBody
	if !decodeBody(w, r, &req) {
		return
	}
	if req.User.Username == "" || req.User.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("username and password are required"))
		return
	}

	if err := s.store.CreateUser(req.User.Username, req.User.Password, req.User.Name); err != nil {
		if errors.Is(err, ErrUserExists) {
			writeJSON(w, http.StatusConflict, errorResponse("username already taken"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	s.respondWithUser(w, r, http.StatusCreated, req.User.Username, true)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsBody
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.store.Authenticate(req.User.Username, req.User.Password); err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse("invalid username or password"))
		return
	}

	s.respondWithUser(w, r, http.StatusOK, req.User.Username, true)
}

// respondWithUser writes the user envelope, optionally with a fresh token.
func (s *Server) respondWithUser(w http.ResponseWriter, r *http.Request, status int, username string, withToken bool) {
	rec, err := s.store.UserRecord(username)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("user not found"))
		return
	}

	env := userEnvelope{User: rec}
	if withToken {
		token, err := GenerateToken(username, s.secret, s.ttl)
		if err != nil {
			s.log.Error(r.Context(), "token generation failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
			return
		}
		env.Token = token
	}
	writeJSON(w, status, env)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	tokenUser, ok := s.authorize(w, r.URL.Query().Get("token"))
	if !ok {
		return
	}
	if tokenUser != username {
		writeJSON(w, http.StatusForbidden, errorResponse("token does not match user"))
		return
	}

	s.respondWithUser(w, r, http.StatusOK, username, false)
}

func (s *Server) handleListStories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, storiesEnvelope{Stories: s.store.ListStories()})
}

func (s *Server) handleGetStory(w http.ResponseWriter, r *http.Request) {
	story, err := s.store.GetStory(chi.URLParam(r, "storyID"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("story not found"))
		return
	}
	writeJSON(w, http.StatusOK, storyEnvelope{Story: story})
}

func (s *Server) handleCreateStory(w http.ResponseWriter, r *http.Request) {
	var req storyBody
	if !decodeBody(w, r, &req) {
		return
	}
	username, ok := s.authorize(w, req.Token)
	if !ok {
		return
	}
	if req.Story.Title == "" || req.Story.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("title and url are required"))
		return
	}

	story, err := s.store.AddStory(username, req.Story.Title, req.Story.Author, req.Story.URL)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusCreated, storyEnvelope{Story: story})
}

func (s *Server) handleUpdateStory(w http.ResponseWriter, r *http.Request) {
	var req storyBody
	if !decodeBody(w, r, &req) {
		return
	}
	username, ok := s.authorize(w, req.Token)
	if !ok {
		return
	}

	story, err := s.store.UpdateStory(username, chi.URLParam(r, "storyID"),
		req.Story.Title, req.Story.Author, req.Story.URL)
	if err != nil {
		s.writeStoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, storyEnvelope{Story: story})
}

func (s *Server) handleDeleteStory(w http.ResponseWriter, r *http.Request) {
	var req tokenBody
	if !decodeBody(w, r, &req) {
		return
	}
	username, ok := s.authorize(w, req.Token)
	if !ok {
		return
	}

	if err := s.store.DeleteStory(username, chi.URLParam(r, "storyID")); err != nil {
		s.writeStoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "story deleted"})
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	s.handleFavorite(w, r, s.store.AddFavorite, "favorite added")
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	s.handleFavorite(w, r, s.store.RemoveFavorite, "favorite removed")
}

func (s *Server) handleFavorite(w http.ResponseWriter, r *http.Request, op func(username, storyID string) error, okMsg string) {
	var req tokenBody
	if !decodeBody(w, r, &req) {
		return
	}
	username, ok := s.authorize(w, req.Token)
	if !ok {
		return
	}
	if username != chi.URLParam(r, "username") {
		writeJSON(w, http.StatusForbidden, errorResponse("token does not match user"))
		return
	}

	if err := op(username, chi.URLParam(r, "storyID")); err != nil {
		s.writeStoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": okMsg})
}

func (s *Server) writeStoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrStoryNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("story not found"))
	case errors.Is(err, ErrNotOwner):
		writeJSON(w, http.StatusForbidden, errorResponse("story belongs to another user"))
	case errors.Is(err, ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("user not found"))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
