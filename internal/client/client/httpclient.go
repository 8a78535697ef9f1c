package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hacksnooze/hacksnooze-go/internal/client/models"
)

// DefaultBaseURL is the public Hack or Snooze service endpoint.
const DefaultBaseURL = "https://hack-or-snooze-v3.herokuapp.com"

// HTTPClient implements Client over the service's JSON REST protocol.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL. The underlying http.Client applies no
// timeout; callers control deadlines through contexts.
func NewHTTPClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{baseURL: baseURL, hc: &http.Client{}}
}

// Wire envelopes. Every success body wraps its payload in a single field.
type storyEnvelope struct {
	Story *models.Story `json:"story"`
}

type storiesEnvelope struct {
	Stories []*models.Story `json:"stories"`
}

type userEnvelope struct {
	User  models.UserRecord `json:"user"`
	Token string            `json:"token"`
}

// credentials is the nested body of signup and login requests. The name
// field is present only on signup.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type credentialsBody struct {
	User credentials `json:"user"`
}

// storyBody carries the login token plus the draft for story mutations.
type storyBody struct {
	Token string     `json:"token"`
	Story StoryDraft `json:"story"`
}

// tokenBody carries only the login token (deletes, favorites).
type tokenBody struct {
	Token string `json:"token"`
}

// do runs one request and, on a 2xx status with out != nil, decodes the JSON
// body into out. Transport, encoding, and decoding failures come back
// wrapped in ErrRequestFailed; non-2xx statuses are returned to the caller
// for per-endpoint classification.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) (int, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("%w: encode request: %v", ErrRequestFailed, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if isSuccess(resp.StatusCode) && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: decode response: %v", ErrRequestFailed, err)
		}
	}
	return resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// ListStories fetches the full story listing in server order. No auth, no
// pagination.
func (c *HTTPClient) ListStories(ctx context.Context) ([]*models.Story, error) {
	var env storiesEnvelope
	status, err := c.do(ctx, http.MethodGet, "/stories", nil, nil, &env)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: list stories: status %d", ErrRequestFailed, status)
	}
	return env.Stories, nil
}

// GetStory fetches a single story by id.
func (c *HTTPClient) GetStory(ctx context.Context, storyID string) (*models.Story, error) {
	var env storyEnvelope
	status, err := c.do(ctx, http.MethodGet, "/stories/"+storyID, nil, nil, &env)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: story %s", ErrNotFound, storyID)
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: get story: status %d", ErrRequestFailed, status)
	}
	return env.Story, nil
}

// CreateStory submits a new story and returns the server's representation.
func (c *HTTPClient) CreateStory(ctx context.Context, token string, draft StoryDraft) (*models.Story, error) {
	var env storyEnvelope
	status, err := c.do(ctx, http.MethodPost, "/stories", nil, storyBody{Token: token, Story: draft}, &env)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: create story: status %d", ErrRequestFailed, status)
	}
	return env.Story, nil
}

// UpdateStory submits a partial edit and returns the replacement story built
// by the server.
func (c *HTTPClient) UpdateStory(ctx context.Context, token, storyID string, draft StoryDraft) (*models.Story, error) {
	var env storyEnvelope
	status, err := c.do(ctx, http.MethodPatch, "/stories/"+storyID, nil, storyBody{Token: token, Story: draft}, &env)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: story %s", ErrNotFound, storyID)
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: edit story: status %d", ErrRequestFailed, status)
	}
	return env.Story, nil
}

// DeleteStory removes a story. The server enforces ownership.
func (c *HTTPClient) DeleteStory(ctx context.Context, token, storyID string) error {
	status, err := c.do(ctx, http.MethodDelete, "/stories/"+storyID, nil, tokenBody{Token: token}, nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: story %s", ErrNotFound, storyID)
	}
	if !isSuccess(status) {
		return fmt.Errorf("%w: delete story: status %d", ErrRequestFailed, status)
	}
	return nil
}

// Signup registers a new account. A conflict status maps to
// ErrDuplicateUsername.
func (c *HTTPClient) Signup(ctx context.Context, username, password, name string) (models.UserRecord, string, error) {
	body := credentialsBody{User: credentials{Username: username, Password: password, Name: name}}
	var env userEnvelope
	status, err := c.do(ctx, http.MethodPost, "/signup", nil, body, &env)
	if err != nil {
		return models.UserRecord{}, "", err
	}
	if status == http.StatusConflict {
		return models.UserRecord{}, "", fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
	}
	if !isSuccess(status) {
		return models.UserRecord{}, "", fmt.Errorf("%w: signup: status %d", ErrRequestFailed, status)
	}
	return env.User, env.Token, nil
}

// Login authenticates an existing account. Unauthorized and not-found both
// map to ErrInvalidCredentials.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.UserRecord, string, error) {
	body := credentialsBody{User: credentials{Username: username, Password: password}}
	var env userEnvelope
	status, err := c.do(ctx, http.MethodPost, "/login", nil, body, &env)
	if err != nil {
		return models.UserRecord{}, "", err
	}
	if status == http.StatusUnauthorized || status == http.StatusNotFound {
		return models.UserRecord{}, "", ErrInvalidCredentials
	}
	if !isSuccess(status) {
		return models.UserRecord{}, "", fmt.Errorf("%w: login: status %d", ErrRequestFailed, status)
	}
	return env.User, env.Token, nil
}

// GetUser fetches a user record with a previously issued token. The token
// travels in the query string on this endpoint.
func (c *HTTPClient) GetUser(ctx context.Context, token, username string) (models.UserRecord, error) {
	q := url.Values{"token": {token}}
	var env userEnvelope
	status, err := c.do(ctx, http.MethodGet, "/users/"+username, q, nil, &env)
	if err != nil {
		return models.UserRecord{}, err
	}
	if !isSuccess(status) {
		return models.UserRecord{}, fmt.Errorf("%w: get user: status %d", ErrRequestFailed, status)
	}
	return env.User, nil
}

// AddFavorite marks a story as a favorite of the user.
func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	return c.setFavorite(ctx, http.MethodPost, token, username, storyID)
}

// RemoveFavorite clears a favorite mark.
func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	return c.setFavorite(ctx, http.MethodDelete, token, username, storyID)
}

func (c *HTTPClient) setFavorite(ctx context.Context, method, token, username, storyID string) error {
	path := "/users/" + username + "/favorites/" + storyID
	status, err := c.do(ctx, method, path, nil, tokenBody{Token: token}, nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return fmt.Errorf("%w: favorite: status %d", ErrRequestFailed, status)
	}
	return nil
}
