package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/hacksnooze/hacksnooze-go/internal/client/client"
	"github.com/hacksnooze/hacksnooze-go/internal/client/config"
	"github.com/hacksnooze/hacksnooze-go/internal/client/models"
	"github.com/hacksnooze/hacksnooze-go/internal/client/services"
	"github.com/hacksnooze/hacksnooze-go/internal/client/session"
	"github.com/hacksnooze/hacksnooze-go/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive client. It owns the current user (nil while logged
// out) and the story service that mirrors the server's story set. All
// mutations flow through the services with a.user passed explicitly.
type App struct {
	config  *config.Config
	auth    *services.AuthService
	stories *services.StoryService
	user    *models.User
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.New(slog.LevelInfo)

	db, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error opening session database", "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(cfg.APIBaseURL)

	return &App{
		config:  cfg,
		auth:    services.NewAuthService(apiClient, db, log),
		stories: services.NewStoryService(apiClient),
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Run restores a saved session if one exists, loads the story listing, and
// enters the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if u := a.auth.RestoreSession(ctx); u != nil {
		a.user = u
		printlnFn("Welcome back,", u.Name)
	}

	if err := a.stories.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "could not load stories", "error", err)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) status() string {
	if a.user == nil {
		return "logged out"
	}
	return a.user.Username
}
