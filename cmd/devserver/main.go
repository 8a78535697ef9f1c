package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hacksnooze/hacksnooze-go/internal/buildinfo"
	"github.com/hacksnooze/hacksnooze-go/internal/common"
	"github.com/hacksnooze/hacksnooze-go/internal/devserver"
	"github.com/hacksnooze/hacksnooze-go/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := devserver.LoadConfig()
	log := logging.New(slog.LevelInfo)

	secret := cfg.JWTSecret
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			log.Error(ctx, "could not generate token secret", "error", err)
			os.Exit(1)
		}
		secret = s
		log.Warn(ctx, "no JWT secret configured, generated a random one; tokens will not survive restarts")
	}

	server := devserver.NewServer(devserver.NewStore(), []byte(secret), cfg.TokenTTL, log)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Router(),
	}

	go func() {
		log.Info(ctx, "dev server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "forced shutdown", "error", err)
		os.Exit(1)
	}

	log.Info(ctx, "server stopped")
}
