package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jobtrack/jobtrack-go/internal/config"
	"github.com/jobtrack/jobtrack-go/internal/crypto"
	"github.com/jobtrack/jobtrack-go/internal/handler"
	"github.com/jobtrack/jobtrack-go/internal/repository"
	"github.com/jobtrack/jobtrack-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	pwdHandler := handler.NewPasswordHandler(service.NewPasswordService())
	sessions := crypto.NewSessions(cfg.JWTSecret, cfg.JWTExpiry)

	// Sign up needs the database; strength and suggestions do not.
	var authHandler *handler.AuthHandler
	dbCtx, dbCancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := repository.NewDB(dbCtx, cfg.DatabaseDSN)
	dbCancel()
	if err != nil {
		slog.Warn("database unavailable, sign up routes disabled", "error", err)
	} else {
		defer db.Close()
		authService := service.NewAuthService(
			repository.NewUserRepository(db),
			crypto.NewHasher(crypto.DefaultArgon2Params()),
			sessions,
		)
		authHandler = handler.NewAuthHandler(authService)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(authHandler, pwdHandler, sessions),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
