package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/auth"
	"github.com/nerdtalks/backend/internal/config"
	"github.com/nerdtalks/backend/internal/database"
	"github.com/nerdtalks/backend/internal/handlers"
	"github.com/nerdtalks/backend/internal/server"
	"github.com/nerdtalks/backend/internal/store"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	stores := store.New(db.GetDB())
	verifier := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	handler := handlers.NewHandler(stores, verifier, log)

	srv := server.New(db, stores, handler, verifier, cfg.Port, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
