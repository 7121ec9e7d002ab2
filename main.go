// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/Sam-M345/Factify/auth"
	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/cliparse"
	"github.com/Sam-M345/Factify/db"
	"github.com/Sam-M345/Factify/prefs"
	"github.com/Sam-M345/Factify/router"
)

func main() {
	var err error

	setupLogging(os.Stderr)

	// A missing .env is fine; real environments set variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		slog.Error("backend setup failed", "backend", cfg.BackendType, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("Backend ready", "backend", cfg.BackendType)

	prefStore, closePrefs, err := openPrefs(cfg)
	if err != nil {
		slog.Error("preference store setup failed", "error", err)
		os.Exit(1)
	}
	defer closePrefs()

	// Create router
	r, err := router.NewRouter(store, prefStore, cfg)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           r,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal, then let in-flight votes finish
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "base_url", cfg.BaseURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogging uses readable text on a terminal and JSON otherwise
func setupLogging(w *os.File) {
	var handler slog.Handler
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		handler = slog.NewTextHandler(w, nil)
	} else {
		handler = slog.NewJSONHandler(w, nil)
	}
	slog.SetDefault(slog.New(handler))
}

// openStore builds the data backend named by cfg.BackendType
func openStore(cfg cliparse.Config) (backend.Store, func(), error) {
	switch cfg.BackendType {
	case cliparse.BackendREST:
		creds, err := auth.NewCredentials(cfg.SupabaseKey, cfg.SupabaseToken)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Using REST backend", "url", cfg.SupabaseURL, "credentials", creds.String())

		store, err := backend.NewRESTStore(backend.RESTConfig{
			BaseURL:     cfg.SupabaseURL,
			Credentials: creds,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil

	case cliparse.BackendSQLite, cliparse.BackendPostgres:
		dialect := db.Dialect(cfg.BackendType)

		conn, err := db.Open(dialect, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		// Create schema (tables)
		if err := db.CreateSchema(conn, dialect); err != nil {
			conn.Close()
			return nil, nil, err
		}
		slog.Info("Database schema ready", "dialect", dialect)

		return db.NewStore(conn), func() { conn.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown backend type %q", cfg.BackendType)
}

// openPrefs uses Redis when configured, otherwise process memory
func openPrefs(cfg cliparse.Config) (prefs.Store, func(), error) {
	if cfg.RedisURL == "" {
		slog.Info("Sort preferences kept in memory")
		return prefs.NewMemoryStore(), func() {}, nil
	}

	store, err := prefs.NewRedisStore(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Sort preferences kept in redis")
	return store, func() { store.Close() }, nil
}
