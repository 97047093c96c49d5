package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/faction-grid/cliparse"
	"github.com/danielhkuo/faction-grid/logger"
	"github.com/danielhkuo/faction-grid/middleware"
	"github.com/danielhkuo/faction-grid/roster"
	"github.com/danielhkuo/faction-grid/router"
	"github.com/danielhkuo/faction-grid/session"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	// Identity/roster service and in-memory sessions
	client := roster.NewClient(cfg.RosterBaseURL, cfg.RosterTimeout)
	store := session.NewStore(cfg.MaxSessions, cfg.SessionTTL)

	// Create router
	mux := router.NewRouter(store, client, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"roster_url", cfg.RosterBaseURL,
		"admins", len(cfg.Admins),
	)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
