// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/faction-grid/cliparse"
	"github.com/danielhkuo/faction-grid/handlers"
	"github.com/danielhkuo/faction-grid/middleware"
	"github.com/danielhkuo/faction-grid/session"
)

func NewRouter(store *session.Store, source handlers.RosterSource, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(store, source, cfg)
	gridHandler := handlers.NewGridHandler(store, cfg)
	adminHandler := handlers.NewAdminHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session lifecycle
	mux.HandleFunc("POST /session/login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("GET /session/me", middleware.WithLogging(sessionHandler.GetMe))
	mux.HandleFunc("DELETE /session", middleware.WithLogging(sessionHandler.Logout))

	// Grid (requires X-Session-Token)
	mux.HandleFunc("GET /grid", middleware.WithLogging(gridHandler.GetGrid))
	mux.HandleFunc("PUT /grid/cells", middleware.WithLogging(gridHandler.MarkCell))

	// Admin menu (no-op for non-admin sessions)
	mux.HandleFunc("POST /admin/date-range", middleware.WithLogging(adminHandler.SetDateRange))
	mux.HandleFunc("POST /admin/unlock-all", middleware.WithLogging(adminHandler.UnlockAll))
	mux.HandleFunc("POST /admin/actions/{name}", middleware.WithLogging(adminHandler.InvokeAction))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("faction-grid API v1"))
	})

	return mux
}
