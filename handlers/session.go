// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/faction-grid/auth"
	"github.com/danielhkuo/faction-grid/cliparse"
	"github.com/danielhkuo/faction-grid/grid"
	"github.com/danielhkuo/faction-grid/middleware"
	"github.com/danielhkuo/faction-grid/models"
	"github.com/danielhkuo/faction-grid/roster"
	"github.com/danielhkuo/faction-grid/session"
)

// User-facing messages
const (
	MsgEmptyCredential = "Please enter an API key"
	MsgBadCredential   = "API key is not correct. Please try again."
	MsgFetchFailed     = "Failed to fetch user data. Please try again."
	MsgRosterFailed    = "Failed to fetch members. Please try again."
)

var validate = validator.New()

// RosterSource is the identity/roster service as seen by handlers
type RosterSource interface {
	Authenticate(ctx context.Context, credential string) (string, error)
	FetchRoster(ctx context.Context, credential string) ([]models.MemberRecord, error)
}

type SessionHandler struct {
	store  *session.Store
	source RosterSource
	policy *grid.Policy
	cfg    cliparse.Config
}

func NewSessionHandler(store *session.Store, source RosterSource, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{
		store:  store,
		source: source,
		policy: grid.NewPolicy(cfg.Admins),
		cfg:    cfg,
	}
}

// Login handles POST /session/login
// Authenticates the credential and starts the one-time roster fetch
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Credential = strings.TrimSpace(req.Credential)
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgEmptyCredential)
		return
	}
	fingerprint := auth.FingerprintCredential(req.Credential, h.cfg.TokenSalt)

	name, err := h.source.Authenticate(r.Context(), req.Credential)
	if errors.Is(err, roster.ErrCredential) {
		slog.Warn("login rejected", "credential", fingerprint, "error", err)
		middleware.ErrorResponse(w, http.StatusUnauthorized, MsgBadCredential)
		return
	}
	if err != nil {
		slog.Error("login failed", "credential", fingerprint, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, MsgFetchFailed)
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	entry := session.NewEntry(h.policy, session.EntryOptions{
		DateRange:       grid.DefaultDateRange(time.Now(), h.cfg.DefaultDuration),
		InvalidDuration: h.cfg.InvalidDuration,
		MaxDurationDays: h.cfg.MaxDuration,
	})
	identity := models.SessionIdentity{DisplayName: name, Credential: req.Credential}
	if err := entry.Grid.SetSession(identity); err != nil {
		slog.Error("failed to set session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	notice := "Welcome " + name
	entry.Grid.SetNotice(notice)
	h.store.Put(token, entry)

	// The fetch outlives this request; it is started once and never retried
	go h.loadRoster(entry, req.Credential)

	slog.Info("session created",
		"session_id", entry.ID,
		"name", name,
		"is_admin", entry.Grid.IsAdmin(),
		"credential", fingerprint,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.LoginResponse{
		SessionToken: token,
		Name:         name,
		IsAdmin:      entry.Grid.IsAdmin(),
		State:        entry.Grid.State().String(),
		Notice:       notice,
	})
}

func (h *SessionHandler) loadRoster(entry *session.Entry, credential string) {
	members, err := h.source.FetchRoster(context.Background(), credential)
	if err != nil {
		slog.Error("failed to fetch roster", "session_id", entry.ID, "error", err)
		entry.Grid.SetNotice(MsgRosterFailed)
		return
	}
	entry.Grid.SetRoster(members)
	slog.Info("roster loaded", "session_id", entry.ID, "members", len(members))
}

// GetMe handles GET /session/me
func (h *SessionHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	entry, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	identity := entry.Grid.Session()
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Name:    identity.DisplayName,
		IsAdmin: identity.IsAdmin,
		State:   entry.Grid.State().String(),
	})
}

// Logout handles DELETE /session
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, err := auth.TokenFromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Session token required")
		return
	}
	if h.store.Delete(token) {
		slog.Info("session ended")
	}
	w.WriteHeader(http.StatusNoContent)
}

// lookupSession resolves the X-Session-Token header, writing the error
// response itself when it cannot
func lookupSession(w http.ResponseWriter, r *http.Request, store *session.Store) (*session.Entry, bool) {
	token, err := auth.TokenFromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Session token required")
		return nil, false
	}
	entry, err := store.Get(token)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Session expired, please log in again")
		return nil, false
	}
	return entry, true
}
