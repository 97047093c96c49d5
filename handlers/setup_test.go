// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/faction-grid/auth"
	"github.com/danielhkuo/faction-grid/cliparse"
	"github.com/danielhkuo/faction-grid/models"
	"github.com/danielhkuo/faction-grid/roster"
	"github.com/danielhkuo/faction-grid/session"
	"github.com/danielhkuo/faction-grid/testutil"
)

type testEnv struct {
	torn  *testutil.FakeTorn
	store *session.Store
	cfg   cliparse.Config
	mux   *http.ServeMux
}

// setupTestEnv wires the handlers against a fake identity service
func setupTestEnv(t *testing.T, tweak func(*cliparse.Config)) *testEnv {
	t.Helper()

	torn := testutil.NewFakeTorn(t)
	cfg := testutil.GetTestConfig(torn.URL)
	if tweak != nil {
		tweak(&cfg)
	}
	store := session.NewStore(cfg.MaxSessions, cfg.SessionTTL)

	sessionHandler := NewSessionHandler(store, roster.NewClient(cfg.RosterBaseURL, 0), cfg)
	gridHandler := NewGridHandler(store, cfg)
	adminHandler := NewAdminHandler(store, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /session/login", sessionHandler.Login)
	mux.HandleFunc("GET /session/me", sessionHandler.GetMe)
	mux.HandleFunc("DELETE /session", sessionHandler.Logout)
	mux.HandleFunc("GET /grid", gridHandler.GetGrid)
	mux.HandleFunc("PUT /grid/cells", gridHandler.MarkCell)
	mux.HandleFunc("POST /admin/date-range", adminHandler.SetDateRange)
	mux.HandleFunc("POST /admin/unlock-all", adminHandler.UnlockAll)
	mux.HandleFunc("POST /admin/actions/{name}", adminHandler.InvokeAction)

	return &testEnv{torn: torn, store: store, cfg: cfg, mux: mux}
}

func (e *testEnv) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	headers := map[string]string{}
	if token != "" {
		headers[auth.SessionHeader] = token
	}
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, headers))
	return w
}

// login logs in with credential and returns the session token
func (e *testEnv) login(t *testing.T, credential string) string {
	t.Helper()
	w := e.do("POST", "/session/login", models.LoginRequest{Credential: credential}, "")
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)
	return resp.SessionToken
}

func (e *testEnv) grid(t *testing.T, token string) models.GridView {
	t.Helper()
	w := e.do("GET", "/grid", nil, token)
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.GridView
	testutil.AssertJSON(t, w, &view)
	return view
}

// loginReady logs in and waits for the roster to load
func (e *testEnv) loginReady(t *testing.T, credential string) string {
	t.Helper()
	token := e.login(t, credential)
	entry, err := e.store.Get(token)
	if err != nil {
		t.Fatal(err)
	}
	testutil.Eventually(t, func() bool {
		return entry.Grid.State().String() == models.StateReady
	}, "grid ready")
	return token
}
