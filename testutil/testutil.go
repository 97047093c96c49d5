// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/faction-grid/cliparse"
	"github.com/danielhkuo/faction-grid/models"
)

// DefaultRoster is the faction payload served by FakeTorn unless replaced
const DefaultRoster = `{"ID":1,"name":"Test Faction","members":{"1":{"name":"Bob"},"2":{"name":"Alice"},"3":{"name":"HtwoO"}}}`

// FakeTorn is an in-process identity/roster service.
// Keys maps credential -> display name; unknown keys get an error body.
type FakeTorn struct {
	*httptest.Server

	mu          sync.Mutex
	keys        map[string]string
	roster      string
	rosterGate  chan struct{}
	UserCalls   atomic.Int32
	RosterCalls atomic.Int32
}

// NewFakeTorn starts a fake service. Close it when done.
func NewFakeTorn(t *testing.T) *FakeTorn {
	t.Helper()

	f := &FakeTorn{
		keys: map[string]string{
			"bob-key":   "Bob",
			"alice-key": "Alice",
			"admin-key": "HtwoO",
		},
		roster: DefaultRoster,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/", func(w http.ResponseWriter, r *http.Request) {
		f.UserCalls.Add(1)
		f.mu.Lock()
		name, ok := f.keys[r.URL.Query().Get("key")]
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if !ok {
			fmt.Fprint(w, `{"error":{"code":2,"error":"Incorrect key"}}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"player_id": 1, "name": name, "level": 10})
	})
	mux.HandleFunc("GET /faction/", func(w http.ResponseWriter, r *http.Request) {
		f.RosterCalls.Add(1)
		f.mu.Lock()
		gate, body := f.rosterGate, f.roster
		f.mu.Unlock()

		if gate != nil {
			<-gate
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// SetRoster replaces the faction payload
func (f *FakeTorn) SetRoster(payload string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roster = payload
}

// HoldRoster blocks roster responses until the returned func is called
func (f *FakeTorn) HoldRoster() (release func()) {
	gate := make(chan struct{})
	f.mu.Lock()
	f.rosterGate = gate
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			f.rosterGate = nil
			f.mu.Unlock()
			close(gate)
		})
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(rosterURL string) cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		RosterBaseURL:   rosterURL,
		Admins:          []string{"HtwoO"},
		DefaultDuration: 7,
		MaxDuration:     366,
		InvalidDuration: models.InvalidDurationSilent,
		SessionTTL:      time.Hour,
		MaxSessions:     64,
		TokenSalt:       "test-token-salt",
		LogLevel:        "info",
	}
}

// Eventually polls cond until it holds or the deadline passes
func Eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Condition not met: %s", msg)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
