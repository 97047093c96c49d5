// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/faction-grid/models"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestWithLogging(t *testing.T) {
	logs := captureLogs(t)

	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest("PUT", "/grid/cells", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}

	id := w.Header().Get(RequestIDHeader)
	out := logs.String()
	for _, want := range []string{`"msg":"request started"`, `"msg":"request completed"`, `"request_id":"` + id + `"`, `"path":"/grid/cells"`, `"remote":"203.0.113.7"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %s, got %s", want, out)
		}
	}
}

func TestWithLogging_RequestID(t *testing.T) {
	captureLogs(t)
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"generated when absent", "", false},
		{"caller UUID reused", "0b6a3c1e-7d42-4f4e-9a55-2f1d2c9e8b10", true},
		{"non-UUID replaced", "<script>", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/grid", nil)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			w := httptest.NewRecorder()
			handler(w, req)

			got := w.Header().Get(RequestIDHeader)
			if tc.keep && got != tc.header {
				t.Errorf("Expected '%s', got '%s'", tc.header, got)
			}
			if !tc.keep && (got == tc.header || len(got) != 36) {
				t.Errorf("Expected a fresh UUID, got '%s'", got)
			}
		})
	}
}

func TestJSONResponse_GridView(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusOK, models.GridView{
		State:     models.StateLoading,
		DateRange: models.DateRangeView{StartDate: "2024-02-28", DurationDays: 3},
		Dates:     []string{},
		Times:     []string{},
		Rows:      []models.RowView{},
	})

	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", w.Header().Get("Content-Type"))
	}

	body := w.Body.String()
	if !strings.Contains(body, `"dates":[]`) || !strings.Contains(body, `"rows":[]`) {
		t.Errorf("Expected empty arrays rather than null, got %s", body)
	}
	for _, absent := range []string{"admin_menu", "scroll_to", "active_member_id", "notice"} {
		if strings.Contains(body, absent) {
			t.Errorf("Expected %s to be omitted, got %s", absent, body)
		}
	}
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		status  int
		message string
		errText string
	}{
		{http.StatusUnauthorized, "Session token required", "Unauthorized"},
		{http.StatusForbidden, "You can only edit your own row", "Forbidden"},
		{http.StatusConflict, "Grid is still loading", "Conflict"},
		{http.StatusBadGateway, "Failed to fetch user data. Please try again.", "Bad Gateway"},
	}

	for _, tc := range tests {
		t.Run(tc.errText, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorResponse(w, tc.status, tc.message)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, w.Code)
			}
			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.errText || resp.Message != tc.message {
				t.Errorf("Expected %q/%q, got %+v", tc.errText, tc.message, resp)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("mark cell request", func(t *testing.T) {
		body := `{"member_id":"2","date":"29/02/2024","hour":13,"available":true}`
		req := httptest.NewRequest("PUT", "/grid/cells", strings.NewReader(body))

		var parsed models.MarkCellRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		want := models.MarkCellRequest{MemberID: "2", Date: "29/02/2024", Hour: 13, Available: true}
		if parsed != want {
			t.Errorf("Expected %+v, got %+v", want, parsed)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed", `{credential:}`},
		{"non-numeric duration", `{"start_date":"2024-02-28","duration_days":"ten"}`},
		{"fractional duration", `{"duration_days":2.5}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin/date-range", strings.NewReader(tc.body))
			var parsed models.DateRangeRequest
			if err := ParseJSONBody(req, &parsed); err == nil {
				t.Errorf("Expected error for %q", tc.body)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("preflight for cell update", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("OPTIONS", "/grid/cells", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "PUT")
		req.Header.Set("Access-Control-Request-Headers", "X-Session-Token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK || called {
			t.Errorf("Expected preflight answered without calling next, got %d called=%v", w.Code, called)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Expected origin reflected, got '%s'", got)
		}
		allowed := w.Header().Get("Access-Control-Allow-Headers")
		for _, h := range []string{"X-Session-Token", "X-Request-ID", "Content-Type"} {
			if !strings.Contains(allowed, h) {
				t.Errorf("Expected %s in allowed headers, got '%s'", h, allowed)
			}
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "PUT") {
			t.Error("Expected PUT in allowed methods")
		}
	})

	t.Run("request ID exposed to the browser", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/grid", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Expose-Headers") != RequestIDHeader {
			t.Errorf("Expected %s exposed, got '%s'", RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected wildcard origin without an Origin header")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{"first forwarded hop", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "127.0.0.1:1", "203.0.113.195"},
		{"forwarded beats real IP", map[string]string{"X-Forwarded-For": "192.0.2.1", "X-Real-IP": "192.0.2.2"}, "127.0.0.1:1", "192.0.2.1"},
		{"real IP", map[string]string{"X-Real-IP": "192.0.2.2"}, "127.0.0.1:1", "192.0.2.2"},
		{"remote address port stripped", nil, "192.0.2.50:54321", "192.0.2.50"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/grid", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := GetClientIP(req); got != tc.expected {
				t.Errorf("Expected IP '%s', got '%s'", tc.expected, got)
			}
		})
	}
}
