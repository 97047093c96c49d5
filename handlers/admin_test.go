// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/faction-grid/cliparse"
	"github.com/danielhkuo/faction-grid/models"
	"github.com/danielhkuo/faction-grid/testutil"
)

func TestAdminScenario_UnlockAll(t *testing.T) {
	env := setupTestEnv(t, nil)
	env.torn.SetRoster(twoMembers)
	token := env.loginReady(t, "admin-key")

	before := env.grid(t, token)
	if !before.IsAdmin || len(before.AdminMenu) != 3 {
		t.Fatalf("Expected admin menu, got %+v", before.AdminMenu)
	}
	for _, row := range before.Rows {
		if row.Editable {
			t.Errorf("Expected %s locked before unlock", row.Name)
		}
	}

	w := env.do("POST", "/admin/unlock-all", nil, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.UnlockAllResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Applied || !resp.UnlockAll {
		t.Errorf("Expected unlock applied, got %+v", resp)
	}

	after := env.grid(t, token)
	for _, row := range after.Rows {
		if !row.Editable {
			t.Errorf("Expected %s editable after unlock", row.Name)
		}
	}
	if len(after.Rows) != 2 || after.Rows[1].Name != "Alice" {
		t.Errorf("Expected roster unchanged, got %+v", after.Rows)
	}

	w = env.do("PUT", "/grid/cells", models.MarkCellRequest{MemberID: "2", Date: after.Dates[0], Hour: 0, Available: true}, token)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	// second unlock is a no-op on state
	w = env.do("POST", "/admin/unlock-all", nil, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	if again := env.grid(t, token); !again.UnlockAll {
		t.Error("Expected unlock to stay on")
	}
}

func TestAdmin_NonAdminRefused(t *testing.T) {
	env := setupTestEnv(t, func(cfg *cliparse.Config) {
		cfg.InvalidDuration = models.InvalidDurationReject
	})
	token := env.loginReady(t, "bob-key")
	before := env.grid(t, token)

	w := env.do("POST", "/admin/unlock-all", nil, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	var unlock models.UnlockAllResponse
	testutil.AssertJSON(t, w, &unlock)
	if unlock.Applied || unlock.UnlockAll {
		t.Errorf("Expected refusal, got %+v", unlock)
	}

	w = env.do("POST", "/admin/date-range", models.DateRangeRequest{StartDate: "2030-01-01", DurationDays: 10}, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	var dr models.DateRangeResponse
	testutil.AssertJSON(t, w, &dr)
	if dr.Applied || dr.DateRange != before.DateRange {
		t.Errorf("Expected refusal, got %+v", dr)
	}

	// invalid input from a non-admin is still silent under reject
	w = env.do("POST", "/admin/date-range", models.DateRangeRequest{DurationDays: 0}, token)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestAdmin_SetDateRange(t *testing.T) {
	env := setupTestEnv(t, nil)
	token := env.loginReady(t, "admin-key")
	before := env.grid(t, token).DateRange

	tests := []struct {
		name     string
		body     models.DateRangeRequest
		applied  bool
		expected models.DateRangeView
	}{
		{"zero duration", models.DateRangeRequest{StartDate: "2030-01-01", DurationDays: 0}, false, before},
		{"negative duration", models.DateRangeRequest{StartDate: "2030-01-01", DurationDays: -5}, false, before},
		{"bad start date", models.DateRangeRequest{StartDate: "01/01/2030", DurationDays: 3}, false, before},
		{"too long", models.DateRangeRequest{StartDate: "2030-01-01", DurationDays: 100_000_000}, false, before},
		{"valid", models.DateRangeRequest{StartDate: "2024-02-28", DurationDays: 10}, true, models.DateRangeView{StartDate: "2024-02-28", DurationDays: 10}},
		{"keep start", models.DateRangeRequest{DurationDays: 3}, true, models.DateRangeView{StartDate: "2024-02-28", DurationDays: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do("POST", "/admin/date-range", tc.body, token)
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.DateRangeResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Applied != tc.applied || resp.DateRange != tc.expected {
				t.Errorf("Expected applied=%v %+v, got %+v", tc.applied, tc.expected, resp)
			}
		})
	}

	view := env.grid(t, token)
	want := []string{"28/02/2024", "29/02/2024", "01/03/2024"}
	if len(view.Dates) != 3 || view.Dates[0] != want[0] || view.Dates[1] != want[1] || view.Dates[2] != want[2] {
		t.Errorf("Expected %v, got %v", want, view.Dates)
	}
}

func TestAdmin_SetDateRangeRejectPolicy(t *testing.T) {
	env := setupTestEnv(t, func(cfg *cliparse.Config) {
		cfg.InvalidDuration = models.InvalidDurationReject
	})
	token := env.loginReady(t, "admin-key")
	before := env.grid(t, token).DateRange

	for _, body := range []models.DateRangeRequest{
		{StartDate: "2030-01-01", DurationDays: 0},
		{StartDate: "tomorrow", DurationDays: 5},
		{StartDate: "2030-01-01", DurationDays: 367},
	} {
		w := env.do("POST", "/admin/date-range", body, token)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	}

	if after := env.grid(t, token).DateRange; after != before {
		t.Errorf("Expected config unchanged, got %+v", after)
	}
}

func TestAdmin_SetDateRangeMaxDuration(t *testing.T) {
	env := setupTestEnv(t, func(cfg *cliparse.Config) {
		cfg.MaxDuration = 30
		cfg.InvalidDuration = models.InvalidDurationReject
	})
	token := env.loginReady(t, "admin-key")

	w := env.do("POST", "/admin/date-range", models.DateRangeRequest{DurationDays: 31}, token)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = env.do("POST", "/admin/date-range", models.DateRangeRequest{DurationDays: 30}, token)
	testutil.AssertStatus(t, w, http.StatusOK)
	if view := env.grid(t, token); len(view.Dates) != 30 || view.DateRange.DurationDays != 30 {
		t.Errorf("Expected 30 dates, got %d (config %d)", len(view.Dates), view.DateRange.DurationDays)
	}
}

func TestAdmin_InvokeAction(t *testing.T) {
	env := setupTestEnv(t, nil)
	token := env.loginReady(t, "admin-key")

	tests := []struct {
		action  string
		applied bool
	}{
		{models.ActionReserved, false},
		{"something-else", false},
		{models.ActionUnlockAll, true},
	}
	for _, tc := range tests {
		t.Run(tc.action, func(t *testing.T) {
			w := env.do("POST", "/admin/actions/"+tc.action, nil, token)
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.AdminActionResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Action != tc.action || resp.Applied != tc.applied {
				t.Errorf("Expected %s applied=%v, got %+v", tc.action, tc.applied, resp)
			}
		})
	}
}
