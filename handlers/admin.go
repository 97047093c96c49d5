// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/faction-grid/cliparse"
	"github.com/danielhkuo/faction-grid/grid"
	"github.com/danielhkuo/faction-grid/middleware"
	"github.com/danielhkuo/faction-grid/models"
	"github.com/danielhkuo/faction-grid/session"
)

// AdminHandler exposes the admin menu. Calls from non-admin sessions get
// 200 with applied=false and change nothing.
type AdminHandler struct {
	store *session.Store
	cfg   cliparse.Config
}

func NewAdminHandler(store *session.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: store, cfg: cfg}
}

// SetDateRange handles POST /admin/date-range
func (h *AdminHandler) SetDateRange(w http.ResponseWriter, r *http.Request) {
	entry, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	var req models.DateRangeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var start time.Time
	if req.StartDate != "" {
		parsed, err := grid.ParseStartDate(req.StartDate)
		if err != nil {
			h.rejectOrIgnore(w, entry, err)
			return
		}
		start = parsed
	}

	applied, err := entry.Admin.SetDateRange(start, req.DurationDays)
	if errors.Is(err, grid.ErrInvalidDuration) {
		h.rejectOrIgnore(w, entry, err)
		return
	}
	if err != nil {
		slog.Error("failed to set date range", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to change dates")
		return
	}

	respondDateRange(w, entry, applied)
}

// rejectOrIgnore reports a config validation error according to the
// configured policy: 400 under reject, an unchanged 200 under silent
func (h *AdminHandler) rejectOrIgnore(w http.ResponseWriter, entry *session.Entry, err error) {
	if h.cfg.InvalidDuration == models.InvalidDurationReject && entry.Grid.IsAdmin() {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	respondDateRange(w, entry, false)
}

func respondDateRange(w http.ResponseWriter, entry *session.Entry, applied bool) {
	cfg := entry.Grid.DateRange()
	middleware.JSONResponse(w, http.StatusOK, models.DateRangeResponse{
		Applied: applied,
		DateRange: models.DateRangeView{
			StartDate:    cfg.StartDate.Format(grid.InputDateLayout),
			DurationDays: cfg.DurationDays,
		},
	})
}

// UnlockAll handles POST /admin/unlock-all
func (h *AdminHandler) UnlockAll(w http.ResponseWriter, r *http.Request) {
	entry, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	applied := entry.Admin.UnlockAll()
	middleware.JSONResponse(w, http.StatusOK, models.UnlockAllResponse{
		Applied:   applied,
		UnlockAll: entry.Grid.UnlockAll(),
	})
}

// InvokeAction handles POST /admin/actions/{name}
// Reserved for further admin actions; unknown names are ignored
func (h *AdminHandler) InvokeAction(w http.ResponseWriter, r *http.Request) {
	entry, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	action := r.PathValue("name")
	middleware.JSONResponse(w, http.StatusOK, models.AdminActionResponse{
		Action:  action,
		Applied: entry.Admin.Invoke(action),
	})
}
