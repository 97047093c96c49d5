// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/faction-grid/cliparse"
	"github.com/danielhkuo/faction-grid/grid"
	"github.com/danielhkuo/faction-grid/middleware"
	"github.com/danielhkuo/faction-grid/models"
	"github.com/danielhkuo/faction-grid/session"
)

type GridHandler struct {
	store *session.Store
	cfg   cliparse.Config
}

func NewGridHandler(store *session.Store, cfg cliparse.Config) *GridHandler {
	return &GridHandler{store: store, cfg: cfg}
}

// GetGrid handles GET /grid
// Returns the grid description; scroll_to is included once after the grid becomes ready
func (h *GridHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	entry, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	view := entry.Grid.DeliverView()
	view.AdminMenu = entry.Admin.Menu()

	middleware.JSONResponse(w, http.StatusOK, view)
}

// MarkCell handles PUT /grid/cells
// Sets or clears availability for one cell the session may edit
func (h *GridHandler) MarkCell(w http.ResponseWriter, r *http.Request) {
	entry, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	var req models.MarkCellRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	cell := models.Cell{MemberID: req.MemberID, Date: req.Date, Hour: req.Hour}
	err := entry.Grid.MarkCell(cell, req.Available)
	switch {
	case err == nil:
		slog.Debug("cell marked", "session_id", entry.ID, "member_id", cell.MemberID,
			"date", cell.Date, "hour", cell.Hour, "available", req.Available)
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, grid.ErrNotReady):
		middleware.ErrorResponse(w, http.StatusConflict, "Grid is still loading")
	case errors.Is(err, grid.ErrNotEditable):
		middleware.ErrorResponse(w, http.StatusForbidden, "You can only edit your own row")
	case errors.Is(err, grid.ErrUnknownMember):
		middleware.ErrorResponse(w, http.StatusNotFound, "Member not found")
	case errors.Is(err, grid.ErrOutOfRange):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Cell is outside the current dates")
	default:
		slog.Error("failed to mark cell", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to mark cell")
	}
}
