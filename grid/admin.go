// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/faction-grid/models"
)

// AdminPanel applies admin-issued config changes to a coordinator.
// Every action is a silent no-op for non-admin sessions.
type AdminPanel struct {
	coord *Coordinator

	// invalidDuration is models.InvalidDurationSilent or models.InvalidDurationReject
	invalidDuration string
	maxDays         int
}

// NewAdminPanel binds the panel to coord. maxDays caps accepted durations;
// values outside 1..MaxDurationDays fall back to MaxDurationDays.
func NewAdminPanel(coord *Coordinator, invalidDuration string, maxDays int) *AdminPanel {
	if invalidDuration != models.InvalidDurationReject {
		invalidDuration = models.InvalidDurationSilent
	}
	if maxDays < 1 || maxDays > MaxDurationDays {
		maxDays = MaxDurationDays
	}
	return &AdminPanel{coord: coord, invalidDuration: invalidDuration, maxDays: maxDays}
}

// Menu lists the actions offered to the session, nil for non-admins
func (a *AdminPanel) Menu() []string {
	if !a.coord.IsAdmin() {
		return nil
	}
	return []string{models.ActionChangeDateRange, models.ActionUnlockAll, models.ActionReserved}
}

// SetDateRange replaces the date range. A zero start keeps the current start.
// A duration outside 1..maxDays keeps the previous config; under the reject policy the
// validation error is returned, otherwise it is swallowed.
func (a *AdminPanel) SetDateRange(start time.Time, durationDays int) (bool, error) {
	if !a.allowed(models.ActionChangeDateRange) {
		return false, nil
	}

	if start.IsZero() {
		start = a.coord.DateRange().StartDate
	}
	var err error
	if durationDays > a.maxDays {
		err = fmt.Errorf("%w: got %d, limit %d", ErrInvalidDuration, durationDays, a.maxDays)
	} else {
		err = a.coord.SetDateRange(models.DateRangeConfig{StartDate: start, DurationDays: durationDays})
	}
	if errors.Is(err, ErrInvalidDuration) {
		slog.Debug("date range rejected", "duration_days", durationDays, "policy", a.invalidDuration)
		if a.invalidDuration == models.InvalidDurationReject {
			return false, err
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}

	slog.Info("date range changed",
		"start_date", start.Format(InputDateLayout),
		"duration_days", durationDays,
	)
	return true, nil
}

// UnlockAll makes every cell editable for the rest of the session.
// Repeated calls leave the same state.
func (a *AdminPanel) UnlockAll() bool {
	if !a.allowed(models.ActionUnlockAll) {
		return false
	}
	a.coord.SetUnlockAll(true)
	slog.Info("all cells unlocked")
	return true
}

// Invoke runs a named admin action that takes no arguments.
// The reserved action is an extension point and has no effect yet.
func (a *AdminPanel) Invoke(action string) bool {
	switch action {
	case models.ActionUnlockAll:
		return a.UnlockAll()
	case models.ActionReserved:
		a.allowed(action)
		return false
	default:
		return false
	}
}

func (a *AdminPanel) allowed(action string) bool {
	if a.coord.IsAdmin() {
		return true
	}
	slog.Warn("admin action refused", "action", action)
	return false
}
