// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package grid implements the availability grid engine.

# Axis

The column space is a list of days times 24 fixed hours:

	dates := grid.GenerateDates(start, 7) // "19/10/2026", "20/10/2026", ...
	times := grid.GenerateTimes()         // "00:00" .. "23:00"

Day arithmetic uses time.AddDate, so month and year rollover follow the
calendar.

# Roster

NormalizeRoster turns a faction payload into MemberRecords in the order the
members appear in the JSON document. Missing or malformed payloads produce an
empty roster rather than an error.

# Policy

A Policy holds the admin allow-list:

	policy := grid.NewPolicy([]string{"HtwoO"})
	policy.IsAdmin("HtwoO") // true
	policy.IsAdmin("htwoo") // false

IsEditable allows a row when unlock-all is on, or when the row's name equals
the session's name. Admin status alone does not unlock other rows.

# Coordinator

A Coordinator moves through three states:

	Unauthenticated → Loading → Ready

SetSession and SetRoster may be called in either order. The ReadyHook fires
once, on the first transition into Ready, and the active row becomes the
pending scroll target. DeliverView renders and consumes that target under one
lock, so the first Ready view handed out carries it. Date range and unlock
changes recompute the derived view without changing state.

Durations are limited to 1..MaxDurationDays (366). The new axis is built
before the config is swapped in, so a rejected change leaves both untouched.

# Admin Panel

AdminPanel wraps a coordinator with admin-only actions (SetDateRange,
UnlockAll, Invoke). Non-admin calls are ignored. The panel may cap durations
below MaxDurationDays. How an invalid duration is reported depends on the
configured policy: silent or reject.
*/
package grid
