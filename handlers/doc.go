// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the faction grid API.

# Handler Types

Each handler is a struct over the session store and config:

  - SessionHandler: login, current identity, logout
  - GridHandler: grid description and cell marking
  - AdminHandler: date range, unlock-all, reserved actions

	sessionHandler := handlers.NewSessionHandler(store, rosterClient, cfg)

# Login Flow

	POST /session/login → Login (returns session_token)

The credential is checked against the identity service. On success a
session is created in the Loading state and the roster fetch starts in the
background, once. Every later call sends the X-Session-Token header.

Login errors use the messages the grid frontend shows as-is:

  - 400 "Please enter an API key" (empty credential, no outbound call)
  - 401 "API key is not correct. Please try again."
  - 502 "Failed to fetch user data. Please try again."

# Grid

	GET /grid        → GetGrid
	PUT /grid/cells  → MarkCell

Rows and the date axis are empty until the roster arrives. The first GET
after the grid becomes ready carries scroll_to with the caller's row.

# Admin

	POST /admin/date-range      → SetDateRange
	POST /admin/unlock-all      → UnlockAll
	POST /admin/actions/{name}  → InvokeAction

Non-admin sessions get 200 with applied=false. An invalid duration is
ignored silently or rejected with 400, depending on the invalid-duration
setting.
*/
package handlers
