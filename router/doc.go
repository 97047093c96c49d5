// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the faction grid API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, rosterClient, cfg)

# Endpoints

Health:

	GET /health

Session:

	POST   /session/login - Authenticate with an API key
	GET    /session/me    - Current identity and grid state
	DELETE /session       - Forget the session

Grid (requires X-Session-Token):

	GET /grid        - Grid description
	PUT /grid/cells  - Mark or clear availability

Admin (requires an admin session; no-op otherwise):

	POST /admin/date-range     - Change start date and duration
	POST /admin/unlock-all     - Make every row editable
	POST /admin/actions/{name} - Reserved for further actions

All routes except health and root are wrapped with request logging.
*/
package router
