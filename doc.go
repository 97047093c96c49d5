// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the faction grid API server.

The faction grid is a shared availability table: one row per faction member,
one column per hour across a configurable range of days. Members log in with
their Torn API key, the server fetches the faction roster with the same key,
and each member may mark only their own row unless an admin unlocks the grid.

# Starting the Server

The only required secret is the credential fingerprint salt:

	SESSION_TOKEN_SALT=... go run .

Or with flags:

	go run . -p 3318 -a HtwoO,Alice --token-salt ...

Settings may also be placed in a .env file (see --env-file).

# Configuration

  - PORT (-p): Server port (default: 3318)
  - ROSTER_BASE_URL (-r): Identity/roster service (default: https://api.torn.com)
  - GRID_ADMINS (-a): Admin display names (default: HtwoO)
  - GRID_DEFAULT_DURATION (--duration): Days shown (default: 7)
  - GRID_INVALID_DURATION (--invalid-duration): silent or reject
  - SESSION_TTL, MAX_SESSIONS: Session store limits
  - LOG_LEVEL, LOG_FILE: Logging

# Architecture

  - grid: Date axis, roster normalization, edit policy, state coordinator, admin panel
  - roster: Identity and roster service client
  - session: In-memory session store
  - handlers: HTTP request handlers (session, grid, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session tokens and credential fingerprints
  - cliparse: Configuration parsing
  - logger: slog setup with file rotation

See package documentation for each component.
*/
package main
