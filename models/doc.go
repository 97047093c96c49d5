// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - LoginRequest: credential
  - DateRangeRequest: start_date (YYYY-MM-DD, empty keeps current), duration_days
  - MarkCellRequest: member_id, date (DD/MM/YYYY), hour, available

# Response Types

  - LoginResponse: session_token, name, is_admin, state, notice
  - SessionResponse: name, is_admin, state
  - GridView: state, admin menu, date axis, time axis, rows
  - DateRangeResponse, UnlockAllResponse, AdminActionResponse: applied flag plus result
  - ErrorResponse: error, message

# Domain Types

  - MemberRecord: roster entry (member_id, name)
  - SessionIdentity: display name, credential (never serialised), admin flag
  - DateRangeConfig: start date and duration in days
  - Cell: one hour of one member's row

# Constants

States:

	StateUnauthenticated = "unauthenticated"
	StateLoading         = "loading"
	StateReady           = "ready"

Admin actions:

	ActionChangeDateRange = "change-date-range"
	ActionUnlockAll       = "unlock-all"
	ActionReserved        = "reserved"
*/
package models
