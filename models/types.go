package models

import "time"

// Coordinator states
const (
	StateUnauthenticated = "unauthenticated"
	StateLoading         = "loading"
	StateReady           = "ready"
)

// Admin menu actions
const (
	ActionChangeDateRange = "change-date-range"
	ActionUnlockAll       = "unlock-all"
	ActionReserved        = "reserved"
)

// Invalid duration policies
const (
	InvalidDurationSilent = "silent"
	InvalidDurationReject = "reject"
)

// Domain types

// MemberRecord is one roster entry, in fetch order
type MemberRecord struct {
	MemberID    string `json:"member_id"`
	DisplayName string `json:"name"`
}

type SessionIdentity struct {
	DisplayName string `json:"name"`
	Credential  string `json:"-"` // Never expose in JSON
	IsAdmin     bool   `json:"is_admin"`
}

type DateRangeConfig struct {
	StartDate    time.Time `json:"-"`
	DurationDays int       `json:"duration_days"`
}

// Cell addresses one hourly slot of one member's row
type Cell struct {
	MemberID string `json:"member_id"`
	Date     string `json:"date"`
	Hour     int    `json:"hour"`
}

// Request types

type LoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type DateRangeRequest struct {
	StartDate    string `json:"start_date"`
	DurationDays int    `json:"duration_days"`
}

type MarkCellRequest struct {
	MemberID  string `json:"member_id"`
	Date      string `json:"date"`
	Hour      int    `json:"hour"`
	Available bool   `json:"available"`
}

// Response types

type LoginResponse struct {
	SessionToken string `json:"session_token"`
	Name         string `json:"name"`
	IsAdmin      bool   `json:"is_admin"`
	State        string `json:"state"`
	Notice       string `json:"notice,omitempty"`
}

type SessionResponse struct {
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	State   string `json:"state"`
}

type DateRangeView struct {
	StartDate    string `json:"start_date"`
	DurationDays int    `json:"duration_days"`
}

type DateRangeResponse struct {
	Applied   bool          `json:"applied"`
	DateRange DateRangeView `json:"date_range"`
}

type UnlockAllResponse struct {
	Applied   bool `json:"applied"`
	UnlockAll bool `json:"unlock_all"`
}

type AdminActionResponse struct {
	Action  string `json:"action"`
	Applied bool   `json:"applied"`
}

// RowView is one rendered member row
type RowView struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
	Editable bool   `json:"editable"`
	// date -> marked hours, ascending
	Available map[string][]int `json:"available,omitempty"`
}

// GridView is the renderable grid description for a table renderer
type GridView struct {
	State          string        `json:"state"`
	IsAdmin        bool          `json:"is_admin"`
	AdminMenu      []string      `json:"admin_menu,omitempty"`
	UnlockAll      bool          `json:"unlock_all"`
	DateRange      DateRangeView `json:"date_range"`
	Dates          []string      `json:"dates"`
	Times          []string      `json:"times"`
	Rows           []RowView     `json:"rows"`
	ActiveMemberID string        `json:"active_member_id,omitempty"`
	ScrollTo       string        `json:"scroll_to,omitempty"`
	Notice         string        `json:"notice,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
