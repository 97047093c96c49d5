// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/danielhkuo/faction-grid/models"
)

// MaxDurationDays bounds a date range to one (leap) year of columns
const MaxDurationDays = 366

var (
	ErrInvalidDuration   = fmt.Errorf("duration must be between 1 and %d days", MaxDurationDays)
	ErrSessionAlreadySet = errors.New("session already established")
	ErrNotReady          = errors.New("grid is not ready")
	ErrNotEditable       = errors.New("cell is not editable by this session")
	ErrOutOfRange        = errors.New("cell is outside the current grid")
	ErrUnknownMember     = errors.New("member is not on the roster")
)

// DefaultDurationDays is used when no duration is configured
const DefaultDurationDays = 7

// State is the coordinator's lifecycle position
type State int

const (
	Unauthenticated State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return models.StateLoading
	case Ready:
		return models.StateReady
	default:
		return models.StateUnauthenticated
	}
}

// ReadyHook runs once when the coordinator first becomes Ready.
// activeMemberID is empty when the session's name is not on the roster.
type ReadyHook func(displayName, activeMemberID string)

// DefaultDateRange starts today and spans durationDays
func DefaultDateRange(now time.Time, durationDays int) models.DateRangeConfig {
	if durationDays < 1 || durationDays > MaxDurationDays {
		durationDays = DefaultDurationDays
	}
	return models.DateRangeConfig{StartDate: CalendarDay(now), DurationDays: durationDays}
}

// Coordinator owns the roster, session and config inputs of one grid and
// keeps the derived view consistent with them. Every setter replaces a whole
// value under the lock and recomputes before releasing it, so readers never
// observe a half-applied combination.
type Coordinator struct {
	mu     sync.Mutex
	policy *Policy

	state   State
	session *models.SessionIdentity
	roster  []models.MemberRecord
	loaded  bool
	config  models.DateRangeConfig
	unlock  bool
	notice  string
	marked  map[models.Cell]struct{}
	onReady ReadyHook
	fired   bool

	// set with fired, consumed by TakeScrollTarget
	scrollTo  string
	scrollDue bool

	// derived
	dates    []string
	activeID string
	editable map[string]bool
}

func NewCoordinator(policy *Policy, config models.DateRangeConfig, onReady ReadyHook) *Coordinator {
	if config.DurationDays < 1 || config.DurationDays > MaxDurationDays {
		config.DurationDays = DefaultDurationDays
	}
	config.StartDate = CalendarDay(config.StartDate)

	c := &Coordinator{
		policy:  policy,
		config:  config,
		marked:  make(map[models.Cell]struct{}),
		onReady: onReady,
	}
	c.recomputeAxis()
	c.recomputeAccess()
	return c
}

// SetSession records the authenticated identity. Admin status is derived
// from the policy, never taken from the caller.
func (c *Coordinator) SetSession(identity models.SessionIdentity) error {
	c.mu.Lock()
	if c.session != nil {
		c.mu.Unlock()
		return ErrSessionAlreadySet
	}

	identity.IsAdmin = c.policy.IsAdmin(identity.DisplayName)
	c.session = &identity
	if c.loaded {
		c.state = Ready
	} else {
		c.state = Loading
	}
	c.recomputeAccess()
	fire := c.takeReadyEffect()
	c.mu.Unlock()

	fire()
	return nil
}

// SetRoster replaces the roster. It may arrive before or after the session.
func (c *Coordinator) SetRoster(members []models.MemberRecord) {
	c.mu.Lock()
	c.roster = slices.Clone(members)
	c.loaded = true
	if c.state == Loading {
		c.state = Ready
	}
	c.recomputeAccess()
	fire := c.takeReadyEffect()
	c.mu.Unlock()

	fire()
}

// SetDateRange replaces the date range. The previous value is kept on error.
// The new axis is built before the lock is taken and swapped in with the
// config, so the two never disagree.
func (c *Coordinator) SetDateRange(config models.DateRangeConfig) error {
	if config.DurationDays < 1 || config.DurationDays > MaxDurationDays {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, config.DurationDays)
	}
	config.StartDate = CalendarDay(config.StartDate)
	dates := GenerateDates(config.StartDate, config.DurationDays)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.config, c.dates = config, dates
	return nil
}

// SetUnlockAll sets the global unlock flag
func (c *Coordinator) SetUnlockAll(unlock bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unlock = unlock
	c.recomputeAccess()
}

// SetNotice records a user-facing message, replacing any previous one
func (c *Coordinator) SetNotice(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = msg
}

// MarkCell sets or clears the session's availability for one cell
func (c *Coordinator) MarkCell(cell models.Cell, available bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Ready {
		return ErrNotReady
	}
	editable, ok := c.editable[cell.MemberID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMember, cell.MemberID)
	}
	if cell.Hour < 0 || cell.Hour >= HoursPerDay || !slices.Contains(c.dates, cell.Date) {
		return fmt.Errorf("%w: %s %d", ErrOutOfRange, cell.Date, cell.Hour)
	}
	if !editable {
		return ErrNotEditable
	}

	if available {
		c.marked[cell] = struct{}{}
	} else {
		delete(c.marked, cell)
	}
	return nil
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns a copy of the identity, or nil before login
func (c *Coordinator) Session() *models.SessionIdentity {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

func (c *Coordinator) DateRange() models.DateRangeConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

func (c *Coordinator) UnlockAll() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unlock
}

// IsAdmin reports whether the current session is on the admin allow-list
func (c *Coordinator) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil && c.session.IsAdmin
}

// CanEdit evaluates the editable-cell predicate for a member row
func (c *Coordinator) CanEdit(memberID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editable[memberID]
}

// TakeScrollTarget returns the active row once after the grid becomes ready
func (c *Coordinator) TakeScrollTarget() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.takeScrollLocked()
}

// View renders the current grid. Rows and axis are only populated once Ready.
func (c *Coordinator) View() models.GridView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// DeliverView renders the grid and, in the same step, consumes the pending
// scroll target. The first Ready view delivered always carries it.
func (c *Coordinator) DeliverView() models.GridView {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := c.viewLocked()
	if target, due := c.takeScrollLocked(); due {
		view.ScrollTo = target
	}
	return view
}

func (c *Coordinator) takeScrollLocked() (string, bool) {
	if !c.scrollDue {
		return "", false
	}
	c.scrollDue = false
	return c.scrollTo, true
}

func (c *Coordinator) viewLocked() models.GridView {
	view := models.GridView{
		State:     c.state.String(),
		UnlockAll: c.unlock,
		DateRange: models.DateRangeView{
			StartDate:    c.config.StartDate.Format(InputDateLayout),
			DurationDays: c.config.DurationDays,
		},
		Dates:  []string{},
		Times:  []string{},
		Rows:   []models.RowView{},
		Notice: c.notice,
	}
	if c.session != nil {
		view.IsAdmin = c.session.IsAdmin
	}
	if c.state != Ready {
		return view
	}

	view.Dates = slices.Clone(c.dates)
	view.Times = GenerateTimes()
	view.ActiveMemberID = c.activeID
	for _, m := range c.roster {
		view.Rows = append(view.Rows, models.RowView{
			MemberID:  m.MemberID,
			Name:      m.DisplayName,
			Active:    m.MemberID == c.activeID,
			Editable:  c.editable[m.MemberID],
			Available: c.availabilityFor(m.MemberID),
		})
	}
	return view
}

func (c *Coordinator) availabilityFor(memberID string) map[string][]int {
	var out map[string][]int
	for _, date := range c.dates {
		for hour := 0; hour < HoursPerDay; hour++ {
			if _, ok := c.marked[models.Cell{MemberID: memberID, Date: date, Hour: hour}]; !ok {
				continue
			}
			if out == nil {
				out = make(map[string][]int)
			}
			out[date] = append(out[date], hour)
		}
	}
	return out
}

// takeReadyEffect must be called with mu held. It returns the hook call to
// make after unlocking, or a no-op when the effect is not due.
func (c *Coordinator) takeReadyEffect() func() {
	if c.state != Ready || c.fired {
		return func() {}
	}
	c.fired = true

	name, active := c.session.DisplayName, c.activeID
	c.scrollTo, c.scrollDue = active, true
	slog.Debug("grid ready", "name", name, "active_member_id", active, "rows", len(c.roster))
	if c.onReady == nil {
		return func() {}
	}
	hook := c.onReady
	return func() { hook(name, active) }
}

func (c *Coordinator) recomputeAxis() {
	c.dates = GenerateDates(c.config.StartDate, c.config.DurationDays)
}

func (c *Coordinator) recomputeAccess() {
	c.activeID = ""
	c.editable = make(map[string]bool, len(c.roster))
	for _, m := range c.roster {
		c.editable[m.MemberID] = IsEditable(m, c.session, c.unlock)
		if c.activeID == "" && c.session != nil && m.DisplayName == c.session.DisplayName {
			c.activeID = m.MemberID
		}
	}
}
