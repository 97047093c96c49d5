// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/danielhkuo/faction-grid/grid"
	"github.com/danielhkuo/faction-grid/models"
)

var ErrNotFound = errors.New("session not found")

// Entry is one browser session: its grid coordinator and admin actions.
type Entry struct {
	ID    string
	Grid  *grid.Coordinator
	Admin *grid.AdminPanel

	mu         sync.Mutex
	readyCount int
}

// EntryOptions carries the per-session grid settings
type EntryOptions struct {
	DateRange       models.DateRangeConfig
	InvalidDuration string
	MaxDurationDays int
}

// NewEntry builds a session whose coordinator reports its ready effect back
// to the entry for logging.
func NewEntry(policy *grid.Policy, opts EntryOptions) *Entry {
	e := &Entry{ID: uuid.NewString()}
	e.Grid = grid.NewCoordinator(policy, opts.DateRange, e.onReady)
	e.Admin = grid.NewAdminPanel(e.Grid, opts.InvalidDuration, opts.MaxDurationDays)
	return e
}

func (e *Entry) onReady(displayName, activeMemberID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.readyCount++
	slog.Info("grid ready", "session_id", e.ID, "name", displayName, "active_member_id", activeMemberID)
}

// ReadyEffects counts how many times the ready effect has fired
func (e *Entry) ReadyEffects() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readyCount
}

// Store maps session tokens to entries. Entries expire after ttl without
// use, and the least recently used entry is dropped beyond size.
type Store struct {
	cache *expirable.LRU[string, *Entry]
}

func NewStore(size int, ttl time.Duration) *Store {
	onEvict := func(_ string, e *Entry) {
		slog.Debug("session evicted", "session_id", e.ID)
	}
	return &Store{cache: expirable.NewLRU[string, *Entry](size, onEvict, ttl)}
}

func (s *Store) Put(token string, e *Entry) {
	s.cache.Add(token, e)
}

// Get returns the entry and refreshes its expiry
func (s *Store) Get(token string) (*Entry, error) {
	e, ok := s.cache.Get(token)
	if !ok {
		return nil, ErrNotFound
	}
	s.cache.Add(token, e)
	return e, nil
}

func (s *Store) Delete(token string) bool {
	return s.cache.Remove(token)
}

func (s *Store) Len() int {
	return s.cache.Len()
}
