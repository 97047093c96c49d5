// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grid

import "github.com/danielhkuo/faction-grid/models"

// Policy decides admin status and per-row edit rights.
// The admin allow-list is fixed at construction.
type Policy struct {
	admins map[string]struct{}
}

func NewPolicy(adminNames []string) *Policy {
	admins := make(map[string]struct{}, len(adminNames))
	for _, name := range adminNames {
		if name == "" {
			continue
		}
		admins[name] = struct{}{}
	}
	return &Policy{admins: admins}
}

// IsAdmin is an exact, case-sensitive lookup. Unknown names are not admins.
func (p *Policy) IsAdmin(displayName string) bool {
	if p == nil || displayName == "" {
		return false
	}
	_, ok := p.admins[displayName]
	return ok
}

// IsEditable reports whether session may edit member's cells.
// Admin status alone grants nothing; only unlockAll widens access.
func IsEditable(member models.MemberRecord, session *models.SessionIdentity, unlockAll bool) bool {
	if unlockAll {
		return true
	}
	return session != nil && member.DisplayName == session.DisplayName
}
