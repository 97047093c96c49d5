// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grid

import (
	"github.com/tidwall/gjson"

	"github.com/danielhkuo/faction-grid/models"
)

// NormalizeRoster turns a faction payload into member records in payload order.
// A missing or malformed "members" object yields no rows.
func NormalizeRoster(payload []byte) []models.MemberRecord {
	members := []models.MemberRecord{}
	if !gjson.ValidBytes(payload) {
		return members
	}

	raw := gjson.GetBytes(payload, "members")
	if !raw.IsObject() {
		return members
	}

	// ForEach walks object keys in document order
	raw.ForEach(func(key, value gjson.Result) bool {
		name := value.Get("name")
		if name.Type != gjson.String {
			return true
		}
		members = append(members, models.MemberRecord{
			MemberID:    key.String(),
			DisplayName: name.String(),
		})
		return true
	})

	return members
}
