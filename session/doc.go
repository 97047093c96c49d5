// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session keeps the in-memory grid of each logged-in browser.
// Nothing here is persisted; a restart logs everyone out.
package session
