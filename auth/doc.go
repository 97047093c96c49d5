// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session tokens and credential fingerprints.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

They are URL-safe base64 without padding and are sent back on every request
in the X-Session-Token header:

	token, err := auth.TokenFromRequest(r) // ErrMissingToken, ErrInvalidToken

# Credential Fingerprints

The faction API key a user logs in with is only held in memory. Log lines
carry a salted HMAC-SHA256 fingerprint instead:

	fp := auth.FingerprintCredential(apiKey, salt) // 16 hex chars
*/
package auth
