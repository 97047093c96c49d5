// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// SessionHeader carries the session token on every call after login
const SessionHeader = "X-Session-Token"

const tokenBytes = 24

var (
	ErrMissingToken = errors.New("missing session token")
	ErrInvalidToken = errors.New("invalid token format")
)

// GenerateSessionToken creates a random secure token for a browser session
func GenerateSessionToken() (string, error) {
	b := make([]byte, tokenBytes) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidateTokenFormat checks that token looks like one we issued
func ValidateTokenFormat(token string) error {
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(b) != tokenBytes {
		return ErrInvalidToken
	}
	return nil
}

// TokenFromRequest extracts and format-checks the session token header
func TokenFromRequest(r *http.Request) (string, error) {
	token := strings.TrimSpace(r.Header.Get(SessionHeader))
	if token == "" {
		return "", ErrMissingToken
	}
	if err := ValidateTokenFormat(token); err != nil {
		return "", err
	}
	return token, nil
}

// FingerprintCredential creates a one-way tag of a credential for logs.
// The credential itself is never logged or stored outside the session.
func FingerprintCredential(credential, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(credential))
	sum := h.Sum(nil)
	// First 8 bytes is enough to correlate log lines
	return hex.EncodeToString(sum[:8])
}
